package token_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-mailwords/message/header/token"
)

func TestNormalized(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  []token.Token
	}{
		{
			name:  "plain text",
			value: "Just a plain subject",
			want:  []token.Token{token.Text("Just a plain subject")},
		},
		{
			name:  "adjacent words collapse",
			value: "=?UTF-8?Q?Hello?= =?UTF-8?Q?World?=",
			want: []token.Token{
				token.Whitespace(""),
				token.DecodedWord("Hello"),
				token.DecodedWord("World"),
			},
		},
		{
			name:  "fold between text",
			value: "hello\r\n world",
			want: []token.Token{
				token.Text("hello"),
				token.Fold(" "),
				token.Text("world"),
			},
		},
		{
			name:  "fold between words",
			value: "=?UTF-8?Q?a?=\r\n =?UTF-8?Q?b?=",
			want: []token.Token{
				token.Whitespace(""),
				token.DecodedWord("a"),
				token.Whitespace(""),
				token.DecodedWord("b"),
			},
		},
		{
			name:  "fold after word before text",
			value: "=?UTF-8?Q?a?=\r\n foo",
			want: []token.Token{
				token.Whitespace(""),
				token.DecodedWord("a"),
				token.Fold(" "),
				token.Text("foo"),
			},
		},
		{
			name:  "whitespace and fold after word",
			value: "=?UTF-8?Q?a?=  \r\n foo",
			want: []token.Token{
				token.Whitespace(""),
				token.DecodedWord("a"),
				token.Fold("   "),
				token.Text("foo"),
			},
		},
		{
			name:  "fold after text before word",
			value: "foo\r\n =?UTF-8?Q?a?=",
			want: []token.Token{
				token.Text("foo"),
				token.Fold(" "),
				token.Whitespace(""),
				token.DecodedWord("a"),
			},
		},
		{
			name:  "inline whitespace next to text",
			value: "foo =?UTF-8?Q?a?= bar",
			want: []token.Token{
				token.Text("foo "),
				token.DecodedWord("a"),
				token.Text(" bar"),
			},
		},
		{
			name:  "unknown charset",
			value: "=?no-such-charset?B?QQ==?=",
			want: []token.Token{
				token.Whitespace(""),
				token.Text("=?no-such-charset?B?QQ==?="),
				token.Whitespace(""),
			},
		},
		{
			name:  "trailing fold after word",
			value: "=?UTF-8?Q?a?=\r\n ",
			want: []token.Token{
				token.Whitespace(""),
				token.DecodedWord("a"),
				token.Whitespace(""),
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			toks := token.Normalized(tt.value)
			assert.Equal(t, tt.want, toks)
		})
	}
}

// These are the examples from section 8 of RFC 2047.
func TestDecode_RFC2047Examples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  string
	}{
		{"=?ISO-8859-1?Q?a?=", "a"},
		{"=?ISO-8859-1?Q?a?= b", "a b"},
		{"(=?ISO-8859-1?Q?a?=)", "(a)"},
		{"(=?ISO-8859-1?Q?a?= b)", "(a b)"},
		{"(=?ISO-8859-1?Q?a?= =?ISO-8859-1?Q?b?=)", "(ab)"},
		{"(=?ISO-8859-1?Q?a?=  =?ISO-8859-1?Q?b?=)", "(ab)"},
		{"(=?ISO-8859-1?Q?a?=\r\n    =?ISO-8859-1?Q?b?=)", "(ab)"},
		{"(=?ISO-8859-1?Q?a_b?=)", "(a b)"},
		{"(=?ISO-8859-1?Q?a?= =?ISO-8859-2?Q?_b?=)", "(a b)"},
		{"=?US-ASCII?Q?Keith_Moore?= <moore@cs.utk.edu>", "Keith Moore <moore@cs.utk.edu>"},
		{"=?ISO-8859-1?Q?Keld_J=F8rn_Simonsen?= <keld@dkuug.dk>", "Keld Jørn Simonsen <keld@dkuug.dk>"},
		{"=?ISO-8859-1?B?SWYgeW91IGNhbiByZWFkIHRoaXMgeW8=?=\r\n =?ISO-8859-2?B?dSB1bmRlcnN0YW5kIHRoZSBleGFtcGxlLg==?=",
			"If you can read this you understand the example."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, token.Decode(tt.value), tt.value)
	}
}

func TestDecode_PlainTextUnchanged(t *testing.T) {
	t.Parallel()

	for _, v := range []string{
		"Re: lunch?",
		"a = b",
		"what?= no",
		"  leading space",
		"tab\tinside",
	} {
		assert.Equal(t, strings.TrimLeft(v, " \t"), token.Decode(v), v)
	}

	assert.Equal(t, "one two three", token.Decode("one\r\n two\r\n\tthree"))
}

func TestDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"hello", "Grüße aus Köln", "日本語のテキスト", "emoji 🖊 here"} {
		enc := "=?UTF-8?B?" + base64.StdEncoding.EncodeToString([]byte(s)) + "?="
		toks := token.Normalized(enc)
		assert.Contains(t, toks, token.DecodedWord(s))
		assert.Equal(t, s, token.Join(toks))
	}
}

// Words directly next to each other and words separated by an empty
// Whitespace must come out the same.
func TestNormalize_ZeroWidthAdjacency(t *testing.T) {
	t.Parallel()

	want := []token.Token{token.DecodedWord("a"), token.DecodedWord("b")}

	assert.Equal(t, want, token.Normalize([]token.Token{
		token.DecodedWord("a"),
		token.DecodedWord("b"),
	}))

	assert.Equal(t, want, token.Normalize([]token.Token{
		token.DecodedWord("a"),
		token.Whitespace(""),
		token.DecodedWord("b"),
	}))

	assert.Equal(t, want, token.Normalize([]token.Token{
		token.DecodedWord("a"),
		token.Whitespace(" "),
		token.LineBreak{},
		token.DecodedWord("b"),
	}))
}

func TestNormalize_Transitions(t *testing.T) {
	t.Parallel()

	// whitespace not after a decoded word is emitted right away
	assert.Equal(t, []token.Token{
		token.Whitespace(" "),
		token.Text("x"),
	}, token.Normalize([]token.Token{token.Whitespace(" "), token.Text("x")}))

	// a fold not after a decoded word resolves right away
	assert.Equal(t, []token.Token{
		token.Text("x"),
		token.Fold(" "),
		token.Fold(" "),
		token.Text("y"),
	}, token.Normalize([]token.Token{
		token.Text("x"),
		token.LineBreak{},
		token.LineBreak{},
		token.Text("y"),
	}))

	// held whitespace is flushed before text
	assert.Equal(t, []token.Token{
		token.DecodedWord("a"),
		token.Whitespace(" "),
		token.Text("x"),
	}, token.Normalize([]token.Token{
		token.DecodedWord("a"),
		token.Whitespace(" "),
		token.Text("x"),
	}))

	// a second fold after a held fold is emitted and the held one dropped
	assert.Equal(t, []token.Token{
		token.DecodedWord("a"),
		token.Fold(" "),
		token.Text("x"),
	}, token.Normalize([]token.Token{
		token.DecodedWord("a"),
		token.LineBreak{},
		token.LineBreak{},
		token.Text("x"),
	}))

	// anything pending at the end is dropped
	assert.Equal(t, []token.Token{
		token.DecodedWord("a"),
	}, token.Normalize([]token.Token{
		token.DecodedWord("a"),
		token.Whitespace(" "),
		token.LineBreak{},
	}))

	assert.Empty(t, token.Normalize(nil))
}

func TestJoin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab c", token.Join([]token.Token{
		token.Text("a"),
		token.LineBreak{},
		token.DecodedWord("b"),
		token.Fold(" "),
		token.Whitespace(""),
		token.Text("c"),
	}))

	assert.Equal(t, "text", token.Kind(token.Text("")))
	assert.Equal(t, "whitespace", token.Kind(token.Whitespace("")))
	assert.Equal(t, "linebreak", token.Kind(token.LineBreak{}))
	assert.Equal(t, "decoded", token.Kind(token.DecodedWord("")))
}

func TestDecode_LongQWord(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 5000)
	assert.Equal(t, "x "+long+" y", token.Decode("x =?UTF-8?Q?"+long+"?= y"))
}
