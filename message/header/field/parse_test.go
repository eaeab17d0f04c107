package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mailwords/message/header/field"
)

func TestParseLines(t *testing.T) {
	t.Parallel()

	// basic parse, no folding
	input := []byte("a:\nb:\nc:\nd:\n")
	lb := []byte("\n")
	lines, err := field.ParseLines(input, lb)
	assert.NoError(t, err)
	assert.Equal(t, field.Lines{
		[]byte("a:\n"),
		[]byte("b:\n"),
		[]byte("c:\n"),
		[]byte("d:\n"),
	}, lines)

	// folding parse
	input = []byte("a:b\n b\n b\nb:\nc:\nd:\n\teeee\n")
	lines, err = field.ParseLines(input, lb)
	assert.NoError(t, err)
	assert.Equal(t, field.Lines{
		[]byte("a:b\n b\n b\n"),
		[]byte("b:\n"),
		[]byte("c:\n"),
		[]byte("d:\n\teeee\n"),
	}, lines)

	// folding parse, with start junk
	input = []byte(" start:\njunk\na:b\n b\n b\nb:\nc:\nd:\n\teeee\n")
	lines, err = field.ParseLines(input, lb)
	badStart := &field.BadStartError{}
	require.ErrorAs(t, err, &badStart)
	assert.Equal(t, []byte(" start:\njunk\n"), badStart.BadStart)
	assert.Equal(t, field.Lines{
		[]byte("a:b\n b\n b\n"),
		[]byte("b:\n"),
		[]byte("c:\n"),
		[]byte("d:\n\teeee\n"),
	}, lines)

	// no final line break
	input = []byte("a: 1\r\nb: 2")
	lines, err = field.ParseLines(input, []byte("\r\n"))
	assert.NoError(t, err)
	assert.Equal(t, field.Lines{
		[]byte("a: 1\r\n"),
		[]byte("b: 2"),
	}, lines)

	lines, err = field.ParseLines(nil, lb)
	assert.NoError(t, err)
	assert.Empty(t, lines)
}

func TestParseLines_ZeroCopy(t *testing.T) {
	t.Parallel()

	input := []byte("Subject: one\n two\nTo: x\n")
	lines, err := field.ParseLines(input, []byte("\n"))
	require.NoError(t, err)
	require.Len(t, lines, 2)

	// the views share memory with the input
	input[9] = 'O'
	assert.Equal(t, []byte("Subject: One\n two\n"), []byte(lines[0]))
}

func TestParse(t *testing.T) {
	t.Parallel()

	f := field.Parse([]byte("Subject: test\n"))
	require.NotNil(t, f)
	assert.Equal(t, "Subject", f.Name())
	assert.Equal(t, []byte("Subject"), f.Key())
	assert.Equal(t, []byte("test"), f.Value())
	assert.Equal(t, "Subject: test", f.String())
	assert.Equal(t, "test", f.Text())

	f = field.Parse([]byte("Subject: =?utf-8?b?4pmg4pmj4pml4pmm?=\r\n"))
	require.NotNil(t, f)
	assert.Equal(t, "Subject", f.Name())
	assert.Equal(t, []byte("=?utf-8?b?4pmg4pmj4pml4pmm?="), f.Value())
	assert.Equal(t, "♠♣♥♦", f.Text())
	assert.Equal(t, "Subject: =?utf-8?b?4pmg4pmj4pml4pmm?=", f.String())

	f = field.Parse([]byte("Subject"))
	require.NotNil(t, f)
	assert.Equal(t, "Subject", f.Name())
	assert.Equal(t, []byte{}, f.Value())
	assert.Equal(t, "", f.Text())
	assert.Equal(t, "Subject", f.String())

	f = field.Parse([]byte("Subject:\r\n  folded right away\r\n"))
	assert.Equal(t, []byte("folded right away"), f.Value())
	assert.Equal(t, "folded right away", f.Text())
}
