package header

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-mailwords/message/header/field"
	"github.com/zostay/go-mailwords/message/header/token"
)

// Errors returned by various header methods and functions.
var (
	// ErrNoSuchField is returned by Header methods when the operation
	// being performed failed because the header named does not exist.
	ErrNoSuchField = errors.New("no such header field")

	// ErrManyFields is returned by Header methods when the operation
	// being performed failed because the there are multiple fields with the
	// given name.
	ErrManyFields = errors.New("many header fields found")
)

// These are standard headers defined in RFC 5322.
const (
	Bcc                     = "Bcc"
	Cc                      = "Cc"
	Comments                = "Comments"
	ContentTransferEncoding = "Content-transfer-encoding"
	ContentType             = "Content-type"
	Date                    = "Date"
	From                    = "From"
	InReplyTo               = "In-reply-to"
	Keywords                = "Keywords"
	MessageID               = "Message-id"
	References              = "References"
	ReplyTo                 = "Reply-to"
	Sender                  = "Sender"
	Subject                 = "Subject"
	To                      = "To"
)

// Even more custom date formats, built from those seen in the wild that the
// usual parsers have trouble with.
const (
	// UnixDateWithEarlyYear is a weird one, eh?
	UnixDateWithEarlyYear = "Mon Jan 02 15:04:05 2006 MST"
)

var messageIDRe = regexp.MustCompile(`<[^<>\s]+>`)

// Header is an ordered list of field views over a header block. It is
// read-only and holds no caches, so a parsed Header may be shared between
// goroutines.
//
// The getter methods decode the field body on every call. The getter methods
// will return an error if the field being fetched has not been set on the
// header. The error returned will be ErrNoSuchField.
type Header struct {
	lbr    Break
	fields []*field.Field
}

// New builds a header from existing field views.
func New(lbr Break, fields ...*field.Field) *Header {
	return &Header{lbr: lbr, fields: fields}
}

// Break returns the line break used to separate header fields.
func (h *Header) Break() Break {
	if h.lbr == "" {
		return LF
	}
	return h.lbr
}

// Len returns the number of fields in the header.
func (h *Header) Len() int {
	return len(h.fields)
}

// Field returns the nth field or nil if n is out of range.
func (h *Header) Field(n int) *field.Field {
	if n < 0 || n >= len(h.fields) {
		return nil
	}
	return h.fields[n]
}

// Fields returns all the fields in order.
func (h *Header) Fields() []*field.Field {
	return h.fields
}

// IndexesNamed returns the indexes of the fields with the given name. Names are
// compared without regard to case.
func (h *Header) IndexesNamed(name string) []int {
	var ixs []int
	for i, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			ixs = append(ixs, i)
		}
	}
	return ixs
}

// FieldNamed returns the nth (0-indexed) field with the given name or nil if
// there is no such field.
func (h *Header) FieldNamed(name string, n int) *field.Field {
	for _, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			if n == 0 {
				return f
			}
			n--
		}
	}
	return nil
}

// AllFieldsNamed returns every field with the given name.
func (h *Header) AllFieldsNamed(name string) []*field.Field {
	var fs []*field.Field
	for _, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			fs = append(fs, f)
		}
	}
	return fs
}

// single returns the only field with the given name, the first with
// ErrManyFields if there are several, or ErrNoSuchField.
func (h *Header) single(name string) (*field.Field, error) {
	fs := h.AllFieldsNamed(name)
	if len(fs) == 0 {
		return nil, ErrNoSuchField
	}

	if len(fs) > 1 {
		return fs[0], ErrManyFields
	}

	return fs[0], nil
}

// Get retrieves the decoded text of the named field.
//
// If the named field is not set in the header, it will return an empty string
// with ErrNoSuchField. If there are multiple headers for the given named field,
// it will return the first value found and return ErrManyFields.
func (h *Header) Get(name string) (string, error) {
	f, err := h.single(name)
	if f == nil {
		return "", err
	}
	return f.Text(), err
}

// GetRaw retrieves the raw, undecoded body of the named field. The returned
// slice shares memory with the parsed message and must not be modified.
//
// Errors are returned in the same way as Get.
func (h *Header) GetRaw(name string) ([]byte, error) {
	f, err := h.single(name)
	if f == nil {
		return nil, err
	}
	return f.Value(), err
}

// GetTokens retrieves the normalized tokens of the named field.
//
// Errors are returned in the same way as Get.
func (h *Header) GetTokens(name string) ([]token.Token, error) {
	f, err := h.single(name)
	if f == nil {
		return nil, err
	}
	return f.Tokens(), err
}

// GetAll fetches the decoded text of all the fields with the given name.
//
// It returns nil with ErrNoSuchField if no field with the given name is set on
// the header.
func (h *Header) GetAll(name string) ([]string, error) {
	fs := h.AllFieldsNamed(name)
	if len(fs) == 0 {
		return nil, ErrNoSuchField
	}

	bs := make([]string, len(fs))
	for i, f := range fs {
		bs[i] = f.Text()
	}

	return bs, nil
}

// ParseTime is a function that provides the time parsing used by GetTime() and
// GetDate() to parse dates to be used on any field body. This will attempt to
// parse the date using the format specified by RFC 5322 first and fallback to
// parsing it in many other formats.
//
// It either returns a parsed time or the parse error.
func ParseTime(body string) (time.Time, error) {
	t, err := mail.ParseDate(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(body)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(UnixDateWithEarlyYear, body)
	if err == nil {
		return t, nil
	}

	return t, fmt.Errorf("time string %q cannot be parsed", body)
}

// GetTime gets the given date header field as a time.Time. It will attempt to
// parse the date in many formats, not just the format specified by RFC 5322
// (though, it will try that first).
//
// It will return an error if it is unable to parse the time value from the date
// header. It will return the zero value and ErrNoSuchField if the header does
// not exist. If more than one field has the name, the first is parsed and
// ErrManyFields is returned with it.
func (h *Header) GetTime(name string) (time.Time, error) {
	body, err := h.Get(name)
	if errors.Is(err, ErrNoSuchField) {
		return time.Time{}, err
	}

	t, perr := ParseTime(strings.TrimSpace(body))
	if perr != nil {
		return t, perr
	}

	return t, err
}

// ParseAddressList provides the same address parsing functionality build into
// the GetAddressList() and GetAllAddressLists() and can be used to parse any
// decoded field body. It will attempt a strict parse of the email address list.
// However, if that fails, an extremely lenient parsing will be attempted, which
// might result in results that can only be described as "weird" in the effort
// to provide some kind of result. It is so forgiving, it will return some kind
// of value for any input.
func ParseAddressList(body string) addr.AddressList {
	al, err := addr.ParseEmailAddressList(body)
	if err != nil {
		al = parseEmailAddressList(body)
	}

	return al
}

// GetAddressList will return an addr.AddressList for the named field, parsed
// from the decoded text, so encoded display names come out readable. This
// method works hard to avoid parse errors and tries to accept anything. As such
// a badly formatted address field might return a weird address value.
//
// It will return nil and ErrNoSuchField if the field is not set on the header.
// It will return ErrManyFields along with the first field's addresses if the
// field is set more than once on the header.
func (h *Header) GetAddressList(name string) (addr.AddressList, error) {
	body, err := h.Get(name)
	if errors.Is(err, ErrNoSuchField) {
		return nil, err
	}

	return ParseAddressList(body), err
}

// GetAllAddressLists will return a slice of addr.AddressList for all headers
// with the given name.
//
// This uses a very forgiving parser for email addresses, so it won't error on
// weird and wonky addresses, but do its best to return them, so you may get
// weird results from this.
//
// If the named field does not exist in the header, this will return nil with
// ErrNoSuchField.
func (h *Header) GetAllAddressLists(name string) ([]addr.AddressList, error) {
	bs, err := h.GetAll(name)
	if err != nil {
		return nil, err
	}

	allAl := make([]addr.AddressList, 0, len(bs))
	for _, b := range bs {
		allAl = append(allAl, ParseAddressList(b))
	}

	return allAl, nil
}

// GetKeywordsList will return a list of strings representing all the keywords
// set on the named header. These are formatted as for the Keywords header, but
// this is the generic method that allows for treating other headers as
// Keywords. There can be zero or more Keywords headers. Each header is, then,
// a comma-separated list of Keywords. This will collect those values from all
// the headers with the given name and return them.
//
// This method will return nil with ErrNoSuchField if the named field does not
// exist.
func (h *Header) GetKeywordsList(name string) ([]string, error) {
	bs, err := h.GetAll(name)
	if err != nil {
		return nil, err
	}

	allKs := make([]string, 0, len(bs)*2)
	for _, b := range bs {
		for _, k := range strings.Split(b, ",") {
			if nextK := strings.TrimSpace(k); nextK != "" {
				allKs = append(allKs, nextK)
			}
		}
	}

	return allKs, nil
}

// GetDate retrieves the Date header as a time.Time value.
func (h *Header) GetDate() (time.Time, error) {
	return h.GetTime(Date)
}

// GetSubject returns the decoded value of the Subject header field.
//
// If Subject is not set in the header, it will return an empty string with
// ErrNoSuchField. If there are multiple Subject headers, it will return
// ErrManyFields.
func (h *Header) GetSubject() (string, error) {
	return h.Get(Subject)
}

// GetFrom returns the From address field as an addr.AddressList.
func (h *Header) GetFrom() (addr.AddressList, error) {
	return h.GetAddressList(From)
}

// GetTo returns the To address field as an addr.AddressList.
func (h *Header) GetTo() (addr.AddressList, error) {
	return h.GetAddressList(To)
}

// GetCc returns the Cc address field as an addr.AddressList.
func (h *Header) GetCc() (addr.AddressList, error) {
	return h.GetAddressList(Cc)
}

// GetBcc returns the Bcc address field as an addr.AddressList.
func (h *Header) GetBcc() (addr.AddressList, error) {
	return h.GetAddressList(Bcc)
}

// GetReplyTo returns the Reply-to address field as an addr.AddressList.
func (h *Header) GetReplyTo() (addr.AddressList, error) {
	return h.GetAddressList(ReplyTo)
}

// GetSender returns the address list in the Sender header, if any.
func (h *Header) GetSender() (addr.AddressList, error) {
	return h.GetAddressList(Sender)
}

// GetKeywords returns all the keywords set on all the Keywords fields.
func (h *Header) GetKeywords() ([]string, error) {
	return h.GetKeywordsList(Keywords)
}

// GetComments returns the decoded content of the Comments header fields.
func (h *Header) GetComments() ([]string, error) {
	return h.GetAll(Comments)
}

// GetMessageID returns the Message ID found in the Message-id header, if any,
// with surrounding blanks removed. The angle brackets are kept.
func (h *Header) GetMessageID() (string, error) {
	id, err := h.Get(MessageID)
	return strings.TrimSpace(id), err
}

// ParseMessageIDList returns the message IDs found in a decoded field body,
// angle brackets included, in the order they appear. Text between the IDs,
// such as comments or stray words, is ignored. A body without any bracketed ID
// is split on whitespace instead, so bare IDs still come back.
func ParseMessageIDList(body string) []string {
	ids := messageIDRe.FindAllString(body, -1)
	if len(ids) == 0 {
		ids = strings.Fields(body)
	}
	return ids
}

// GetMessageIDList returns the message IDs listed in all the fields with the
// given name. It returns nil with ErrNoSuchField if no such field is set.
func (h *Header) GetMessageIDList(name string) ([]string, error) {
	bs, err := h.GetAll(name)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, b := range bs {
		ids = append(ids, ParseMessageIDList(b)...)
	}

	return ids, nil
}

// GetInReplyTo returns the message IDs in the In-reply-to header, if any.
func (h *Header) GetInReplyTo() ([]string, error) {
	return h.GetMessageIDList(InReplyTo)
}

// GetReferences returns the message IDs in the References header, if any.
func (h *Header) GetReferences() ([]string, error) {
	return h.GetMessageIDList(References)
}

// GetTransferEncoding returns the content of the Content-transfer-encoding
// header, lower-cased and trimmed.
func (h *Header) GetTransferEncoding() (string, error) {
	cte, err := h.Get(ContentTransferEncoding)
	return strings.ToLower(strings.TrimSpace(cte)), err
}
