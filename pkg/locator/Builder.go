package locator

import (
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	DefaultBaseURL = "https://cataas.com"

	catSegment  = "/cat"
	gifSegment  = "/gif"
	saysSegment = "/says/"
	tokenParam  = "random"
)

/*
Request describes what an artifact locator addresses. A request with a
DatabaseID always addresses that exact catalog record and ignores the other
fields.
*/
type Request struct {
	Animated   bool
	Tag        string
	Text       string
	DatabaseID string
}

/*
TokenSource produces the cache-busting value appended to locators. Values
must be distinct across calls.
*/
type TokenSource func() string

type BuilderConfig struct {
	BaseURL string
	Token   TokenSource
}

type Builder struct {
	baseURL string
	token   TokenSource
}

func NewBuilder(config BuilderConfig) Builder {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}

	if config.Token == nil {
		config.Token = NewClockToken()
	}

	return Builder{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		token:   config.Token,
	}
}

func (b Builder) Random(animated bool) string {
	return b.Build(Request{Animated: animated})
}

func (b Builder) WithText(text string, animated bool) string {
	return b.Build(Request{Text: text, Animated: animated})
}

func (b Builder) WithTag(tag string, animated bool) string {
	return b.Build(Request{Tag: tag, Animated: animated})
}

func (b Builder) WithTagAndText(tag, text string, animated bool) string {
	return b.Build(Request{Tag: tag, Text: text, Animated: animated})
}

/*
ByDatabaseID addresses a catalog record directly. The identifier fully
determines the artifact so no token is appended.
*/
func (b Builder) ByDatabaseID(id string) string {
	return b.baseURL + catSegment + "/" + escapeSegment(id)
}

/*
Build composes a locator for req with a fresh token.
*/
func (b Builder) Build(req Request) string {
	if req.DatabaseID != "" {
		return b.withToken(b.ByDatabaseID(req.DatabaseID))
	}

	sb := strings.Builder{}
	sb.WriteString(b.baseURL)
	sb.WriteString(catSegment)

	if req.Tag != "" {
		sb.WriteString("/")
		sb.WriteString(escapeSegment(req.Tag))
	}

	if req.Animated {
		sb.WriteString(gifSegment)
	}

	if req.Text != "" {
		sb.WriteString(saysSegment)
		sb.WriteString(escapeSegment(req.Text))
	}

	return b.withToken(sb.String())
}

/*
Refresh recomputes a locator from the stored request of an existing entry.
Only the token differs from the previous locator.
*/
func (b Builder) Refresh(req Request) string {
	return b.Build(req)
}

func (b Builder) withToken(u string) string {
	return u + "?" + tokenParam + "=" + url.QueryEscape(b.token())
}

/*
escapeSegment percent-encodes everything outside the unreserved set
A-Z a-z 0-9 - _ . ! ~ * ' ( ). Unlike url.PathEscape it also encodes
sub-delimiters such as & = + : @ $ so captions reach the service byte for byte.
*/
func escapeSegment(s string) string {
	const hex = "0123456789ABCDEF"

	sb := strings.Builder{}
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]

		if isUnreserved(c) {
			sb.WriteByte(c)
			continue
		}

		sb.WriteByte('%')
		sb.WriteByte(hex[c>>4])
		sb.WriteByte(hex[c&15])
	}

	return sb.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	return strings.IndexByte("-_.!~*'()", c) >= 0
}

/*
NewClockToken returns a TokenSource based on the wall clock in milliseconds.
When two calls land in the same millisecond the value is bumped so the
sequence stays strictly increasing.
*/
func NewClockToken() TokenSource {
	var (
		mu   sync.Mutex
		last int64
	)

	return func() string {
		mu.Lock()
		defer mu.Unlock()

		now := time.Now().UnixMilli()

		if now <= last {
			now = last + 1
		}

		last = now
		return strconv.FormatInt(now, 10)
	}
}
