package gmail

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// HeaderValue returns the value of the first header whose name matches name
// case-insensitively.
func HeaderValue(headers []Header, name string) (string, bool) {
	for _, h := range headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value, true
		}
	}
	return "", false
}

// headerOr returns the header value, or def when the header is missing or empty.
func headerOr(headers []Header, name, def string) string {
	if v, ok := HeaderValue(headers, name); ok && v != "" {
		return v
	}
	return def
}

// ExtractBody returns the plain text body of payload.
//
// For multipart payloads the first text/plain child wins. The text/html branch only
// applies to a payload without parts, which cannot happen inside the parts loop, so it
// never fires; a multipart payload with no text/plain child falls through to its own
// data, usually yielding "".
func ExtractBody(p *Payload) string {
	if p == nil {
		return ""
	}
	if len(p.Parts) > 0 {
		for _, part := range p.Parts {
			if part == nil {
				continue
			}
			switch part.MimeType {
			case "text/plain":
				return DecodeBody(part.Data)
			case "text/html":
				if len(p.Parts) == 0 {
					return DecodeBody(part.Data)
				}
			}
		}
	}
	return DecodeBody(p.Data)
}

// DecodeBody decodes base64url data as UTF-8 text. Failures are returned inline as
// "[Error decoding body: ...]".
func DecodeBody(data string) string {
	text, err := decode(data)
	if err != nil {
		return fmt.Sprintf("[Error decoding body: %v]", err)
	}
	return text
}

func decode(data string) (string, error) {
	if data == "" {
		return "", nil
	}
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		return "", &DecodeError{Err: err}
	}
	if !utf8.Valid(b) {
		return "", &DecodeError{Err: errors.New("invalid UTF-8 text")}
	}
	return string(b), nil
}
