package gmail

import "fmt"

// Placeholders used when a header is absent.
const (
	NoSubject        = "[No Subject]"
	UnknownSender    = "[Unknown Sender]"
	UnknownRecipient = "[Unknown Recipient]"
	UnknownDate      = "[Unknown Date]"
)

// Header is one name/value pair from a message header list.
type Header struct {
	Name  string
	Value string
}

// Payload is a node of a message body tree. Leaves carry base64url Data; multipart nodes
// carry Parts.
type Payload struct {
	MimeType string
	Headers  []Header
	Data     string
	Parts    []*Payload
}

// Message is a full message as returned by the service.
type Message struct {
	ID       string
	ThreadID string
	Snippet  string
	Payload  *Payload
}

// EmailRecord is the flattened, display-ready view of one message.
type EmailRecord struct {
	ID       string
	ThreadID string
	From     string
	To       string
	Subject  string
	Date     string
	Body     string
	Snippet  string
}

// APIError reports a failed call to the message service.
type APIError struct {
	Op  string
	ID  string
	Err error
}

func (e *APIError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("gmail %s %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("gmail %s: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// DecodeError reports a body part that is not valid base64url or not valid UTF-8.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
