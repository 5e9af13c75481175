package gmail

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultMaxResults = 5

// Client lists and fetches messages. Remote failures are logged and reported as empty or
// absent results rather than returned.
type Client struct {
	svc        Service
	maxResults int
	logger     zerolog.Logger
}

// NewClient creates a Client over svc. maxResults is used when a caller asks for a
// non-positive count.
func NewClient(svc Service, maxResults int) *Client {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	return &Client{
		svc:        svc,
		maxResults: maxResults,
		logger:     log.With().Str("module", "gmail").Logger(),
	}
}

// ListMessageIDs returns up to max message IDs in the order the service returns them.
func (c *Client) ListMessageIDs(ctx context.Context, max int) []string {
	if max <= 0 {
		max = c.maxResults
	}
	ids, err := c.svc.List(ctx, max)
	if err != nil {
		c.logger.Error().Err(&APIError{Op: "list", Err: err}).Msg("An error occurred")
		return []string{}
	}
	if len(ids) > max {
		ids = ids[:max]
	}
	return ids
}

// FetchMessage returns the record for id, or nil if it could not be retrieved.
func (c *Client) FetchMessage(ctx context.Context, id string) *EmailRecord {
	msg, err := c.svc.Get(ctx, id)
	if err != nil {
		c.logger.Error().Err(&APIError{Op: "get", ID: id, Err: err}).Msg("Error fetching email")
		return nil
	}
	return NewEmailRecord(msg)
}

// NewEmailRecord flattens msg, filling placeholders for missing headers.
func NewEmailRecord(msg *Message) *EmailRecord {
	payload := msg.Payload
	if payload == nil {
		payload = &Payload{}
	}
	return &EmailRecord{
		ID:       msg.ID,
		ThreadID: msg.ThreadID,
		Subject:  headerOr(payload.Headers, "Subject", NoSubject),
		From:     headerOr(payload.Headers, "From", UnknownSender),
		To:       headerOr(payload.Headers, "To", UnknownRecipient),
		Date:     headerOr(payload.Headers, "Date", UnknownDate),
		Body:     ExtractBody(payload),
		Snippet:  msg.Snippet,
	}
}
