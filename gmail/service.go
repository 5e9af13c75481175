package gmail

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bassamadnan/gmailfetch/config"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Service is the narrow view of the remote message API used by Client.
type Service interface {
	List(ctx context.Context, maxResults int) ([]string, error)
	Get(ctx context.Context, id string) (*Message, error)
}

type apiService struct {
	srv  *gmailapi.Service
	user string
}

// NewService adapts the Gmail REST API to Service, authorizing with httpClient.
func NewService(ctx context.Context, httpClient *http.Client, cfg config.Gmail) (Service, error) {
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	srv, err := gmailapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create Gmail service: %w", err)
	}
	user := cfg.User
	if user == "" {
		user = "me"
	}
	return &apiService{srv: srv, user: user}, nil
}

func (s *apiService) List(ctx context.Context, maxResults int) ([]string, error) {
	resp, err := s.srv.Users.Messages.List(s.user).
		MaxResults(int64(maxResults)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		ids = append(ids, m.Id)
	}
	return ids, nil
}

func (s *apiService) Get(ctx context.Context, id string) (*Message, error) {
	m, err := s.srv.Users.Messages.Get(s.user, id).
		Format("full").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return &Message{
		ID:       m.Id,
		ThreadID: m.ThreadId,
		Snippet:  m.Snippet,
		Payload:  convertPart(m.Payload),
	}, nil
}

func convertPart(part *gmailapi.MessagePart) *Payload {
	if part == nil {
		return nil
	}
	p := &Payload{MimeType: part.MimeType}
	for _, h := range part.Headers {
		if h != nil {
			p.Headers = append(p.Headers, Header{Name: h.Name, Value: h.Value})
		}
	}
	if part.Body != nil {
		p.Data = part.Body.Data
	}
	for _, child := range part.Parts {
		if c := convertPart(child); c != nil {
			p.Parts = append(p.Parts, c)
		}
	}
	return p
}
