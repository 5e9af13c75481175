package tui

import (
	"context"

	"github.com/bassamadnan/gmailfetch/gmail"
	tea "github.com/charmbracelet/bubbletea"
)

// Source is the lister and fetcher the browser reads from.
type Source interface {
	ListMessageIDs(ctx context.Context, max int) []string
	FetchMessage(ctx context.Context, id string) *gmail.EmailRecord
}

// listIDsCmd lists message IDs once.
func listIDsCmd(ctx context.Context, src Source, max int) tea.Cmd {
	return func() tea.Msg {
		return idsLoadedMsg{ids: src.ListMessageIDs(ctx, max)}
	}
}

// fetchRecordCmd fetches one message by ID.
func fetchRecordCmd(ctx context.Context, src Source, id string) tea.Cmd {
	return func() tea.Msg {
		return recordLoadedMsg{id: id, rec: src.FetchMessage(ctx, id)}
	}
}
