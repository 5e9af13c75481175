package tui

import "github.com/bassamadnan/gmailfetch/gmail"

// A message carrying the result of listing message IDs.
type idsLoadedMsg struct{ ids []string }

// A message carrying a fetched record; rec is nil when the fetch failed.
type recordLoadedMsg struct {
	id  string
	rec *gmail.EmailRecord
}

// Message to clear a temporary status message after a timeout.
type clearTempStatusMsg struct{}
