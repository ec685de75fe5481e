package tui

import "github.com/MKhiriev/go-kv-keeper/models"

// Messages delivered by adapter-backed commands. Every remote call resolves
// to exactly one of these or to errMsg.
type (
	keysLoadedMsg  []string
	entryLoadedMsg models.Entry
	savedMsg       models.Entry
	deletedMsg     string
	loggedInMsg    struct{}
	copiedMsg      struct{}

	errMsg struct{ err error }
)
