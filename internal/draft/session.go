package draft

import (
	"strings"
	"time"
)

// EditSession is the buffer for the draft currently being edited. It is
// either bound to a persisted draft id (saves update that draft) or unbound
// (the first successful save creates one). Buffers reflect the bound draft's
// values as of the last Load and are never implicitly re-synced.
type EditSession struct {
	boundID string // "" means unbound: an unsaved new draft
	title   string
	content string

	// Server-authoritative timestamps adopted from the last successful save
	// or Load. Zero while unbound.
	createdAt time.Time
	updatedAt time.Time
}

// Snapshot is a value copy of the session taken on the control thread, safe
// to hand to a network operation running elsewhere.
type Snapshot struct {
	BoundID string
	Title   string
	Content string
}

// NewEditSession returns an unbound session with empty buffers.
func NewEditSession() *EditSession {
	return &EditSession{}
}

// StartNew resets the session to unbound with empty buffers.
func (s *EditSession) StartNew() {
	*s = EditSession{}
}

// Load binds the session to d and copies its title and content into the
// buffers. Any unsaved edits are discarded; confirmation is a UI concern.
func (s *EditSession) Load(d Draft) {
	s.boundID = d.ID
	s.title = d.Title
	s.content = d.Content
	s.createdAt = d.CreatedAt
	s.updatedAt = d.UpdatedAt
}

// SetTitle writes the title buffer. No validation happens at write time.
func (s *EditSession) SetTitle(v string) {
	s.title = v
}

// SetContent writes the content buffer.
func (s *EditSession) SetContent(v string) {
	s.content = v
}

// Title returns the title buffer.
func (s *EditSession) Title() string { return s.title }

// Content returns the content buffer.
func (s *EditSession) Content() string { return s.content }

// BoundID returns the bound draft id, or "" when unbound.
func (s *EditSession) BoundID() string { return s.boundID }

// Bound reports whether the session is bound to a persisted draft.
func (s *EditSession) Bound() bool { return s.boundID != "" }

// UpdatedAt returns the last adopted server timestamp.
func (s *EditSession) UpdatedAt() time.Time { return s.updatedAt }

// Validate checks the buffers before a save. Content is unconstrained.
func (s *EditSession) Validate() error {
	return validateTitle(s.title)
}

// Snapshot captures the current binding and buffers by value.
func (s *EditSession) Snapshot() Snapshot {
	return Snapshot{BoundID: s.boundID, Title: s.title, Content: s.content}
}

// Bind adopts the server's identity and timestamps after a successful save.
// The buffers are left alone: the user may have typed while the request was
// in flight, and those edits must survive.
func (s *EditSession) Bind(d Draft) {
	s.boundID = d.ID
	s.createdAt = d.CreatedAt
	s.updatedAt = d.UpdatedAt
}

// Validate checks the snapshot the same way the live session would.
func (sn Snapshot) Validate() error {
	return validateTitle(sn.Title)
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Reason: "A title is required before saving."}
	}
	return nil
}
