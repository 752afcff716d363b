// Package draft implements the client-side editing core: the draft model,
// the edit session buffer, the list cache, save/delete coordination, AI
// text merging, and the single-slot error surface.
//
// All types in this package are mutated only from the UI's single update
// loop; network calls run elsewhere and hand results back as values.
package draft

import "time"

// Draft is a user-authored title/content pair persisted by the remote store.
// The id is opaque, server-assigned, and stable once issued; timestamps are
// server-authoritative.
type Draft struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
