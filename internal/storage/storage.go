// Package storage persists the profile document. The in-memory tree is the
// source of truth; stores only durably record the last fully written
// document and hand it back on the next start.
package storage

import "github.com/miloscript/monify/internal/model"

// Store is the durable persistence contract.
//
// Load returns ok=false when no document has ever been saved; that is not
// an error, and callers initialize defaults. Save replaces the whole
// document; a caller never observes a partial write.
type Store interface {
	Load() (*model.Document, bool, error)
	Save(doc *model.Document) error
}
