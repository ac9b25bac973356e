// Package models holds the canonical in-memory entities of the vocabulary
// store. The storage adapters map these to their own column shapes; nothing
// outside an adapter should see a serialized form.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Deck is a named collection of words. IDs are UUID strings assigned at
// creation time, so the same value identifies the deck locally and remotely
// and an initial upload never has to remap anything.
type Deck struct {
	ID        string
	Title     string
	Author    string
	CreatedAt time.Time
}

// NewDeck mints a deck with a fresh identifier. Decks are always created on
// the device; the backend only ever sees ids produced here.
func NewDeck(title, author string) Deck {
	return Deck{
		ID:        uuid.NewString(),
		Title:     title,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}
}
