package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ilyabe/wordvault/internal/common"
)

// OperationType enumerates the mutations the outbox can carry. The string
// values are stored in the ledger and must stay stable across releases.
type OperationType string

const (
	OpCreateDeck         OperationType = "CREATE_DECK"
	OpUpdateDeck         OperationType = "UPDATE_DECK"
	OpDeleteDeck         OperationType = "DELETE_DECK"
	OpCreateWord         OperationType = "CREATE_WORD"
	OpUpdateWord         OperationType = "UPDATE_WORD"
	OpUpdateWordDetails  OperationType = "UPDATE_WORD_DETAILS"
	OpUpdateWordStats    OperationType = "UPDATE_WORD_STATS"
	OpToggleWordFavorite OperationType = "TOGGLE_WORD_FAVORITE"
	OpDeleteWord         OperationType = "DELETE_WORD"
)

// Valid reports whether t is a known operation type.
func (t OperationType) Valid() bool {
	switch t {
	case OpCreateDeck, OpUpdateDeck, OpDeleteDeck,
		OpCreateWord, OpUpdateWord, OpUpdateWordDetails, OpUpdateWordStats,
		OpToggleWordFavorite, OpDeleteWord:
		return true
	}
	return false
}

// Operation is one durable outbox entry: a local mutation not yet confirmed
// by the backend. ID is the ledger sequence number assigned on append.
// Attempts counts failed delivery passes; once it reaches the configured
// maximum the entry is flagged Dead and no longer retried.
type Operation struct {
	ID        int64
	Type      OperationType
	Payload   []byte
	Attempts  int
	Dead      bool
	CreatedAt time.Time
}

// NewOperation validates the type and encodes the payload. The ledger can
// only be appended to through this, so an unknown type never reaches storage.
func NewOperation(t OperationType, payload any) (*Operation, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownOperation, t)
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return &Operation{Type: t, Payload: b}, nil
}

// Decode unmarshals the payload into dst. JSON errors are wrapped in
// ErrMalformedPayload so the queue processor can classify poison entries.
func (o *Operation) Decode(dst any) error {
	if err := json.Unmarshal(o.Payload, dst); err != nil {
		return fmt.Errorf("%w: %v", common.ErrMalformedPayload, err)
	}
	return nil
}

// DeckPayload carries a full deck for CREATE_DECK. The owner is attached by
// the queue processor at send time, never stored in the ledger.
type DeckPayload struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDeckPayload snapshots d into its outbox form.
func NewDeckPayload(d Deck) DeckPayload {
	return DeckPayload{ID: d.ID, Title: d.Title, Author: d.Author, CreatedAt: d.CreatedAt}
}

// Deck converts the payload back into the canonical entity.
func (p DeckPayload) Deck() Deck {
	return Deck{ID: p.ID, Title: p.Title, Author: p.Author, CreatedAt: p.CreatedAt}
}

// WordPayload carries a full word for CREATE_WORD.
type WordPayload struct {
	ID       string `json:"id"`
	DeckID   string `json:"deck_id"`
	Name     string `json:"name"`
	Meaning  string `json:"meaning"`
	Category string `json:"category"`

	Synonyms  []string `json:"synonyms"`
	Antonyms  []string `json:"antonyms"`
	Sentences []string `json:"sentences"`

	IsFavorite bool `json:"is_favorite"`

	MasteryLevel      int        `json:"mastery_level"`
	EasinessFactor    float64    `json:"easiness_factor"`
	Interval          int        `json:"interval"`
	Repetitions       int        `json:"repetitions"`
	TimesTrained      int        `json:"times_trained"`
	TimesCorrect      int        `json:"times_correct"`
	TimesIncorrect    int        `json:"times_incorrect"`
	LastTrained       *time.Time `json:"last_trained"`
	LastAnswerCorrect bool       `json:"last_answer_correct"`
	NextReviewDate    *time.Time `json:"next_review_date"`
	MasteredAt        *time.Time `json:"mastered_at"`

	CreatedAt time.Time `json:"created_at"`
}

// NewWordPayload snapshots w into its outbox form.
func NewWordPayload(w Word) WordPayload {
	return WordPayload{
		ID: w.ID, DeckID: w.DeckID, Name: w.Name, Meaning: w.Meaning, Category: w.Category,
		Synonyms: w.Synonyms, Antonyms: w.Antonyms, Sentences: w.Sentences,
		IsFavorite:   w.IsFavorite,
		MasteryLevel: w.MasteryLevel, EasinessFactor: w.EasinessFactor,
		Interval: w.Interval, Repetitions: w.Repetitions,
		TimesTrained: w.TimesTrained, TimesCorrect: w.TimesCorrect, TimesIncorrect: w.TimesIncorrect,
		LastTrained: w.LastTrained, LastAnswerCorrect: w.LastAnswerCorrect,
		NextReviewDate: w.NextReviewDate, MasteredAt: w.MasteredAt,
		CreatedAt: w.CreatedAt,
	}
}

// Word converts the payload back into the canonical entity.
func (p WordPayload) Word() Word {
	return Word{
		ID: p.ID, DeckID: p.DeckID, Name: p.Name, Meaning: p.Meaning, Category: p.Category,
		Synonyms: p.Synonyms, Antonyms: p.Antonyms, Sentences: p.Sentences,
		IsFavorite:   p.IsFavorite,
		MasteryLevel: p.MasteryLevel, EasinessFactor: p.EasinessFactor,
		Interval: p.Interval, Repetitions: p.Repetitions,
		TimesTrained: p.TimesTrained, TimesCorrect: p.TimesCorrect, TimesIncorrect: p.TimesIncorrect,
		LastTrained: p.LastTrained, LastAnswerCorrect: p.LastAnswerCorrect,
		NextReviewDate: p.NextReviewDate, MasteredAt: p.MasteredAt,
		CreatedAt: p.CreatedAt,
	}
}

// UpdatePayload carries a partial field map for the UPDATE_* operations.
// Keys are remote column names; the remote adapter whitelists them.
type UpdatePayload struct {
	ID      string         `json:"id"`
	Updates map[string]any `json:"updates"`
}

// TogglePayload carries the favorite flag flip for TOGGLE_WORD_FAVORITE.
type TogglePayload struct {
	ID         string `json:"id"`
	IsFavorite bool   `json:"is_favorite"`
}

// DeletePayload identifies the row a DELETE_* operation removes.
type DeletePayload struct {
	ID string `json:"id"`
}
