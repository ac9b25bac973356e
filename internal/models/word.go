package models

import (
	"time"

	"github.com/google/uuid"
)

// Word is a single vocabulary entry belonging to a deck. DeckID lives in the
// same identifier space as Deck.ID and must reference an existing deck in
// whichever store the word sits in.
//
// Synonyms, Antonyms and Sentences are ordered string slices here; the SQLite
// adapter serializes them to JSON text, the Postgres adapter stores them as
// text[].
type Word struct {
	ID       string
	DeckID   string
	Name     string
	Meaning  string
	Category string

	Synonyms  []string
	Antonyms  []string
	Sentences []string

	IsFavorite bool

	// Spaced-repetition state. The scheduling formula itself lives in the
	// practice layer; sync only carries these fields around.
	MasteryLevel      int
	EasinessFactor    float64
	Interval          int
	Repetitions       int
	TimesTrained      int
	TimesCorrect      int
	TimesIncorrect    int
	LastTrained       *time.Time
	LastAnswerCorrect bool
	NextReviewDate    *time.Time
	MasteredAt        *time.Time

	CreatedAt time.Time
}

// DefaultEasinessFactor is the spaced-repetition starting factor for a word
// that has never been trained.
const DefaultEasinessFactor = 2.5

// NewWord mints a word in deckID with a fresh identifier and untrained
// scheduling state.
func NewWord(deckID, name, meaning string) Word {
	return Word{
		ID:             uuid.NewString(),
		DeckID:         deckID,
		Name:           name,
		Meaning:        meaning,
		EasinessFactor: DefaultEasinessFactor,
		CreatedAt:      time.Now().UTC(),
	}
}
