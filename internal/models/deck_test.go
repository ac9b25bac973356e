package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	d := NewDeck("Idioms", "me")

	_, err := uuid.Parse(d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Idioms", d.Title)
	assert.False(t, d.CreatedAt.IsZero())

	assert.NotEqual(t, d.ID, NewDeck("Idioms", "me").ID)
}

func TestNewWord(t *testing.T) {
	w := NewWord("d1", "ephemeral", "short-lived")

	_, err := uuid.Parse(w.ID)
	require.NoError(t, err)
	assert.Equal(t, "d1", w.DeckID)
	assert.InDelta(t, DefaultEasinessFactor, w.EasinessFactor, 1e-9)
	assert.Zero(t, w.MasteryLevel)
	assert.Nil(t, w.LastTrained)
}
