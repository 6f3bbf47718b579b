package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteTextRejectsShort(t *testing.T) {
	_, err := NoteText("short", 20)
	assert.Error(t, err)

	var tooShort *TooShortError
	assert.True(t, errors.As(err, &tooShort))
	assert.Equal(t, 20, tooShort.Min)
	assert.Equal(t, 5, tooShort.Actual)
	assert.Equal(t, "Note must be at least 20 characters long", err.Error())
}

func TestNoteTextTrimsBeforeMeasuring(t *testing.T) {
	// 19 meaningful characters padded with whitespace must still fail
	_, err := NoteText("   nineteen chars..    ", 20)
	assert.Error(t, err)

	// 20+ meaningful characters succeed and come back trimmed
	text, err := NoteText("  this is exactly twenty+ chars long  ", 20)
	assert.NoError(t, err)
	assert.Equal(t, "this is exactly twenty+ chars long", text)
}

func TestNoteTextEmpty(t *testing.T) {
	_, err := NoteText("", 20)
	assert.Error(t, err)
	_, err = NoteText("     \t\n  ", 20)
	assert.Error(t, err)
}

func TestNoteTextCountsCharactersNotBytes(t *testing.T) {
	// 11 Cyrillic characters occupy 22 bytes; the rule must still
	// reject them against a 20-character minimum.
	_, err := NoteText("приветмирок", 20)
	assert.Error(t, err)

	var tooShort *TooShortError
	assert.True(t, errors.As(err, &tooShort))
	assert.Equal(t, 11, tooShort.Actual)

	// 20 Cyrillic characters pass.
	text, err := NoteText("приветмирокontwintig", 20)
	assert.NoError(t, err)
	assert.Equal(t, "приветмирокontwintig", text)
}

func TestNoteTextConfigurableMinimum(t *testing.T) {
	text, err := NoteText("tiny", 4)
	assert.NoError(t, err)
	assert.Equal(t, "tiny", text)

	_, err = NoteText("tiny", 5)
	assert.EqualError(t, err, "Note must be at least 5 characters long")
}
