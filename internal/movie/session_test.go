package movie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviegraph/moviegraph/internal/apperr"
)

func TestSession_EmptySelection(t *testing.T) {
	s := NewSession()

	_, err := s.Selected()
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeState))
	assert.Equal(t, "nothing selected yet", apperr.UserMessage(err))
}

func TestSession_SelectReplacesPrior(t *testing.T) {
	s := NewSession()

	first := &DetailRecord{Movie: MovieRef{Title: "The Matrix"}}
	second := &DetailRecord{Movie: MovieRef{Title: "Cloud Atlas"}}

	s.Select(first)
	got, err := s.Selected()
	require.NoError(t, err)
	assert.Same(t, first, got)

	s.Select(second)
	got, err = s.Selected()
	require.NoError(t, err)
	assert.Same(t, second, got)
}

func TestSession_Clear(t *testing.T) {
	s := NewSession()
	s.Select(&DetailRecord{Movie: MovieRef{Title: "The Matrix"}})
	s.Clear()

	_, err := s.Selected()
	assert.True(t, apperr.HasCode(err, apperr.CodeState))
}
