package session_test

import (
	"testing"

	"bullseye/internal/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewSession(t *testing.T) {
	s := session.New(0)
	assert.Equal(t, session.DefaultMaxAttempts, s.MaxAttempts)
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, 5, s.Remaining())

	other := session.New(3)
	assert.Equal(t, 3, other.MaxAttempts)
	assert.NotEqual(t, s.ID, other.ID)
}

func TestScoringAndTerminal(t *testing.T) {
	s := session.New(session.DefaultMaxAttempts)

	s.RecordTargetHit(session.DefaultHitBonus)
	assert.Equal(t, 50, s.Score)
	assert.Equal(t, 1, s.Attempts)
	assert.False(t, s.CheckTerminal())

	for i := 0; i < 3; i++ {
		s.RecordWallHit()
		assert.False(t, s.CheckTerminal())
	}
	assert.Equal(t, 1, s.Remaining())

	s.RecordWallHit()
	assert.True(t, s.CheckTerminal())
	assert.Equal(t, 50, s.Score)
	assert.Equal(t, 0, s.Remaining())

	// sticky even if attempts move past the limit
	s.RecordWallHit()
	assert.True(t, s.CheckTerminal())
	assert.True(t, s.GameOver)
	assert.Equal(t, 0, s.Remaining())
}
