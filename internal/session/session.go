package session

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultMaxAttempts = 5
	DefaultHitBonus    = 50
)

// Session tracks score and attempts for one play-through.
// GameOver is sticky: once set it is never cleared.
type Session struct {
	ID          uuid.UUID
	StartedAt   time.Time
	Score       int
	Attempts    int
	MaxAttempts int
	GameOver    bool
}

// New creates a session allowing maxAttempts shots. Non-positive values
// fall back to DefaultMaxAttempts.
func New(maxAttempts int) *Session {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Session{
		ID:          uuid.New(),
		StartedAt:   time.Now(),
		MaxAttempts: maxAttempts,
	}
}

// RecordTargetHit consumes an attempt and awards bonus points.
func (s *Session) RecordTargetHit(bonus int) {
	s.Attempts++
	s.Score += bonus
}

// RecordWallHit consumes an attempt without scoring.
func (s *Session) RecordWallHit() {
	s.Attempts++
}

// CheckTerminal sets GameOver once every attempt is used and reports it.
func (s *Session) CheckTerminal() bool {
	if s.Attempts == s.MaxAttempts {
		s.GameOver = true
	}
	return s.GameOver
}

// Remaining returns the number of arrows left.
func (s *Session) Remaining() int {
	if r := s.MaxAttempts - s.Attempts; r > 0 {
		return r
	}
	return 0
}
