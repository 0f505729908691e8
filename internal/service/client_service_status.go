package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/work-diary/internal/logger"
)

type statusBoard struct {
	mu      sync.RWMutex
	current Status
	set     bool

	now    func() time.Time
	logger *logger.Logger
}

// NewStatusBoard returns an empty board. Every caption is also written to the
// log.
func NewStatusBoard(logger *logger.Logger) StatusBoard {
	return &statusBoard{now: time.Now, logger: logger}
}

func (b *statusBoard) Info(msg string, ttl time.Duration) {
	b.publish(StatusInfo, msg, ttl)
	b.logger.Info().Str("status", msg).Send()
}

func (b *statusBoard) Error(msg string, ttl time.Duration) {
	b.publish(StatusError, msg, ttl)
	b.logger.Warn().Str("status", msg).Send()
}

func (b *statusBoard) Current() (Status, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.set || !b.now().Before(b.current.ExpiresAt) {
		return Status{}, false
	}
	return b.current, true
}

func (b *statusBoard) publish(kind StatusKind, msg string, ttl time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = Status{Kind: kind, Message: msg, ExpiresAt: b.now().Add(ttl)}
	b.set = true
}
