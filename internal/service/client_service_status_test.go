package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/work-diary/internal/logger"
)

func TestStatusBoard(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	b := NewStatusBoard(logger.Nop()).(*statusBoard)
	b.now = func() time.Time { return now }

	_, ok := b.Current()
	assert.False(t, ok, "empty board")

	b.Info("Saved", 2*time.Second)
	st, ok := b.Current()
	require.True(t, ok)
	assert.Equal(t, StatusInfo, st.Kind)
	assert.Equal(t, "Saved", st.Message)

	b.Error("Failed to add comment", 5*time.Second)
	st, ok = b.Current()
	require.True(t, ok)
	assert.Equal(t, StatusError, st.Kind)
	assert.Equal(t, "Failed to add comment", st.Message)

	now = now.Add(5 * time.Second)
	_, ok = b.Current()
	assert.False(t, ok, "expired")
}
