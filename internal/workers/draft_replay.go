// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/MKhiriev/work-diary/internal/service"
)

// DraftReplayWorker sends body writes left over from an earlier run.
type DraftReplayWorker struct {
	drafts service.DraftService
	logger *logger.Logger
}

func NewDraftReplayWorker(drafts service.DraftService, logger *logger.Logger) *DraftReplayWorker {
	return &DraftReplayWorker{drafts: drafts, logger: logger}
}

func (w *DraftReplayWorker) Run(ctx context.Context) error {
	restored, err := w.drafts.Replay(ctx)
	if err != nil {
		return fmt.Errorf("error replaying drafts: %w", err)
	}

	if restored > 0 {
		w.logger.Info().Int("restored", restored).Msg("replayed unsaved drafts")
	}
	return nil
}
