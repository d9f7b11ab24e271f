package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
	"github.com/tradeco/board/internal/metrics"
)

type eventService struct {
	events ports.EventRepository
	jobs   ports.JobRepository
	log    zerolog.Logger
}

// NewEventService returns the EventService that records the audit trail and cascades
// account deletion to the job board.
func NewEventService(events ports.EventRepository, jobs ports.JobRepository, log zerolog.Logger) ports.EventService {
	return &eventService{events: events, jobs: jobs, log: log}
}

// Process records one account event and applies its side effects.
func (s *eventService) Process(ctx context.Context, ev domain.AccountEvent) error {
	// 1. Audit trail (non-fatal on failure).
	if err := s.events.InsertEvent(ctx, &ev); err != nil {
		s.log.Warn().Err(err).Str("type", string(ev.Type)).Str("account_id", ev.AccountID).Msg("failed to insert account event")
	}
	metrics.AccountEventsTotal.WithLabelValues(string(ev.Type)).Inc()

	if ev.Type != domain.EventDeleted {
		return nil
	}

	// 2. Deletion cascade: reservations go back on the board, open postings are withdrawn.
	switch ev.Role {
	case domain.RoleTradesman:
		n, err := s.jobs.ReleaseReservedBy(ctx, ev.AccountID)
		if err != nil {
			return fmt.Errorf("process event: release jobs: %w", err)
		}
		s.log.Info().Str("account_id", ev.AccountID).Int64("released", n).Msg("reservations released")
	case domain.RoleClient:
		n, err := s.jobs.DeleteAvailablePostedBy(ctx, ev.AccountID)
		if err != nil {
			return fmt.Errorf("process event: withdraw jobs: %w", err)
		}
		s.log.Info().Str("account_id", ev.AccountID).Int64("withdrawn", n).Msg("open postings withdrawn")
	}
	return nil
}
