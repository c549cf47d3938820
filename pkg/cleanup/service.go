// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/plandeck/plandeck/ent"
	"github.com/plandeck/plandeck/pkg/config"
	"github.com/plandeck/plandeck/pkg/queue"
	"github.com/plandeck/plandeck/pkg/services"
)

// Service periodically enforces retention policies:
//   - Removes event rows past their TTL (plans are short-lived; any event
//     older than the TTL belongs to a terminal plan)
//   - Removes finished stage job rows past the same TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config       *config.RetentionConfig
	client       *ent.Client
	eventService *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client, eventService *services.EventService) *Service {
	return &Service{
		config:       cfg,
		client:       client,
		eventService: eventService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.cleanupOldEvents(ctx)
	s.cleanupFinishedJobs(ctx)
}

func (s *Service) cleanupOldEvents(ctx context.Context) {
	count, err := s.eventService.CleanupOldEvents(ctx, s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up old events", "count", count)
	}
}

func (s *Service) cleanupFinishedJobs(ctx context.Context) {
	count, err := queue.PurgeFinishedJobs(ctx, s.client, s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: stage job cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged finished stage jobs", "count", count)
	}
}
