package coordinator

import (
	"context"
	"log/slog"
	"time"
)

// armAlarm schedules an in-process deadline check for a plan. The timer is
// one of two backstops: the DeadlineSweeper covers plans whose pod
// restarted and lost its timers.
func (c *Coordinator) armAlarm(planID string, deadline time.Time) {
	c.alarmsMu.Lock()
	defer c.alarmsMu.Unlock()

	if old, ok := c.alarms[planID]; ok {
		old.Stop()
	}
	c.alarms[planID] = time.AfterFunc(time.Until(deadline), func() {
		c.expire(planID)
	})
}

// disarmAlarm stops and drops a plan's deadline timer.
func (c *Coordinator) disarmAlarm(planID string) {
	c.alarmsMu.Lock()
	defer c.alarmsMu.Unlock()

	if t, ok := c.alarms[planID]; ok {
		t.Stop()
		delete(c.alarms, planID)
	}
}

// expire fires when a plan's deadline passes. MarkFailed absorbs the call
// if the plan already reached a terminal status.
func (c *Coordinator) expire(planID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := c.MarkFailed(ctx, planID, TimeoutError); err != nil {
		slog.Error("Deadline expiry failed to mark plan", "plan_id", planID, "error", err)
	}
}

// StopAlarms cancels all in-process timers. Called on shutdown; the
// sweeper on the next pod picks expired plans back up from the store.
func (c *Coordinator) StopAlarms() {
	c.alarmsMu.Lock()
	defer c.alarmsMu.Unlock()

	for id, t := range c.alarms {
		t.Stop()
		delete(c.alarms, id)
	}
}

// DeadlineSweeper periodically scans the store for non-terminal plans
// whose deadline has passed and fails them. All pods run it independently;
// MarkFailed is idempotent so concurrent sweeps are harmless.
type DeadlineSweeper struct {
	coordinator *Coordinator
	interval    time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
}

// NewDeadlineSweeper creates a sweeper with the given scan interval.
func NewDeadlineSweeper(c *Coordinator, interval time.Duration) *DeadlineSweeper {
	return &DeadlineSweeper{
		coordinator: c,
		interval:    interval,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

// Start launches the sweep loop.
func (s *DeadlineSweeper) Start(ctx context.Context) {
	go func() {
		defer close(s.doneCh)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopCh:
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
	slog.Info("Deadline sweeper started", "interval", s.interval)
}

// Stop signals the loop to exit and waits for it.
func (s *DeadlineSweeper) Stop() {
	close(s.stopCh)
	<-s.doneCh
}

func (s *DeadlineSweeper) sweep(ctx context.Context) {
	expired, err := s.coordinator.store.ListExpired(ctx, time.Now())
	if err != nil {
		slog.Error("Deadline sweep query failed", "error", err)
		return
	}
	if len(expired) == 0 {
		return
	}

	slog.Warn("Deadline sweep found expired plans", "count", len(expired))
	for _, st := range expired {
		if _, err := s.coordinator.MarkFailed(ctx, st.PlanID, TimeoutError); err != nil {
			slog.Error("Failed to fail expired plan", "plan_id", st.PlanID, "error", err)
		}
	}
}
