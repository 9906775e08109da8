package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/citizen-services/internal/domain"
	"github.com/spec-kit/citizen-services/internal/service"
	"github.com/spec-kit/citizen-services/internal/triage"
)

// sweepActor sees every department.
var sweepActor = service.DeskActor{ID: "issue-sweeper", Name: "Issue sweeper", Role: domain.RoleAdmin}

// IssueSweeper periodically classifies desk tickets and logs how many need attention.
type IssueSweeper struct {
	desk     *service.DeskService
	interval time.Duration
	logger   *zap.Logger
}

// NewIssueSweeper builds a sweeper; a non-positive interval disables it.
func NewIssueSweeper(desk *service.DeskService, interval time.Duration, logger *zap.Logger) *IssueSweeper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IssueSweeper{desk: desk, interval: interval, logger: logger}
}

// Sweep runs one pass and returns the flagged ticket count per issue kind.
func (s *IssueSweeper) Sweep(ctx context.Context) (map[triage.IssueKind]int, error) {
	flagged, err := s.desk.Issues(ctx, sweepActor, triage.Filter{})
	if err != nil {
		return nil, err
	}
	counts := make(map[triage.IssueKind]int)
	for _, f := range flagged {
		counts[f.Issue.Kind]++
	}
	if len(flagged) > 0 {
		fields := []zap.Field{zap.Int("total", len(flagged))}
		for kind, n := range counts {
			fields = append(fields, zap.Int(string(kind), n))
		}
		s.logger.Info("desk tickets need attention", fields...)
	}
	return counts, nil
}

// Run sweeps once immediately and then on every tick until ctx is cancelled.
func (s *IssueSweeper) Run(ctx context.Context) {
	if s == nil || s.desk == nil || s.interval <= 0 {
		return
	}
	s.sweepAndLog(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepAndLog(ctx)
		}
	}
}

func (s *IssueSweeper) sweepAndLog(ctx context.Context) {
	if _, err := s.Sweep(ctx); err != nil && ctx.Err() == nil {
		s.logger.Warn("issue sweep failed", zap.Error(err))
	}
}
