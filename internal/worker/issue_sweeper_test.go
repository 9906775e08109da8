package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/citizen-services/internal/domain"
	"github.com/spec-kit/citizen-services/internal/persistence"
	"github.com/spec-kit/citizen-services/internal/repository"
	"github.com/spec-kit/citizen-services/internal/service"
	"github.com/spec-kit/citizen-services/internal/triage"
)

var sweepNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func newDesk(t *testing.T, tickets []domain.DeskTicket) *service.DeskService {
	t.Helper()
	store := repository.NewDeskTicketStore(persistence.NewMemoryKeyValueStore(), repository.DefaultDeskTicketKey)
	_, err := store.Seed(context.Background(), tickets)
	require.NoError(t, err)
	return service.NewDeskService(service.DeskDependencies{
		Store: store,
		Clock: func() time.Time { return sweepNow },
	})
}

func TestIssueSweeperCountsByKind(t *testing.T) {
	tickets := []domain.DeskTicket{
		{ID: "a", Status: domain.TicketStatusResolved, Priority: domain.TicketPriorityLow, Department: domain.DepartmentPayment, CreatedAt: sweepNow.Add(-time.Hour)},
		{ID: "b", Status: domain.TicketStatusTodo, Priority: domain.TicketPriorityHigh, Department: domain.DepartmentDocument, CreatedAt: sweepNow.Add(-time.Hour)},
		{ID: "c", Status: domain.TicketStatusTodo, Priority: domain.TicketPriorityHigh, Department: domain.DepartmentApplication, CreatedAt: sweepNow.Add(-2 * time.Hour)},
		{ID: "d", Status: domain.TicketStatusTodo, Priority: domain.TicketPriorityLow, Department: domain.DepartmentPayment, CreatedAt: sweepNow.Add(-time.Hour)},
	}
	sweeper := NewIssueSweeper(newDesk(t, tickets), time.Minute, zap.NewNop())

	counts, err := sweeper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[triage.IssueKind]int{
		triage.IssueSolvedWithoutResponse: 1,
		triage.IssueHighPriorityUnsolved:  2,
	}, counts)
}

func TestIssueSweeperEmptyStore(t *testing.T) {
	sweeper := NewIssueSweeper(newDesk(t, nil), time.Minute, nil)

	counts, err := sweeper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestIssueSweeperRunStopsOnCancel(t *testing.T) {
	sweeper := NewIssueSweeper(newDesk(t, nil), 10*time.Millisecond, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestIssueSweeperDisabled(t *testing.T) {
	// returns immediately without a ticker
	NewIssueSweeper(newDesk(t, nil), 0, nil).Run(context.Background())
}
