package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/citizen-services/internal/domain"
	"github.com/spec-kit/citizen-services/internal/events"
	"github.com/spec-kit/citizen-services/internal/persistence"
	"github.com/spec-kit/citizen-services/internal/repository"
	"github.com/spec-kit/citizen-services/internal/triage"
	apperrors "github.com/spec-kit/citizen-services/pkg/util/errorutil"
)

var deskNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

var (
	admin    = DeskActor{ID: "3", Name: "Admin User", Role: domain.RoleAdmin}
	payments = DeskActor{ID: "2", Name: "Jane Employee", Role: domain.RoleEmployee, Department: domain.DepartmentPayment}
)

type recorder struct {
	events []events.Event
}

func (r *recorder) handle(_ context.Context, e events.Event) error {
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) types() []events.EventType {
	out := make([]events.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func newDesk(t *testing.T) (*DeskService, repository.DeskTicketStore, *recorder) {
	t.Helper()
	store := repository.NewDeskTicketStore(persistence.NewMemoryKeyValueStore(), "")
	dispatcher := events.NewInMemoryDispatcher()
	rec := &recorder{}
	for _, et := range []events.EventType{
		events.EventDeskTicketUpdated,
		events.EventDeskTicketStatusChanged,
		events.EventDeskTicketViewed,
		events.EventDeskTicketFlagged,
	} {
		dispatcher.Subscribe(et, rec.handle)
	}
	svc := NewDeskService(DeskDependencies{
		Store:      store,
		Dispatcher: dispatcher,
		Clock:      func() time.Time { return deskNow },
	})
	seeded, err := svc.SeedDemo(context.Background())
	require.NoError(t, err)
	require.True(t, seeded)
	return svc, store, rec
}

func statusPtr(s domain.TicketStatus) *domain.TicketStatus { return &s }
func strPtr(s string) *string                               { return &s }

func TestDeskSeedOnlyOnce(t *testing.T) {
	svc, _, _ := newDesk(t)
	again, err := svc.SeedDemo(context.Background())
	require.NoError(t, err)
	assert.False(t, again)

	all, err := svc.List(context.Background(), admin, triage.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 8)
	assert.Equal(t, "TKT-007", all[0].ID, "newest first")
}

func TestDeskEmployeeScopedToDepartment(t *testing.T) {
	svc, _, _ := newDesk(t)
	ctx := context.Background()

	mine, err := svc.List(ctx, payments, triage.Filter{Department: domain.DepartmentDocument})
	require.NoError(t, err)
	require.Len(t, mine, 3)
	for _, tk := range mine {
		assert.Equal(t, domain.DepartmentPayment, tk.Department)
	}

	_, err = svc.Get(ctx, payments, "TKT-003")
	assert.Equal(t, http.StatusForbidden, apperrors.ToDomainError(err).HTTPStatus)

	_, err = svc.Get(ctx, admin, "TKT-404")
	assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
}

func TestApplyUpdateStatusChange(t *testing.T) {
	svc, _, rec := newDesk(t)
	ctx := context.Background()

	updated, err := svc.ApplyUpdate(ctx, payments, "TKT-001", domain.DeskTicketUpdate{
		Status:   statusPtr(domain.TicketStatusResolved),
		Response: strPtr("Gateway fixed, please retry"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusResolved, updated.Status)
	assert.Equal(t, "2", updated.AssignedTo)
	require.NotNil(t, updated.ResolvedAt)
	assert.Equal(t, deskNow, *updated.ResolvedAt)
	require.Len(t, updated.Activities, 1)
	assert.Equal(t, "Status changed to Resolved", updated.Activities[0].Action)
	assert.Equal(t, "Added customer response", updated.Activities[0].Details)
	assert.Equal(t, "Jane Employee", updated.Activities[0].Employee)

	reread, err := svc.Get(ctx, admin, "TKT-001")
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusResolved, reread.Status)

	assert.Equal(t, []events.EventType{events.EventDeskTicketUpdated, events.EventDeskTicketStatusChanged}, rec.types())
}

func TestApplyUpdateWithoutStatusChange(t *testing.T) {
	svc, _, rec := newDesk(t)
	updated, err := svc.ApplyUpdate(context.Background(), admin, "TKT-004", domain.DeskTicketUpdate{
		AdminNotes: strPtr("called customer"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusInProgress, updated.Status)
	assert.Nil(t, updated.ResolvedAt)
	assert.Equal(t, "3", updated.AssignedTo)
	require.Len(t, updated.Activities, 1)
	assert.Equal(t, "Updated ticket", updated.Activities[0].Action)
	assert.Empty(t, updated.Activities[0].Details)
	assert.Equal(t, []events.EventType{events.EventDeskTicketUpdated}, rec.types())
}

func TestApplyUpdateIssueFlagDerivesType(t *testing.T) {
	svc, _, _ := newDesk(t)
	flag := true
	updated, err := svc.ApplyUpdate(context.Background(), admin, "TKT-005", domain.DeskTicketUpdate{
		HasIssue:         &flag,
		IssueDescription: strPtr("Customer unreachable"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.IssueTypeEmployeeMarked, updated.IssueType)

	flag = false
	updated, err = svc.ApplyUpdate(context.Background(), admin, "TKT-005", domain.DeskTicketUpdate{HasIssue: &flag})
	require.NoError(t, err)
	assert.Equal(t, domain.IssueTypeNone, updated.IssueType)
	assert.Empty(t, updated.IssueDescription)
	assert.Len(t, updated.Activities, 2)
}

func TestApplyUpdateValidation(t *testing.T) {
	svc, store, _ := newDesk(t)
	ctx := context.Background()
	before, err := store.List(ctx)
	require.NoError(t, err)

	_, err = svc.ApplyUpdate(ctx, admin, "TKT-001", domain.DeskTicketUpdate{})
	assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus)

	_, err = svc.ApplyUpdate(ctx, admin, "TKT-001", domain.DeskTicketUpdate{Status: statusPtr("closed")})
	assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus)

	_, err = svc.ApplyUpdate(ctx, admin, "TKT-404", domain.DeskTicketUpdate{Title: strPtr("x")})
	assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)

	after, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestChangeStatusStampsResolvedAt(t *testing.T) {
	svc, _, rec := newDesk(t)
	updated, err := svc.ChangeStatus(context.Background(), admin, "TKT-002", domain.TicketStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusResolved, updated.Status)
	require.NotNil(t, updated.ResolvedAt)
	assert.Empty(t, updated.Activities)
	assert.Equal(t, "emp-1", updated.AssignedTo)
	assert.Equal(t, []events.EventType{events.EventDeskTicketStatusChanged}, rec.types())

	_, err = svc.ChangeStatus(context.Background(), admin, "TKT-002", "archived")
	assert.Error(t, err)
}

func TestTriageMovesToInProgress(t *testing.T) {
	svc, _, rec := newDesk(t)
	updated, err := svc.Triage(context.Background(), admin, "TKT-005", domain.TicketPriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketPriorityHigh, updated.Priority)
	assert.Equal(t, domain.TicketStatusInProgress, updated.Status)
	require.Len(t, rec.events, 1)
	payload := rec.events[0].Payload.(events.DeskTicketStatusChangedPayload)
	assert.Equal(t, domain.TicketPriorityMedium, payload.OldPriority)
	assert.Equal(t, domain.TicketStatusTodo, payload.OldStatus)
}

func TestMarkViewedOnce(t *testing.T) {
	svc, _, rec := newDesk(t)
	ctx := context.Background()

	first, err := svc.MarkViewed(ctx, payments, "TKT-007")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, first.ViewedBy)
	require.Len(t, first.Activities, 1)
	assert.Equal(t, "Viewed", first.Activities[0].Action)

	second, err := svc.MarkViewed(ctx, payments, "TKT-007")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, second.ViewedBy)
	assert.Len(t, second.Activities, 1)
	assert.Equal(t, []events.EventType{events.EventDeskTicketViewed}, rec.types())
}

func TestFlagIssueFeedsIssuesView(t *testing.T) {
	svc, _, _ := newDesk(t)
	ctx := context.Background()

	_, err := svc.FlagIssue(ctx, admin, "TKT-004", true, "Customer disputes documents")
	require.NoError(t, err)

	issues, err := svc.Issues(ctx, admin, triage.Filter{})
	require.NoError(t, err)
	labels := map[string]string{}
	for _, f := range issues {
		labels[f.Ticket.ID] = f.Issue.Label
	}
	assert.Equal(t, "Customer disputes documents", labels["TKT-004"])
	assert.Equal(t, "Stuck in progress for 5 days", labels["TKT-002"])
	assert.Equal(t, "High priority - Needs immediate attention", labels["TKT-001"])
	assert.NotContains(t, labels, "TKT-005")
	assert.Equal(t, domain.TicketPriorityHigh, issues[0].Ticket.Priority)

	cleared, err := svc.FlagIssue(ctx, admin, "TKT-004", false, "ignored")
	require.NoError(t, err)
	assert.False(t, cleared.HasIssue)
	assert.Empty(t, cleared.IssueDescription)
}

func TestDeskViewsAndStats(t *testing.T) {
	svc, _, _ := newDesk(t)
	ctx := context.Background()

	board, err := svc.StatusBoard(ctx, admin, triage.Filter{})
	require.NoError(t, err)
	assert.Len(t, board.Todo, 4)
	assert.Len(t, board.InProgress, 2)
	assert.Len(t, board.Resolved, 2)

	recent, err := svc.Recent(ctx, admin, 3)
	require.NoError(t, err)
	ids := []string{recent[0].ID, recent[1].ID, recent[2].ID}
	assert.Equal(t, []string{"TKT-007", "TKT-001", "TKT-003"}, ids)

	summary, err := svc.Overview(ctx, payments, triage.Filter{})
	require.NoError(t, err)
	assert.Equal(t, triage.Summary{Total: 3, Todo: 2, InProgress: 1, HighPriority: 2}, summary)

	_, err = svc.ApplyUpdate(ctx, payments, "TKT-007", domain.DeskTicketUpdate{Status: statusPtr(domain.TicketStatusInProgress)})
	require.NoError(t, err)
	stats, err := svc.PersonalStats(ctx, payments)
	require.NoError(t, err)
	assert.Equal(t, triage.Stats{New: 1, InProgress: 1, Unsolved: 1}, stats)
}
