package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/citizen-services/internal/domain"
	"github.com/spec-kit/citizen-services/internal/events"
	"github.com/spec-kit/citizen-services/internal/repository"
	"github.com/spec-kit/citizen-services/internal/triage"
	apperrors "github.com/spec-kit/citizen-services/pkg/util/errorutil"
)

// DeskActor is the employee acting on the desk.
type DeskActor struct {
	ID         string
	Name       string
	Role       domain.Role
	Department domain.Department
}

// DeskActorFromUser builds the actor for an authenticated user.
func DeskActorFromUser(u *domain.User) DeskActor {
	actor := DeskActor{ID: domain.EmployeeRef(u.ID), Name: u.Name, Role: u.Role}
	if u.Department != nil {
		actor.Department = *u.Department
	}
	return actor
}

func (a DeskActor) displayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}

// scoped reports whether the actor only sees its own department.
func (a DeskActor) scoped() bool {
	return a.Role != domain.RoleAdmin && a.Department != ""
}

// DeskService runs the employee ticket workflow over the desk ticket store.
type DeskService struct {
	store      repository.DeskTicketStore
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// DeskDependencies bundles collaborators for the desk service.
type DeskDependencies struct {
	Store      repository.DeskTicketStore
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Clock      func() time.Time
}

// NewDeskService creates the service.
func NewDeskService(deps DeskDependencies) *DeskService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &DeskService{
		store:      deps.Store,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		now:        clock,
	}
}

// SeedDemo stores the demo desk tickets when the store is empty.
func (s *DeskService) SeedDemo(ctx context.Context) (bool, error) {
	seeded, err := s.store.Seed(ctx, DemoDeskTickets(s.now()))
	if err != nil {
		return false, err
	}
	if seeded {
		s.logger.Info("desk tickets seeded")
	}
	return seeded, nil
}

// List returns the tickets visible to the actor matching filter, newest first.
func (s *DeskService) List(ctx context.Context, actor DeskActor, filter triage.Filter) ([]domain.DeskTicket, error) {
	tickets, err := s.visible(ctx, actor, filter)
	if err != nil {
		return nil, err
	}
	return triage.SortByCreated(tickets, true), nil
}

// Get returns one ticket.
func (s *DeskService) Get(ctx context.Context, actor DeskActor, id string) (*domain.DeskTicket, error) {
	ticket, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if err := s.checkAccess(actor, id, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// ApplyUpdate is the detail dialog save: it overwrites the set fields, assigns
// the ticket to the actor, appends one activity entry and stamps resolvedAt
// when the update moves the ticket to resolved.
func (s *DeskService) ApplyUpdate(ctx context.Context, actor DeskActor, id string, update domain.DeskTicketUpdate) (*domain.DeskTicket, error) {
	if update.IsEmpty() {
		return nil, apperrors.NewValidationError("no fields to update", nil)
	}
	if err := validateDeskUpdate(update); err != nil {
		return nil, err
	}
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}

	now := s.now()
	var previous domain.TicketStatus
	var activity domain.TicketActivity
	updated, err := s.store.Mutate(ctx, id, func(t *domain.DeskTicket) {
		previous = t.Status
		update.ApplyTo(t)
		if update.HasIssue != nil && update.IssueType == nil {
			if *update.HasIssue {
				t.IssueType = domain.IssueTypeEmployeeMarked
			} else {
				t.IssueType = domain.IssueTypeNone
				t.IssueDescription = ""
			}
		}
		t.AssignedTo = actor.ID
		if update.Status != nil && *update.Status == domain.TicketStatusResolved {
			t.ResolvedAt = &now
		}

		activity = domain.TicketActivity{
			ID:        uuid.NewString(),
			Timestamp: now,
			Action:    "Updated ticket",
			Employee:  actor.displayName(),
		}
		if update.Status != nil && *update.Status != previous {
			activity.Action = "Status changed to " + update.Status.Label()
		}
		if update.Response != nil && *update.Response != "" {
			activity.Details = "Added customer response"
		}
		t.AppendActivity(activity)
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if updated == nil {
		return nil, notFoundTicket(id)
	}

	s.publish(ctx, actor, events.EventDeskTicketUpdated, id, events.DeskTicketUpdatedPayload{
		Action:      activity.Action,
		HasResponse: activity.Details != "",
	})
	if updated.Status != previous {
		s.publish(ctx, actor, events.EventDeskTicketStatusChanged, id, events.DeskTicketStatusChangedPayload{
			OldStatus: previous,
			NewStatus: updated.Status,
		})
	}
	return updated, nil
}

// ChangeStatus is the quick status move from the board and list views. It
// records no activity but stamps resolvedAt like ApplyUpdate does.
func (s *DeskService) ChangeStatus(ctx context.Context, actor DeskActor, id string, status domain.TicketStatus) (*domain.DeskTicket, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": status})
	}
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}

	now := s.now()
	var previous domain.TicketStatus
	updated, err := s.store.Mutate(ctx, id, func(t *domain.DeskTicket) {
		previous = t.Status
		t.Status = status
		if status == domain.TicketStatusResolved {
			t.ResolvedAt = &now
		}
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if updated == nil {
		return nil, notFoundTicket(id)
	}
	if previous != status {
		s.publish(ctx, actor, events.EventDeskTicketStatusChanged, id, events.DeskTicketStatusChangedPayload{
			OldStatus: previous,
			NewStatus: status,
		})
	}
	return updated, nil
}

// Triage sets the priority and moves the ticket to in-progress.
func (s *DeskService) Triage(ctx context.Context, actor DeskActor, id string, priority domain.TicketPriority) (*domain.DeskTicket, error) {
	if !priority.Valid() {
		return nil, apperrors.NewValidationError("invalid priority", map[string]any{"priority": priority})
	}
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}

	var before domain.DeskTicket
	updated, err := s.store.Mutate(ctx, id, func(t *domain.DeskTicket) {
		before = *t
		t.Priority = priority
		t.Status = domain.TicketStatusInProgress
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if updated == nil {
		return nil, notFoundTicket(id)
	}
	s.publish(ctx, actor, events.EventDeskTicketStatusChanged, id, events.DeskTicketStatusChangedPayload{
		OldStatus:   before.Status,
		NewStatus:   updated.Status,
		OldPriority: before.Priority,
		NewPriority: updated.Priority,
	})
	return updated, nil
}

// MarkViewed records the first time the actor opens a ticket. Later calls
// leave the ticket unchanged.
func (s *DeskService) MarkViewed(ctx context.Context, actor DeskActor, id string) (*domain.DeskTicket, error) {
	ticket, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if ticket.ViewedByEmployee(actor.ID) {
		return ticket, nil
	}

	now := s.now()
	firstView := false
	updated, err := s.store.Mutate(ctx, id, func(t *domain.DeskTicket) {
		if t.ViewedByEmployee(actor.ID) {
			return
		}
		firstView = true
		t.ViewedBy = append(t.ViewedBy, actor.ID)
		t.AppendActivity(domain.TicketActivity{
			ID:        uuid.NewString(),
			Timestamp: now,
			Action:    "Viewed",
			Employee:  actor.displayName(),
		})
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if updated == nil {
		return nil, notFoundTicket(id)
	}
	if firstView {
		s.publish(ctx, actor, events.EventDeskTicketViewed, id, nil)
	}
	return updated, nil
}

// FlagIssue sets or clears the manual issue marker.
func (s *DeskService) FlagIssue(ctx context.Context, actor DeskActor, id string, flagged bool, description string) (*domain.DeskTicket, error) {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}

	now := s.now()
	updated, err := s.store.Mutate(ctx, id, func(t *domain.DeskTicket) {
		t.HasIssue = flagged
		action := "Issue cleared"
		if flagged {
			t.IssueType = domain.IssueTypeEmployeeMarked
			t.IssueDescription = description
			action = "Marked as issue"
		} else {
			t.IssueType = domain.IssueTypeNone
			t.IssueDescription = ""
		}
		t.AppendActivity(domain.TicketActivity{
			ID:        uuid.NewString(),
			Timestamp: now,
			Action:    action,
			Employee:  actor.displayName(),
			Details:   t.IssueDescription,
		})
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if updated == nil {
		return nil, notFoundTicket(id)
	}
	s.publish(ctx, actor, events.EventDeskTicketFlagged, id, events.DeskTicketFlaggedPayload{
		HasIssue:    flagged,
		Description: updated.IssueDescription,
	})
	return updated, nil
}

// StatusBoard groups the visible tickets by status, newest first in each column.
func (s *DeskService) StatusBoard(ctx context.Context, actor DeskActor, filter triage.Filter) (triage.StatusBuckets, error) {
	tickets, err := s.List(ctx, actor, filter)
	if err != nil {
		return triage.StatusBuckets{}, err
	}
	return triage.PartitionByStatus(tickets), nil
}

// Issues returns the visible tickets that need attention.
func (s *DeskService) Issues(ctx context.Context, actor DeskActor, filter triage.Filter) ([]triage.Flagged, error) {
	tickets, err := s.visible(ctx, actor, filter)
	if err != nil {
		return nil, err
	}
	return triage.Issues(tickets, s.now()), nil
}

// Recent returns the n newest visible tickets.
func (s *DeskService) Recent(ctx context.Context, actor DeskActor, n int) ([]domain.DeskTicket, error) {
	tickets, err := s.visible(ctx, actor, triage.Filter{})
	if err != nil {
		return nil, err
	}
	return triage.Recent(tickets, n), nil
}

// Overview counts the visible tickets for the dashboard header.
func (s *DeskService) Overview(ctx context.Context, actor DeskActor, filter triage.Filter) (triage.Summary, error) {
	tickets, err := s.visible(ctx, actor, filter)
	if err != nil {
		return triage.Summary{}, err
	}
	return triage.Overview(tickets), nil
}

// PersonalStats computes the actor's own counters.
func (s *DeskService) PersonalStats(ctx context.Context, actor DeskActor) (triage.Stats, error) {
	tickets, err := s.visible(ctx, actor, triage.Filter{})
	if err != nil {
		return triage.Stats{}, err
	}
	return triage.PersonalStats(tickets, actor.ID), nil
}

// Now exposes the service clock so callers render relative times consistently.
func (s *DeskService) Now() time.Time {
	return s.now()
}

func (s *DeskService) visible(ctx context.Context, actor DeskActor, filter triage.Filter) ([]domain.DeskTicket, error) {
	tickets, err := s.store.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if actor.scoped() {
		filter.Department = actor.Department
	}
	return filter.Apply(tickets), nil
}

func (s *DeskService) checkAccess(actor DeskActor, id string, ticket *domain.DeskTicket) error {
	if ticket == nil {
		return notFoundTicket(id)
	}
	if actor.scoped() && ticket.Department != actor.Department {
		return apperrors.NewForbidden("ticket belongs to another department")
	}
	return nil
}

func (s *DeskService) publish(ctx context.Context, actor DeskActor, eventType events.EventType, ticketID string, payload any) {
	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:      eventType,
		TicketID:  ticketID,
		Actor:     events.Actor{UserID: actor.ID, Role: actor.Role},
		Timestamp: s.now(),
		Payload:   payload,
	})
}

func validateDeskUpdate(u domain.DeskTicketUpdate) error {
	if u.Status != nil && !u.Status.Valid() {
		return apperrors.NewValidationError("invalid status", map[string]any{"status": *u.Status})
	}
	if u.Priority != nil && !u.Priority.Valid() {
		return apperrors.NewValidationError("invalid priority", map[string]any{"priority": *u.Priority})
	}
	if u.IssueType != nil && !u.IssueType.Valid() {
		return apperrors.NewValidationError("invalid issue type", map[string]any{"issueType": *u.IssueType})
	}
	return nil
}

func notFoundTicket(id string) error {
	return apperrors.NewNotFound("Ticket", map[string]any{"ticket_id": id})
}
