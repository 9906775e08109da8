package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/citizen-services/internal/domain"
	"github.com/spec-kit/citizen-services/internal/events"
	"github.com/spec-kit/citizen-services/internal/repository"
	apperrors "github.com/spec-kit/citizen-services/pkg/util/errorutil"
)

// TicketService coordinates citizen assistance requests.
type TicketService struct {
	tickets    repository.TicketRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
	seedDemo   bool
	logger     *zap.Logger
}

// TicketDependencies bundles repositories for ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
	SeedDemo   bool
	Logger     *zap.Logger
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	UserID      int64
	Title       string
	Description string
	Category    string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketService{
		tickets:    deps.TicketRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
		seedDemo:   deps.SeedDemo,
		logger:     logger,
	}
}

var demoAssistanceTickets = []struct {
	title, description, category string
	status                       domain.TicketStatus
	priority                     domain.TicketPriority
}{
	{"Payment gateway issue", "Unable to complete payment for scheme application", "payment", domain.TicketStatusTodo, domain.TicketPriorityHigh},
	{"Refund pending", "Refund for cancelled application still pending", "payment", domain.TicketStatusInProgress, domain.TicketPriorityMedium},
	{"Document verification", "My documents are still under verification", "document", domain.TicketStatusTodo, domain.TicketPriorityHigh},
	{"KYC not updated", "KYC verification status not reflecting", "document", domain.TicketStatusInProgress, domain.TicketPriorityLow},
	{"Application status", "Application shows pending but should be approved", "application", domain.TicketStatusTodo, domain.TicketPriorityMedium},
	{"Form submission error", "Form keeps showing validation error", "application", domain.TicketStatusResolved, domain.TicketPriorityHigh},
	{"Transaction failed", "Payment transaction failed, money deducted but not credited", "payment", domain.TicketStatusTodo, domain.TicketPriorityHigh},
	{"File upload limit", "File size exceeds upload limit", "document", domain.TicketStatusResolved, domain.TicketPriorityLow},
}

// SeedDemoTickets inserts the demo requests for the first user when the table
// is empty. Check and insert are not atomic.
func (s *TicketService) SeedDemoTickets(ctx context.Context) error {
	exists, err := s.tickets.Exists(ctx)
	if err != nil || exists {
		return err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		s.logger.Debug("skipping demo tickets, no users yet")
		return nil
	}
	owner := users[0].ID
	for _, demo := range demoAssistanceTickets {
		ticket := &domain.Ticket{
			TicketNumber: generateTicketKey(),
			UserID:       owner,
			Title:        demo.title,
			Description:  demo.description,
			Status:       demo.status,
			Priority:     demo.priority,
			Category:     demo.category,
		}
		if err := s.tickets.Create(ctx, ticket); err != nil {
			return err
		}
	}
	s.logger.Info("demo tickets seeded", zap.Int64("user_id", owner), zap.Int("count", len(demoAssistanceTickets)))
	return nil
}

// List returns every ticket, or only the given user's when userID is set.
func (s *TicketService) List(ctx context.Context, userID *int64) ([]domain.Ticket, error) {
	if s.seedDemo {
		if err := s.SeedDemoTickets(ctx); err != nil {
			s.logger.Warn("demo ticket seeding failed", zap.Error(err))
		}
	}
	var (
		tickets []domain.Ticket
		err     error
	)
	if userID != nil {
		tickets, err = s.tickets.ListByUser(ctx, *userID)
	} else {
		tickets, err = s.tickets.List(ctx)
	}
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// Create files a new request with default status, priority and category.
func (s *TicketService) Create(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if input.UserID <= 0 || title == "" || description == "" {
		return nil, apperrors.NewValidationError("Missing required fields", nil)
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = domain.DefaultTicketCategory
	}

	ticket := &domain.Ticket{
		TicketNumber: generateTicketKey(),
		UserID:       input.UserID,
		Title:        title,
		Description:  description,
		Status:       domain.TicketStatusTodo,
		Priority:     domain.TicketPriorityMedium,
		Category:     category,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}
	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.TicketNumber,
		Actor:    events.Actor{UserID: domain.EmployeeRef(input.UserID), Role: domain.RoleUser},
		Payload: events.TicketCreatedPayload{
			TicketNumber: ticket.TicketNumber,
			Category:     ticket.Category,
			Priority:     ticket.Priority,
			Title:        ticket.Title,
		},
	})
	return ticket, nil
}

func generateTicketKey() string {
	return "TCK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func publishEvent(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if err := dispatcher.Publish(ctx, event); err != nil {
		logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
