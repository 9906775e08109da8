package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/spec-kit/citizen-services/internal/domain"
	"github.com/spec-kit/citizen-services/internal/persistence"
)

// DefaultDeskTicketKey is the key the desk ticket list is stored under.
const DefaultDeskTicketKey = "employee_tickets"

// DeskTicketStore keeps every desk ticket as one JSON array under a single
// key. Writes always replace the whole list.
type DeskTicketStore interface {
	List(ctx context.Context) ([]domain.DeskTicket, error)
	Get(ctx context.Context, id string) (*domain.DeskTicket, error)
	Seed(ctx context.Context, tickets []domain.DeskTicket) (bool, error)
	Update(ctx context.Context, id string, update domain.DeskTicketUpdate) (*domain.DeskTicket, error)
	Mutate(ctx context.Context, id string, fn func(*domain.DeskTicket)) (*domain.DeskTicket, error)
}

type deskTicketStore struct {
	kv  persistence.KeyValueStore
	key string
	// mu serializes read-modify-write cycles inside this process only.
	mu sync.Mutex
}

// NewDeskTicketStore builds a store over kv. An empty key falls back to DefaultDeskTicketKey.
func NewDeskTicketStore(kv persistence.KeyValueStore, key string) DeskTicketStore {
	if key == "" {
		key = DefaultDeskTicketKey
	}
	return &deskTicketStore{kv: kv, key: key}
}

func (s *deskTicketStore) List(ctx context.Context) ([]domain.DeskTicket, error) {
	tickets, _, err := s.load(ctx)
	return tickets, err
}

// Get returns nil without error when no ticket has the id.
func (s *deskTicketStore) Get(ctx context.Context, id string) (*domain.DeskTicket, error) {
	tickets, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tickets {
		if tickets[i].ID == id {
			return &tickets[i], nil
		}
	}
	return nil, nil
}

// Seed writes tickets only when nothing is stored yet and reports whether it did.
func (s *deskTicketStore) Seed(ctx context.Context, tickets []domain.DeskTicket) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, found, err := s.load(ctx)
	if err != nil || found {
		return false, err
	}
	if err := s.save(ctx, tickets); err != nil {
		return false, err
	}
	return true, nil
}

// Update overwrites the set fields of the matching ticket. An unknown id is a
// no-op: the stored list is left untouched and the result is nil.
func (s *deskTicketStore) Update(ctx context.Context, id string, update domain.DeskTicketUpdate) (*domain.DeskTicket, error) {
	return s.Mutate(ctx, id, update.ApplyTo)
}

func (s *deskTicketStore) Mutate(ctx context.Context, id string, fn func(*domain.DeskTicket)) (*domain.DeskTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range tickets {
		if tickets[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}

	fn(&tickets[idx])
	if err := s.save(ctx, tickets); err != nil {
		return nil, err
	}
	updated := tickets[idx]
	return &updated, nil
}

func (s *deskTicketStore) load(ctx context.Context) ([]domain.DeskTicket, bool, error) {
	raw, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", s.key, err)
	}
	if !found || raw == "" {
		return []domain.DeskTicket{}, false, nil
	}
	var tickets []domain.DeskTicket
	if err := json.Unmarshal([]byte(raw), &tickets); err != nil {
		return nil, true, fmt.Errorf("decode %s: %w", s.key, err)
	}
	if tickets == nil {
		tickets = []domain.DeskTicket{}
	}
	return tickets, true, nil
}

func (s *deskTicketStore) save(ctx context.Context, tickets []domain.DeskTicket) error {
	if tickets == nil {
		tickets = []domain.DeskTicket{}
	}
	raw, err := json.Marshal(tickets)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}
	if err := s.kv.Set(ctx, s.key, string(raw)); err != nil {
		return fmt.Errorf("write %s: %w", s.key, err)
	}
	return nil
}
