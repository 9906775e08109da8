package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/citizen-services/internal/domain"
)

type memUsers struct {
	mu    sync.Mutex
	users []domain.User
}

func (m *memUsers) Create(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.ID = int64(len(m.users) + 1)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.users = append(m.users, *u)
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memUsers) List(context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.User{}, m.users...), nil
}

type memTickets struct {
	tickets []domain.Ticket
}

func (m *memTickets) Create(_ context.Context, t *domain.Ticket) error {
	t.ID = int64(len(m.tickets) + 1)
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	m.tickets = append(m.tickets, *t)
	return nil
}

func (m *memTickets) List(context.Context) ([]domain.Ticket, error) {
	return append([]domain.Ticket{}, m.tickets...), nil
}

func (m *memTickets) ListByUser(_ context.Context, userID int64) ([]domain.Ticket, error) {
	out := []domain.Ticket{}
	for _, t := range m.tickets {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTickets) Exists(context.Context) (bool, error) {
	return len(m.tickets) > 0, nil
}

type memCategories struct {
	categories []domain.Category
}

func (m *memCategories) Create(_ context.Context, c *domain.Category) error {
	c.ID = int64(len(m.categories) + 1)
	m.categories = append(m.categories, *c)
	return nil
}

func (m *memCategories) GetBySlug(_ context.Context, slug string) (*domain.Category, error) {
	for i := range m.categories {
		if m.categories[i].Slug == slug {
			c := m.categories[i]
			return &c, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memCategories) List(context.Context) ([]domain.Category, error) {
	return append([]domain.Category{}, m.categories...), nil
}

func (m *memCategories) Exists(context.Context) (bool, error) {
	return len(m.categories) > 0, nil
}

type memSchemes struct {
	schemes []domain.Scheme
}

func (m *memSchemes) Create(_ context.Context, s *domain.Scheme) error {
	s.ID = int64(len(m.schemes) + 1)
	m.schemes = append(m.schemes, *s)
	return nil
}

func (m *memSchemes) List(context.Context) ([]domain.Scheme, error) {
	return append([]domain.Scheme{}, m.schemes...), nil
}

func (m *memSchemes) GetBySlug(_ context.Context, slug string) (*domain.Scheme, error) {
	for i := range m.schemes {
		if m.schemes[i].Slug == slug {
			s := m.schemes[i]
			return &s, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memSchemes) ListByCategory(_ context.Context, categoryID int64) ([]domain.Scheme, error) {
	out := []domain.Scheme{}
	for _, s := range m.schemes {
		if s.CategoryID == categoryID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSchemes) Search(_ context.Context, term string) ([]domain.Scheme, error) {
	term = strings.ToLower(term)
	out := []domain.Scheme{}
	for _, s := range m.schemes {
		if strings.Contains(strings.ToLower(s.Title), term) ||
			strings.Contains(strings.ToLower(s.Description), term) ||
			strings.Contains(strings.ToLower(s.Ministry), term) {
			out = append(out, s)
		}
	}
	return out, nil
}

type memDocuments struct {
	docs []domain.Document
}

func (m *memDocuments) ListByUser(_ context.Context, userID int64) ([]domain.Document, error) {
	out := []domain.Document{}
	for _, d := range m.docs {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

type memApplications struct {
	apps []domain.Application
}

func (m *memApplications) ListByUser(_ context.Context, userID int64) ([]domain.Application, error) {
	out := []domain.Application{}
	for _, a := range m.apps {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}
