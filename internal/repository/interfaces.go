package repository

import (
	"context"
	"errors"

	"github.com/mhennig/kalender/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a unique constraint would be violated.
var ErrDuplicate = errors.New("already exists")

// OptionRepo stores the ordered option lists (platforms, content formats,
// statuses, topics). Values are unique per kind; list order is the order
// shown to the user, and for statuses the first entry is the generation
// default.
type OptionRepo interface {
	List(ctx context.Context, kind domain.OptionKind) ([]string, error)
	Append(ctx context.Context, kind domain.OptionKind, value string) error
	Remove(ctx context.Context, kind domain.OptionKind, value string) error
	RemoveAt(ctx context.Context, kind domain.OptionKind, index int) (string, error)
}

// ThemeRepo stores the prompt themes.
type ThemeRepo interface {
	Create(ctx context.Context, t *domain.Theme) error
	GetByName(ctx context.Context, name string) (*domain.Theme, error)
	List(ctx context.Context) ([]*domain.Theme, error)
	Update(ctx context.Context, t *domain.Theme) error
	Delete(ctx context.Context, name string) error
}
