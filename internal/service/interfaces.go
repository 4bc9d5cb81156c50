// Package service implements the application use cases on top of the
// repositories, the scheduler and the row builder.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/mhennig/kalender/internal/domain"
	"github.com/mhennig/kalender/internal/generation"
)

// ErrInvalidRequest marks a generate request rejected before any work
// was done.
var ErrInvalidRequest = errors.New("invalid generate request")

// SettingsService manages the persistent option lists and prompt themes
// that drive calendar generation.
type SettingsService interface {
	Options(ctx context.Context, kind domain.OptionKind) ([]string, error)
	AddOption(ctx context.Context, kind domain.OptionKind, value string) error
	RemoveOption(ctx context.Context, kind domain.OptionKind, value string) error
	// RemoveOptionAt removes the entry at the given zero-based list
	// position and returns the removed value.
	RemoveOptionAt(ctx context.Context, kind domain.OptionKind, index int) (string, error)

	Themes(ctx context.Context) ([]*domain.Theme, error)
	Theme(ctx context.Context, name string) (*domain.Theme, error)
	AddTheme(ctx context.Context, t *domain.Theme) error
	UpdateTheme(ctx context.Context, t *domain.Theme) error
	RemoveTheme(ctx context.Context, name string) error

	// Snapshot loads all lists and themes into a single settings value
	// used for one generation run.
	Snapshot(ctx context.Context) (*domain.Settings, error)
}

// GenerateRequest describes one calendar generation run.
type GenerateRequest struct {
	Customer    string
	StartDate   time.Time
	NumDays     int
	Frequencies map[string]int

	// Offline forces example-based content even when a text generator
	// is configured. RequireAI fails the run instead of silently
	// falling back when no generator is available.
	Offline   bool
	RequireAI bool

	Progress generation.ProgressFunc
}

// GenerateResult carries the produced rows together with the settings
// snapshot they were built from, so exports see the same lists.
type GenerateResult struct {
	Rows     []domain.Row
	Settings *domain.Settings
	Warnings []string
}

// CalendarService produces content calendars.
type CalendarService interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}
