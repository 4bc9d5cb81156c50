package service

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/mhennig/kalender/internal/generation"
	"github.com/mhennig/kalender/internal/llm"
	"github.com/mhennig/kalender/internal/scheduler"
)

type calendarService struct {
	settings SettingsService
	gen      generation.TextGenerator

	newRand func() generation.Rand
}

// NewCalendarService creates a CalendarService. The text generator may
// be nil; generation then draws content from theme examples.
func NewCalendarService(settings SettingsService, gen generation.TextGenerator) CalendarService {
	return newCalendarService(settings, gen, func() generation.Rand {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	})
}

func newCalendarService(settings SettingsService, gen generation.TextGenerator, newRand func() generation.Rand) *calendarService {
	return &calendarService{settings: settings, gen: gen, newRand: newRand}
}

func (s *calendarService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	settings, err := s.settings.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := validateFrequencies(req.Frequencies, settings.Platforms); err != nil {
		return nil, err
	}

	slots := scheduler.Allocate(req.StartDate, req.NumDays, req.Frequencies)

	gen := s.gen
	if req.Offline {
		gen = nil
	}
	builder := generation.NewBuilder(settings, s.newRand(), gen)
	rows := builder.BuildRows(ctx, slots, req.Progress)

	result := &GenerateResult{Rows: rows, Settings: settings}
	if len(rows) == 0 {
		result.Warnings = append(result.Warnings,
			"Keine Beiträge im gewählten Zeitraum. Bitte Zeitraum und Posting-Frequenzen prüfen.")
	}
	return result, nil
}

func (s *calendarService) validate(req GenerateRequest) error {
	if strings.TrimSpace(req.Customer) == "" {
		return fmt.Errorf("%w: customer name must not be empty", ErrInvalidRequest)
	}
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: start date must be set", ErrInvalidRequest)
	}
	if req.NumDays < 1 {
		return fmt.Errorf("%w: number of days must be positive, got %d", ErrInvalidRequest, req.NumDays)
	}
	for platform, freq := range req.Frequencies {
		if freq < 0 {
			return fmt.Errorf("%w: negative frequency %d for platform %q", ErrInvalidRequest, freq, platform)
		}
	}
	if req.RequireAI && (s.gen == nil || req.Offline) {
		return fmt.Errorf("text generation requested: %w", llm.ErrMissingAPIKey)
	}
	return nil
}

func validateFrequencies(frequencies map[string]int, platforms []string) error {
	known := make(map[string]bool, len(platforms))
	for _, p := range platforms {
		known[p] = true
	}

	var unknown []string
	for platform := range frequencies {
		if !known[platform] {
			unknown = append(unknown, platform)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: unknown platforms: %s", ErrInvalidRequest, strings.Join(unknown, ", "))
	}
	return nil
}
