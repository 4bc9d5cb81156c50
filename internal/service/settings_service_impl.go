package service

import (
	"context"
	"fmt"

	"github.com/mhennig/kalender/internal/db"
	"github.com/mhennig/kalender/internal/domain"
	"github.com/mhennig/kalender/internal/repository"
)

type settingsService struct {
	options repository.OptionRepo
	themes  repository.ThemeRepo
	uow     db.UnitOfWork
}

// NewSettingsService creates a SettingsService. Reads go through the
// given repositories; writes that span multiple statements run inside a
// transaction from the unit of work.
func NewSettingsService(options repository.OptionRepo, themes repository.ThemeRepo, uow db.UnitOfWork) SettingsService {
	return &settingsService{options: options, themes: themes, uow: uow}
}

func checkKind(kind domain.OptionKind) error {
	if !domain.ValidOptionKinds[kind] {
		return fmt.Errorf("unknown option kind %q", kind)
	}
	return nil
}

func (s *settingsService) Options(ctx context.Context, kind domain.OptionKind) ([]string, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	return s.options.List(ctx, kind)
}

func (s *settingsService) AddOption(ctx context.Context, kind domain.OptionKind, value string) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txOptions := repository.NewSQLiteOptionRepo(tx)
		return txOptions.Append(ctx, kind, value)
	})
}

func (s *settingsService) RemoveOption(ctx context.Context, kind domain.OptionKind, value string) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	return s.options.Remove(ctx, kind, value)
}

func (s *settingsService) RemoveOptionAt(ctx context.Context, kind domain.OptionKind, index int) (string, error) {
	if err := checkKind(kind); err != nil {
		return "", err
	}
	var removed string
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txOptions := repository.NewSQLiteOptionRepo(tx)
		value, err := txOptions.RemoveAt(ctx, kind, index)
		if err != nil {
			return err
		}
		removed = value
		return nil
	})
	return removed, err
}

func (s *settingsService) Themes(ctx context.Context) ([]*domain.Theme, error) {
	return s.themes.List(ctx)
}

func (s *settingsService) Theme(ctx context.Context, name string) (*domain.Theme, error) {
	return s.themes.GetByName(ctx, name)
}

func (s *settingsService) AddTheme(ctx context.Context, t *domain.Theme) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txThemes := repository.NewSQLiteThemeRepo(tx)
		return txThemes.Create(ctx, t)
	})
}

func (s *settingsService) UpdateTheme(ctx context.Context, t *domain.Theme) error {
	if err := t.Validate(); err != nil {
		return err
	}
	return s.themes.Update(ctx, t)
}

func (s *settingsService) RemoveTheme(ctx context.Context, name string) error {
	return s.themes.Delete(ctx, name)
}

func (s *settingsService) Snapshot(ctx context.Context) (*domain.Settings, error) {
	settings := &domain.Settings{}

	lists := []struct {
		kind domain.OptionKind
		dst  *[]string
	}{
		{domain.KindPlatform, &settings.Platforms},
		{domain.KindFormat, &settings.Formats},
		{domain.KindStatus, &settings.Statuses},
		{domain.KindTopic, &settings.Topics},
	}
	for _, l := range lists {
		values, err := s.options.List(ctx, l.kind)
		if err != nil {
			return nil, fmt.Errorf("loading %s list: %w", l.kind, err)
		}
		*l.dst = values
	}

	themes, err := s.themes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading themes: %w", err)
	}
	settings.Themes = themes

	return settings, nil
}
