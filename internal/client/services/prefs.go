// Package services contains application services for the jobseekr client.
// This file defines the preference service: language and theme choices
// persisted locally, with documented defaults when storage has no answer.
package services

import (
	"context"
	"fmt"

	"github.com/dkarpov/jobseekr/internal/client/models"
	"github.com/dkarpov/jobseekr/internal/client/repositories/prefs"
	"github.com/dkarpov/jobseekr/internal/logging"
)

// ThemeApplier performs the visible side effect of a theme change. The CLI
// supplies a terminal implementation; Apply must be idempotent. ThemeAuto
// means "remove the override and defer to the system default".
type ThemeApplier interface {
	Apply(theme models.Theme)
}

// PrefsService reads and writes user preferences through the persistence
// port. Reads never fail: absent, unparsable, or unreachable values degrade
// to the documented default (auto). Write failures are logged but not
// surfaced; preferences are best-effort state, not user-facing errors.
type PrefsService struct {
	repo    prefs.Repository
	applier ThemeApplier
	log     logging.Logger
}

func NewPrefsService(repo prefs.Repository, applier ThemeApplier, log logging.Logger) *PrefsService {
	return &PrefsService{repo: repo, applier: applier, log: log}
}

// Language returns the stored language preference or LanguageAuto.
func (s *PrefsService) Language(ctx context.Context) models.Language {
	v, err := s.repo.Get(ctx, prefs.KeyLanguage)
	if err != nil {
		s.log.Warn(ctx, "failed to read language preference", "error", err)
		return models.LanguageAuto
	}
	return models.ParseLanguage(string(v))
}

// SetLanguage validates and persists the language preference. An invalid
// code is a user-correctable error; a storage failure is logged and
// swallowed so the in-session choice still takes effect.
func (s *PrefsService) SetLanguage(ctx context.Context, lang models.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("unknown language %q", string(lang))
	}
	if err := s.repo.Set(ctx, prefs.KeyLanguage, []byte(lang)); err != nil {
		s.log.Error(ctx, "failed to persist language preference", "language", string(lang), "error", err)
	}
	return nil
}

// Theme returns the stored theme preference or ThemeAuto.
func (s *PrefsService) Theme(ctx context.Context) models.Theme {
	v, err := s.repo.Get(ctx, prefs.KeyTheme)
	if err != nil {
		s.log.Warn(ctx, "failed to read theme preference", "error", err)
		return models.ThemeAuto
	}
	return models.ParseTheme(string(v))
}

// SetTheme validates and persists the theme preference, then applies it.
func (s *PrefsService) SetTheme(ctx context.Context, theme models.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("unknown theme %q", string(theme))
	}
	if err := s.repo.Set(ctx, prefs.KeyTheme, []byte(theme)); err != nil {
		s.log.Error(ctx, "failed to persist theme preference", "theme", string(theme), "error", err)
	}
	s.ApplyTheme(theme)
	return nil
}

// Reset drops all stored preferences and reverts the visible theme to
// auto. Used when the account behind them is deleted.
func (s *PrefsService) Reset(ctx context.Context) {
	if err := s.repo.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear preferences", "error", err)
	}
	s.ApplyTheme(models.ThemeAuto)
}

// ApplyTheme performs the visual side effect for the given theme. It is
// idempotent and returns nothing; callers that need the stored value use
// Theme.
func (s *PrefsService) ApplyTheme(theme models.Theme) {
	if s.applier == nil {
		return
	}
	s.applier.Apply(theme)
}
