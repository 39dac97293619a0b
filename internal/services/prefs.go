package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
	"github.com/PickleRicc/deep-work-sub001/internal/store"
)

// maxLeadMinutes bounds how far ahead a reminder may fire.
const maxLeadMinutes = 120

// PrefsService reads and writes notification preferences.
type PrefsService struct {
	store store.Store
}

func NewPrefsService(s store.Store) *PrefsService {
	return &PrefsService{store: s}
}

// Get returns the user's preferences, defaulted when never saved.
func (s *PrefsService) Get(ctx context.Context, userID string) (*model.NotificationPrefs, error) {
	return s.store.Prefs().Get(ctx, userID)
}

// Put validates and saves preferences.
func (s *PrefsService) Put(ctx context.Context, p *model.NotificationPrefs) (*model.NotificationPrefs, error) {
	if p.LeadMinutes <= 0 || p.LeadMinutes > maxLeadMinutes {
		return nil, errors.Wrapf(model.ErrValidation, "leadMinutes must be in 1..%d", maxLeadMinutes)
	}
	return s.store.Prefs().Put(ctx, p)
}
