package service

import (
	"alcyxob/wellness-app/internal/domain"
	"alcyxob/wellness-app/internal/store"
	"errors"
	"fmt"
)

var ErrInvalidTab = errors.New("invalid tab")

// NavigationService switches between top-level screens.
type NavigationService interface {
	Current() domain.Tab
	Switch(tab string) error
}

type navigationService struct {
	store *store.Store
}

// NewNavigationService creates a new instance of navigationService.
func NewNavigationService(s *store.Store) NavigationService {
	return &navigationService{store: s}
}

func (s *navigationService) Current() domain.Tab {
	return domain.Tab(s.store.ActiveTab())
}

// Switch activates tab if it names a known screen.
func (s *navigationService) Switch(tab string) error {
	t := domain.Tab(tab)
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTab, tab)
	}
	s.store.SetActiveTab(tab)
	return nil
}
