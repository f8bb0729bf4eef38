package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"crm_imobiliario/internal/domain/entities"
	mock_interfaces "crm_imobiliario/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLeadSessions_Store(t *testing.T) {
	t.Run("empty user", func(t *testing.T) {
		s := NewLeadSessions(nil, nil, nil)
		if _, err := s.Store(context.Background(), "  "); !errors.Is(err, ErrNotAuthenticated) {
			t.Fatalf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("one store per user, warmed once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		s := NewLeadSessions(repo, loggedIn(ctrl, "u1"), nil)

		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.Lead{{ID: "a"}}, nil).Times(1)

		first, err := s.Store(context.Background(), "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, _ := s.Store(context.Background(), "u1")
		if first != second {
			t.Fatalf("expected the same store for the same user")
		}
		if s.Count() != 1 {
			t.Fatalf("expected 1 session, got %d", s.Count())
		}
		if len(first.State().Leads) != 1 {
			t.Fatalf("expected warmed store")
		}
	})

	t.Run("users do not share stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		s := NewLeadSessions(repo, loggedIn(ctrl, "u1"), nil)

		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

		a, _ := s.Store(context.Background(), "u1")
		b, _ := s.Store(context.Background(), "u2")
		if a == b {
			t.Fatalf("expected distinct stores")
		}
		if s.Count() != 2 {
			t.Fatalf("expected 2 sessions, got %d", s.Count())
		}
	})

	t.Run("concurrent first access opens one store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		s := NewLeadSessions(repo, loggedIn(ctrl, "u1"), nil)

		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = s.Store(context.Background(), "u1")
			}()
		}
		wg.Wait()
		if s.Count() != 1 {
			t.Fatalf("expected 1 session, got %d", s.Count())
		}
	})
}

func TestLeadSessions_Release(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockILeadRepository(ctrl)
	s := NewLeadSessions(repo, loggedIn(ctrl, "u1"), nil)

	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	_, _ = s.Store(context.Background(), "u1")
	if !s.Release("u1") {
		t.Fatalf("expected release to report an existing session")
	}
	if s.Release("u1") {
		t.Fatalf("second release must report nothing to release")
	}
	if s.Count() != 0 {
		t.Fatalf("expected no sessions")
	}

	// A new session starts with a fresh fetch.
	_, _ = s.Store(context.Background(), "u1")
}
