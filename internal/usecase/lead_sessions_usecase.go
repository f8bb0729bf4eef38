package usecase

import (
	"context"
	"crm_imobiliario/internal/infrastructure/metrics"
	"crm_imobiliario/internal/usecase/interfaces"
	"strings"
	"sync"

	"go.uber.org/zap"
)

//go:generate mockgen -source=lead_sessions_usecase.go -destination=../adapter/http/handlers/mocks/lead_sessions_usecase_mock.go -package=mocks

// ILeadSessions hands out one lead store per authenticated user.
//
// A store is created and opened (one initial fetch) the first time its user
// is seen, and lives until Release.

type ILeadSessions interface {
	Store(ctx context.Context, userID string) (ILeadStore, error)
	Release(userID string) bool
	Count() int
}

type LeadSessions struct {
	repo     interfaces.ILeadRepository
	identity interfaces.IIdentityProvider
	logger   *zap.Logger

	mu     sync.Mutex
	stores map[string]*LeadStore
}

var _ ILeadSessions = (*LeadSessions)(nil)

func NewLeadSessions(repo interfaces.ILeadRepository, identity interfaces.IIdentityProvider, logger *zap.Logger) *LeadSessions {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeadSessions{
		repo:     repo,
		identity: identity,
		logger:   logger,
		stores:   make(map[string]*LeadStore),
	}
}

// Store returns the user's store, opening it on first use.
func (s *LeadSessions) Store(ctx context.Context, userID string) (ILeadStore, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	s.mu.Lock()
	store, ok := s.stores[userID]
	if !ok {
		store = NewLeadStore(s.repo, s.identity, s.logger.With(zap.String("session_user_id", userID)))
		s.stores[userID] = store
		metrics.LeadSessionsOpen.Set(float64(len(s.stores)))
		s.logger.Info("[lead][sessions] session opened", zap.String("user_id", userID))
	}
	s.mu.Unlock()

	// Outside the lock: the first fetch may be slow and must not block other users.
	store.Open(ctx)
	return store, nil
}

func (s *LeadSessions) Release(userID string) bool {
	userID = strings.TrimSpace(userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.stores[userID]; !ok {
		return false
	}
	delete(s.stores, userID)
	metrics.LeadSessionsOpen.Set(float64(len(s.stores)))
	s.logger.Info("[lead][sessions] session released", zap.String("user_id", userID))
	return true
}

func (s *LeadSessions) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stores)
}
