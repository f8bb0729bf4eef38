package usecase

import (
	"context"
	"crm_imobiliario/internal/domain/entities"
	"crm_imobiliario/internal/infrastructure/metrics"
	"crm_imobiliario/internal/usecase/interfaces"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=lead_store_usecase.go -destination=../adapter/http/handlers/mocks/lead_store_usecase_mock.go -package=mocks

var (
	ErrNotAuthenticated = errors.New("usuário não autenticado")
	ErrLeadNotFound     = errors.New("lead não encontrado")
	ErrInvalidLeadID    = errors.New("id do lead inválido")
	ErrInvalidLeadInput = errors.New("dados do lead inválidos")
)

// Fallback messages recorded when a failure carries no text of its own.
const (
	msgFetchFailed  = "Erro ao carregar leads"
	msgCreateFailed = "Erro ao criar lead"
	msgUpdateFailed = "Erro ao atualizar lead"
	msgDeleteFailed = "Erro ao excluir lead"
)

// RemoteOperationError wraps any failure reported by the remote lead table
// (network, constraint violation, permission denial).
type RemoteOperationError struct {
	Op  string
	Err error
}

func (e *RemoteOperationError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *RemoteOperationError) Unwrap() error {
	return e.Err
}

// LeadStoreState is a point-in-time copy of what the store exposes to the UI.
type LeadStoreState struct {
	Leads   []entities.Lead `json:"leads"`
	Loading bool            `json:"loading"`
	Error   string          `json:"error"`
}

// ILeadStore is the in-memory mirror of the remote leads table for one
// session.
//
// Every operation catches remote failures, records a readable message as the
// current error and hands the failure back as an error value; the local
// collection only changes when the remote call succeeded.

type ILeadStore interface {
	Open(ctx context.Context)
	FetchAll(ctx context.Context) error
	Create(ctx context.Context, in entities.LeadInput) (entities.Lead, error)
	Update(ctx context.Context, id string, patch entities.LeadPatch) (entities.Lead, error)
	Delete(ctx context.Context, id string) error
	State() LeadStoreState
	Err() error
}

type LeadStore struct {
	repo     interfaces.ILeadRepository
	identity interfaces.IIdentityProvider
	logger   *zap.Logger

	openOnce sync.Once

	mu       sync.RWMutex
	leads    []entities.Lead
	inFlight int
	err      error
	errMsg   string
}

var _ ILeadStore = (*LeadStore)(nil)

func NewLeadStore(repo interfaces.ILeadRepository, identity interfaces.IIdentityProvider, logger *zap.Logger) *LeadStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeadStore{
		repo:     repo,
		identity: identity,
		logger:   logger,
		leads:    []entities.Lead{},
	}
}

// Open warms the collection with a single FetchAll. Later calls are no-ops;
// concurrent callers wait for the first fetch to finish. The fetch keeps the
// caller's values but not its cancellation, so an aborted first request
// cannot leave the store permanently empty.
func (s *LeadStore) Open(ctx context.Context) {
	s.openOnce.Do(func() {
		_ = s.FetchAll(context.WithoutCancel(ctx))
	})
}

func (s *LeadStore) FetchAll(ctx context.Context) error {
	const op = "fetch_all"
	start := time.Now()

	s.beginLoading()
	defer s.endLoading()

	filter := s.ownerFilter(ctx)
	s.logger.Debug("[lead][store] fetch start", zap.String("user_id", filter.UserID))

	leads, err := s.repo.List(ctx, filter)
	if err != nil {
		return s.fail(op, msgFetchFailed, &RemoteOperationError{Op: op, Err: err}, start)
	}

	leads = uniqueByID(leads)

	s.mu.Lock()
	s.leads = leads
	s.err = nil
	s.errMsg = ""
	s.mu.Unlock()

	s.succeed(op, start)
	s.logger.Debug("[lead][store] fetch success", zap.Int("count", len(leads)))
	return nil
}

func (s *LeadStore) Create(ctx context.Context, in entities.LeadInput) (entities.Lead, error) {
	const op = "create"
	start := time.Now()

	ident, ok := s.currentUser(ctx)
	if !ok {
		return entities.Lead{}, s.fail(op, msgCreateFailed, ErrNotAuthenticated, start)
	}
	if err := validateLeadInput(in); err != nil {
		return entities.Lead{}, s.fail(op, msgCreateFailed, err, start)
	}

	created, err := s.repo.Create(ctx, in.ToLead(ident.UserID))
	if err != nil {
		return entities.Lead{}, s.fail(op, msgCreateFailed, &RemoteOperationError{Op: op, Err: err}, start)
	}

	s.mu.Lock()
	s.leads = prependLead(s.leads, created)
	s.mu.Unlock()

	s.succeed(op, start)
	s.logger.Info("[lead][store] create success",
		zap.String("lead_id", created.ID),
		zap.String("user_id", ident.UserID),
		zap.String("stage", string(created.Stage)),
	)
	return created, nil
}

func (s *LeadStore) Update(ctx context.Context, id string, patch entities.LeadPatch) (entities.Lead, error) {
	const op = "update"
	start := time.Now()

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, s.fail(op, msgUpdateFailed, ErrInvalidLeadID, start)
	}
	if err := validateLeadPatch(patch); err != nil {
		return entities.Lead{}, s.fail(op, msgUpdateFailed, err, start)
	}
	patch.ID = id

	updated, err := s.repo.Update(ctx, s.ownerFilter(ctx), id, patch)
	if err != nil {
		return entities.Lead{}, s.fail(op, msgUpdateFailed, &RemoteOperationError{Op: op, Err: err}, start)
	}
	if updated.ID == "" {
		return entities.Lead{}, s.fail(op, msgUpdateFailed, ErrLeadNotFound, start)
	}

	s.mu.Lock()
	for i := range s.leads {
		if s.leads[i].ID == updated.ID {
			s.leads[i] = updated
			break
		}
	}
	s.mu.Unlock()

	s.succeed(op, start)
	s.logger.Info("[lead][store] update success", zap.String("lead_id", id))
	return updated, nil
}

func (s *LeadStore) Delete(ctx context.Context, id string) error {
	const op = "delete"
	start := time.Now()

	id = strings.TrimSpace(id)
	if id == "" {
		return s.fail(op, msgDeleteFailed, ErrInvalidLeadID, start)
	}

	if err := s.repo.Delete(ctx, s.ownerFilter(ctx), id); err != nil {
		return s.fail(op, msgDeleteFailed, &RemoteOperationError{Op: op, Err: err}, start)
	}

	s.mu.Lock()
	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads = append(s.leads[:i:i], s.leads[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.succeed(op, start)
	s.logger.Info("[lead][store] delete success", zap.String("lead_id", id))
	return nil
}

// State returns a copy; callers may keep or mutate it freely.
func (s *LeadStore) State() LeadStoreState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	leads := make([]entities.Lead, len(s.leads))
	copy(leads, s.leads)
	return LeadStoreState{
		Leads:   leads,
		Loading: s.inFlight > 0,
		Error:   s.errMsg,
	}
}

// Err returns the failure behind the current error message, if any.
func (s *LeadStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// ownerFilter scopes repository reads and mutations to the signed-in user.
// Without one the filter is empty and nothing is scoped.
func (s *LeadStore) ownerFilter(ctx context.Context) entities.LeadFilter {
	if ident, ok := s.currentUser(ctx); ok {
		return entities.LeadFilter{UserID: ident.UserID}
	}
	return entities.LeadFilter{}
}

func (s *LeadStore) currentUser(ctx context.Context) (interfaces.Identity, bool) {
	if s.identity == nil {
		return interfaces.Identity{}, false
	}
	ident, ok := s.identity.CurrentUser(ctx)
	if !ok || strings.TrimSpace(ident.UserID) == "" {
		return interfaces.Identity{}, false
	}
	return ident, true
}

func (s *LeadStore) beginLoading() {
	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()
}

func (s *LeadStore) endLoading() {
	s.mu.Lock()
	s.inFlight--
	s.mu.Unlock()
}

func (s *LeadStore) fail(op, fallback string, err error, start time.Time) error {
	msg := errorMessage(err, fallback)

	s.mu.Lock()
	s.err = err
	s.errMsg = msg
	s.mu.Unlock()

	metrics.LeadOperationsTotal.WithLabelValues(op, metrics.StatusError).Inc()
	metrics.LeadOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	s.logger.Warn("[lead][store] operation failed", zap.String("op", op), zap.String("message", msg), zap.Error(err))
	return err
}

func (s *LeadStore) succeed(op string, start time.Time) {
	metrics.LeadOperationsTotal.WithLabelValues(op, metrics.StatusSuccess).Inc()
	metrics.LeadOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func errorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallback
}

func validateLeadInput(in entities.LeadInput) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Source) == "" {
		return ErrInvalidLeadInput
	}
	if !in.Stage.IsValid() {
		return ErrInvalidLeadInput
	}
	return nil
}

func validateLeadPatch(p entities.LeadPatch) error {
	if p.IsEmpty() {
		return ErrInvalidLeadInput
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return ErrInvalidLeadInput
	}
	if p.Source != nil && strings.TrimSpace(*p.Source) == "" {
		return ErrInvalidLeadInput
	}
	if p.Stage != nil && !p.Stage.IsValid() {
		return ErrInvalidLeadInput
	}
	return nil
}

// prependLead puts l first and drops any older copy with the same id.
func prependLead(leads []entities.Lead, l entities.Lead) []entities.Lead {
	out := make([]entities.Lead, 0, len(leads)+1)
	out = append(out, l)
	for _, existing := range leads {
		if existing.ID != l.ID {
			out = append(out, existing)
		}
	}
	return out
}

func uniqueByID(leads []entities.Lead) []entities.Lead {
	seen := make(map[string]struct{}, len(leads))
	out := make([]entities.Lead, 0, len(leads))
	for _, l := range leads {
		if _, dup := seen[l.ID]; dup {
			continue
		}
		seen[l.ID] = struct{}{}
		out = append(out, l)
	}
	return out
}
