package usecase

import (
	"bytes"
	"context"
	"crm_imobiliario/internal/domain/entities"
	"crm_imobiliario/internal/infrastructure/metrics"
	"crm_imobiliario/internal/usecase/interfaces"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=contract_template_usecase.go -destination=../adapter/http/handlers/mocks/contract_template_usecase_mock.go -package=mocks

var (
	ErrContractTemplateNotFound = errors.New("contract template not found")
	ErrInvalidContractTemplate  = errors.New("invalid contract template")
	ErrUnsupportedDocumentType  = errors.New("unsupported document type")
	ErrDocumentTooLarge         = errors.New("document too large")
)

const (
	DefaultMaxContractBytes int64 = 20 << 20
	downloadURLTTL                = 15 * time.Minute
	sniffLen                      = 3072
)

// acceptedDocuments maps an extension to the content types its bytes may
// sniff as. The first entry is the type recorded for the template.
var acceptedDocuments = map[string][]string{
	".pdf":  {"application/pdf"},
	".doc":  {"application/msword", "application/x-ole-storage"},
	".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/zip"},
	".odt":  {"application/vnd.oasis.opendocument.text", "application/zip"},
	".html": {"text/html", "text/plain"},
	".txt":  {"text/plain"},
}

type UploadContractTemplateInput struct {
	UserID      string
	Name        string
	Description string
	FileName    string
	Size        int64
	Body        io.Reader
}

// IContractTemplateUseCase manages uploaded contract templates.

type IContractTemplateUseCase interface {
	Upload(ctx context.Context, in UploadContractTemplateInput) (entities.ContractTemplate, error)
	List(ctx context.Context, userID string) ([]entities.ContractTemplate, error)
	DownloadURL(ctx context.Context, userID, id string) (string, error)
	Delete(ctx context.Context, userID, id string) error
}

type ContractTemplateUseCase struct {
	repo     interfaces.IContractTemplateRepository
	storage  interfaces.IDocumentStorage
	maxBytes int64
	logger   *zap.Logger
}

var _ IContractTemplateUseCase = (*ContractTemplateUseCase)(nil)

func NewContractTemplateUseCase(repo interfaces.IContractTemplateRepository, storage interfaces.IDocumentStorage, maxBytes int64, logger *zap.Logger) *ContractTemplateUseCase {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxContractBytes
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContractTemplateUseCase{repo: repo, storage: storage, maxBytes: maxBytes, logger: logger}
}

func (u *ContractTemplateUseCase) Upload(ctx context.Context, in UploadContractTemplateInput) (entities.ContractTemplate, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		return entities.ContractTemplate{}, ErrNotAuthenticated
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Body == nil || in.Size <= 0 {
		return entities.ContractTemplate{}, ErrInvalidContractTemplate
	}
	if in.Size > u.maxBytes {
		return entities.ContractTemplate{}, ErrDocumentTooLarge
	}

	ext := strings.ToLower(filepath.Ext(in.FileName))
	accepted, ok := acceptedDocuments[ext]
	if !ok {
		return entities.ContractTemplate{}, ErrUnsupportedDocumentType
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(in.Body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return entities.ContractTemplate{}, fmt.Errorf("read document: %w", err)
	}
	head = head[:n]

	detected := mimetype.Detect(head)
	if !matchesAny(detected, accepted) {
		u.logger.Warn("[contract][usecase] rejected document",
			zap.String("file_name", in.FileName),
			zap.String("detected", detected.String()),
		)
		return entities.ContractTemplate{}, ErrUnsupportedDocumentType
	}

	t := entities.ContractTemplate{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		FileName:    filepath.Base(in.FileName),
		FileKey:     fmt.Sprintf("contracts/%s/%s%s", userID, uuid.NewString(), ext),
		ContentType: accepted[0],
		Size:        in.Size,
		CreatedAt:   time.Now().UTC(),
	}

	body := io.MultiReader(bytes.NewReader(head), in.Body)
	if err := u.storage.Put(ctx, t.FileKey, body, t.Size, t.ContentType); err != nil {
		return entities.ContractTemplate{}, err
	}

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		if delErr := u.storage.Delete(ctx, t.FileKey); delErr != nil {
			u.logger.Error("[contract][usecase] orphaned document", zap.String("file_key", t.FileKey), zap.Error(delErr))
		}
		return entities.ContractTemplate{}, err
	}

	metrics.ContractTemplatesUploaded.Inc()
	metrics.ContractTemplateUploadBytes.Observe(float64(created.Size))
	u.logger.Info("[contract][usecase] template uploaded",
		zap.String("template_id", created.ID),
		zap.String("user_id", userID),
		zap.Int64("size", created.Size),
	)
	return created, nil
}

// List returns the user's templates, newest first.
func (u *ContractTemplateUseCase) List(ctx context.Context, userID string) ([]entities.ContractTemplate, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	items, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (u *ContractTemplateUseCase) DownloadURL(ctx context.Context, userID, id string) (string, error) {
	t, err := u.owned(ctx, userID, id)
	if err != nil {
		return "", err
	}
	return u.storage.URL(ctx, t.FileKey, downloadURLTTL)
}

// Delete removes the record first; a document left behind by a failed object
// delete is logged, not reported.
func (u *ContractTemplateUseCase) Delete(ctx context.Context, userID, id string) error {
	t, err := u.owned(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, t.ID); err != nil {
		return err
	}
	if err := u.storage.Delete(ctx, t.FileKey); err != nil {
		u.logger.Error("[contract][usecase] orphaned document", zap.String("file_key", t.FileKey), zap.Error(err))
	}
	u.logger.Info("[contract][usecase] template deleted", zap.String("template_id", t.ID))
	return nil
}

func (u *ContractTemplateUseCase) owned(ctx context.Context, userID, id string) (entities.ContractTemplate, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.ContractTemplate{}, ErrNotAuthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ContractTemplate{}, ErrInvalidContractTemplate
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ContractTemplate{}, err
	}
	// Someone else's template is reported exactly like a missing one.
	if t.ID == "" || t.UserID != userID {
		return entities.ContractTemplate{}, ErrContractTemplateNotFound
	}
	return t, nil
}

func matchesAny(m *mimetype.MIME, accepted []string) bool {
	for _, a := range accepted {
		if m.Is(a) {
			return true
		}
	}
	return false
}
