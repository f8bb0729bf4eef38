package interfaces

import (
	"context"
	"crm_imobiliario/internal/domain/entities"
	"io"
	"time"
)

//go:generate mockgen -source=contract_template_repository_interface.go -destination=mocks/contract_template_repository_interface_mock.go -package=mock_interfaces

// IContractTemplateRepository abstracts persistence of contract template
// records.

type IContractTemplateRepository interface {
	Create(ctx context.Context, t entities.ContractTemplate) (entities.ContractTemplate, error)
	// GetByID returns a zero template and a nil error when id does not exist.
	GetByID(ctx context.Context, id string) (entities.ContractTemplate, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.ContractTemplate, error)
	Delete(ctx context.Context, id string) error
}

// IDocumentStorage abstracts the object store holding uploaded documents.
type IDocumentStorage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(ctx context.Context, key string, expires time.Duration) (string, error)
}
