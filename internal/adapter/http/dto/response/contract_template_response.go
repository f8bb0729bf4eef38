package response

import (
	"crm_imobiliario/internal/domain/entities"
	"time"
)

type ContractTemplateResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

type DownloadURLResponse struct {
	URL string `json:"url"`
}

// FromContractTemplate leaves out the storage key and owner.
func FromContractTemplate(t entities.ContractTemplate) ContractTemplateResponse {
	return ContractTemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		FileName:    t.FileName,
		ContentType: t.ContentType,
		Size:        t.Size,
		CreatedAt:   t.CreatedAt,
	}
}

func FromContractTemplates(items []entities.ContractTemplate) []ContractTemplateResponse {
	out := make([]ContractTemplateResponse, 0, len(items))
	for _, t := range items {
		out = append(out, FromContractTemplate(t))
	}
	return out
}
