package response

import (
	"crm_imobiliario/internal/domain/entities"
	"crm_imobiliario/internal/usecase"
	"time"
)

// LeadResponse uses pointers so absent optionals serialize as null.
type LeadResponse struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	Name           string     `json:"name"`
	Email          *string    `json:"email"`
	Phone          *string    `json:"phone"`
	Source         string     `json:"source"`
	Stage          string     `json:"stage"`
	StageLabel     string     `json:"stage_label"`
	Interest       *string    `json:"interest"`
	EstimatedValue *float64   `json:"estimated_value"`
	Notes          *string    `json:"notes"`
	PropertyID     *string    `json:"property_id"`
	CreatedAt      *time.Time `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

type LeadStoreStateResponse struct {
	Leads   []LeadResponse `json:"leads"`
	Loading bool           `json:"loading"`
	Error   string         `json:"error"`
}

type KanbanBoardResponse struct {
	Columns []entities.KanbanColumn `json:"columns"`
	Total   int                     `json:"total"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:             l.ID,
		UserID:         l.UserID,
		Name:           l.Name,
		Email:          l.Email.Ptr(),
		Phone:          l.Phone.Ptr(),
		Source:         l.Source,
		Stage:          string(l.Stage),
		StageLabel:     l.Stage.Label(),
		Interest:       l.Interest.Ptr(),
		EstimatedValue: l.EstimatedValue.Ptr(),
		Notes:          l.Notes.Ptr(),
		PropertyID:     l.PropertyID.Ptr(),
		CreatedAt:      l.CreatedAt.Ptr(),
		UpdatedAt:      l.UpdatedAt.Ptr(),
	}
}

func FromLeads(leads []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, FromLead(l))
	}
	return out
}

func FromLeadStoreState(s usecase.LeadStoreState) LeadStoreStateResponse {
	return LeadStoreStateResponse{
		Leads:   FromLeads(s.Leads),
		Loading: s.Loading,
		Error:   s.Error,
	}
}

func FromKanbanColumns(columns []entities.KanbanColumn) KanbanBoardResponse {
	total := 0
	for _, c := range columns {
		total += len(c.Leads)
	}
	return KanbanBoardResponse{Columns: columns, Total: total}
}
