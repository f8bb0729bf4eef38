package entities

import "time"

// LeadStage is the funnel stage of a lead. It drives the Kanban column a
// lead is shown in.
type LeadStage string

const (
	LeadStageNovo           LeadStage = "novo"
	LeadStageQualificado    LeadStage = "qualificado"
	LeadStageVisitaAgendada LeadStage = "visita_agendada"
	LeadStageNegociacao     LeadStage = "negociacao"
	LeadStageDocumentacao   LeadStage = "documentacao"
	LeadStageContrato       LeadStage = "contrato"
	LeadStageFechado        LeadStage = "fechado"
)

// LeadStages lists every stage in funnel order.
var LeadStages = []LeadStage{
	LeadStageNovo,
	LeadStageQualificado,
	LeadStageVisitaAgendada,
	LeadStageNegociacao,
	LeadStageDocumentacao,
	LeadStageContrato,
	LeadStageFechado,
}

func (s LeadStage) IsValid() bool {
	for _, v := range LeadStages {
		if s == v {
			return true
		}
	}
	return false
}

// Label returns the column title shown on the board.
func (s LeadStage) Label() string {
	switch s {
	case LeadStageNovo:
		return "Novo"
	case LeadStageQualificado:
		return "Qualificado"
	case LeadStageVisitaAgendada:
		return "Visita Agendada"
	case LeadStageNegociacao:
		return "Negociação"
	case LeadStageDocumentacao:
		return "Documentação"
	case LeadStageContrato:
		return "Contrato"
	case LeadStageFechado:
		return "Fechado"
	default:
		return string(s)
	}
}

// Lead is the canonical lead record as stored in the remote "leads" table.
//
// ID and the audit timestamps are filled in by the remote store. UserID is
// the owner, resolved from the authenticated session when the lead is
// created.
type Lead struct {
	ID             string              `json:"id"`
	UserID         string              `json:"user_id"`
	Name           string              `json:"name"`
	Email          Optional[string]    `json:"email"`
	Phone          Optional[string]    `json:"phone"`
	Source         string              `json:"source"`
	Stage          LeadStage           `json:"stage"`
	Interest       Optional[string]    `json:"interest"`
	EstimatedValue Optional[float64]   `json:"estimated_value"`
	Notes          Optional[string]    `json:"notes"`
	PropertyID     Optional[string]    `json:"property_id"`
	CreatedAt      Optional[time.Time] `json:"created_at"`
	UpdatedAt      Optional[time.Time] `json:"updated_at"`
}

// LeadInput is what a caller supplies to create a lead: everything except
// the identifying, ownership and audit fields.
type LeadInput struct {
	Name           string            `json:"name"`
	Email          Optional[string]  `json:"email"`
	Phone          Optional[string]  `json:"phone"`
	Source         string            `json:"source"`
	Stage          LeadStage         `json:"stage"`
	Interest       Optional[string]  `json:"interest"`
	EstimatedValue Optional[float64] `json:"estimated_value"`
	Notes          Optional[string]  `json:"notes"`
	PropertyID     Optional[string]  `json:"property_id"`
}

// ToLead builds the record submitted to the remote store.
func (in LeadInput) ToLead(userID string) Lead {
	return Lead{
		UserID:         userID,
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Source:         in.Source,
		Stage:          in.Stage,
		Interest:       in.Interest,
		EstimatedValue: in.EstimatedValue,
		Notes:          in.Notes,
		PropertyID:     in.PropertyID,
	}
}

// LeadPatch is a partial update.
//
// A nil field is left untouched. A non-nil optional field either sets a
// value (Set) or clears it to absent (Clear). ID names the target record and
// is never written.
type LeadPatch struct {
	ID             string
	Name           *string
	Email          *Optional[string]
	Phone          *Optional[string]
	Source         *string
	Stage          *LeadStage
	Interest       *Optional[string]
	EstimatedValue *Optional[float64]
	Notes          *Optional[string]
	PropertyID     *Optional[string]
	UpdatedAt      *time.Time
}

// Set is shorthand for a patch field that assigns v.
func Set[T any](v T) *Optional[T] {
	o := Some(v)
	return &o
}

// Clear is shorthand for a patch field that removes the value.
func Clear[T any]() *Optional[T] {
	o := None[T]()
	return &o
}

func (p LeadPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Source == nil &&
		p.Stage == nil && p.Interest == nil && p.EstimatedValue == nil &&
		p.Notes == nil && p.PropertyID == nil && p.UpdatedAt == nil
}

// Apply returns l with every field named by the patch replaced.
func (p LeadPatch) Apply(l Lead) Lead {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Email != nil {
		l.Email = *p.Email
	}
	if p.Phone != nil {
		l.Phone = *p.Phone
	}
	if p.Source != nil {
		l.Source = *p.Source
	}
	if p.Stage != nil {
		l.Stage = *p.Stage
	}
	if p.Interest != nil {
		l.Interest = *p.Interest
	}
	if p.EstimatedValue != nil {
		l.EstimatedValue = *p.EstimatedValue
	}
	if p.Notes != nil {
		l.Notes = *p.Notes
	}
	if p.PropertyID != nil {
		l.PropertyID = *p.PropertyID
	}
	if p.UpdatedAt != nil {
		l.UpdatedAt = Some(*p.UpdatedAt)
	}
	return l
}

// LeadFilter narrows a remote select. An empty UserID selects every lead
// visible to the caller.
type LeadFilter struct {
	UserID string
}
