package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"crm_imobiliario/internal/domain/entities"
)

var (
	ErrInvalidPatchBody = errors.New("invalid lead patch body")
	ErrImmutableField   = errors.New("field cannot be changed")
	ErrUnknownField     = errors.New("unknown field")
)

// CreateLeadRequest is the body of POST /leads. A missing stage defaults to
// "novo".
type CreateLeadRequest struct {
	Name           string   `json:"name" binding:"required"`
	Email          *string  `json:"email"`
	Phone          *string  `json:"phone"`
	Source         string   `json:"source" binding:"required"`
	Stage          string   `json:"stage"`
	Interest       *string  `json:"interest"`
	EstimatedValue *float64 `json:"estimated_value"`
	Notes          *string  `json:"notes"`
	PropertyID     *string  `json:"property_id"`
}

func (r CreateLeadRequest) ToInput() entities.LeadInput {
	stage := entities.LeadStage(strings.TrimSpace(r.Stage))
	if stage == "" {
		stage = entities.LeadStageNovo
	}
	return entities.LeadInput{
		Name:           strings.TrimSpace(r.Name),
		Email:          entities.FromPtr(r.Email),
		Phone:          entities.FromPtr(r.Phone),
		Source:         strings.TrimSpace(r.Source),
		Stage:          stage,
		Interest:       entities.FromPtr(r.Interest),
		EstimatedValue: entities.FromPtr(r.EstimatedValue),
		Notes:          entities.FromPtr(r.Notes),
		PropertyID:     entities.FromPtr(r.PropertyID),
	}
}

// ParseLeadPatch decodes the body of PATCH /leads/:id.
//
// A key that is missing leaves the field untouched; an optional field sent
// as null is cleared. Required fields (name, source, stage) cannot be null.
func ParseLeadPatch(body []byte) (entities.LeadPatch, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return entities.LeadPatch{}, ErrInvalidPatchBody
	}

	var p entities.LeadPatch
	for key, value := range raw {
		var err error
		switch key {
		case "name":
			p.Name, err = requiredString(value)
		case "source":
			p.Source, err = requiredString(value)
		case "stage":
			var s *string
			if s, err = requiredString(value); err == nil {
				stage := entities.LeadStage(*s)
				p.Stage = &stage
			}
		case "email":
			p.Email, err = optionalField[string](value)
		case "phone":
			p.Phone, err = optionalField[string](value)
		case "interest":
			p.Interest, err = optionalField[string](value)
		case "notes":
			p.Notes, err = optionalField[string](value)
		case "property_id":
			p.PropertyID, err = optionalField[string](value)
		case "estimated_value":
			p.EstimatedValue, err = optionalField[float64](value)
		case "id", "user_id", "created_at", "updated_at":
			err = ErrImmutableField
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return entities.LeadPatch{}, fmt.Errorf("%s: %w", key, err)
		}
	}
	return p, nil
}

func requiredString(value json.RawMessage) (*string, error) {
	if isNull(value) {
		return nil, ErrInvalidPatchBody
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return nil, ErrInvalidPatchBody
	}
	s = strings.TrimSpace(s)
	return &s, nil
}

func optionalField[T any](value json.RawMessage) (*entities.Optional[T], error) {
	if isNull(value) {
		return entities.Clear[T](), nil
	}
	var v T
	if err := json.Unmarshal(value, &v); err != nil {
		return nil, ErrInvalidPatchBody
	}
	return entities.Set(v), nil
}

func isNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

// KanbanLeadRequest is the display-form body of PUT /leads/:id/kanban. The
// id comes from the path.
type KanbanLeadRequest struct {
	Nome        string  `json:"nome" binding:"required"`
	Email       string  `json:"email"`
	Telefone    string  `json:"telefone"`
	Origem      string  `json:"origem" binding:"required"`
	Etapa       string  `json:"etapa" binding:"required"`
	Interesse   string  `json:"interesse"`
	Valor       float64 `json:"valor"`
	Observacoes string  `json:"observacoes"`
	DataContato string  `json:"dataContato"`
}

func (r KanbanLeadRequest) ToKanbanLead(id string) entities.KanbanLead {
	return entities.KanbanLead{
		ID:          id,
		Nome:        r.Nome,
		Email:       r.Email,
		Telefone:    r.Telefone,
		Origem:      r.Origem,
		Etapa:       r.Etapa,
		Interesse:   r.Interesse,
		Valor:       r.Valor,
		Observacoes: r.Observacoes,
		DataContato: r.DataContato,
	}
}
