package entities

import "time"

// InterestPlaceholder is shown when a lead has no recorded interest.
const InterestPlaceholder = "Não especificado"

// KanbanLead is the display projection of a Lead used by the board.
//
// No field is ever absent: the board must not branch on presence. Etapa is a
// plain string because columns treat it as an opaque label. It is always
// derived from a Lead and never persisted on its own.
type KanbanLead struct {
	ID          string  `json:"id"`
	Nome        string  `json:"nome"`
	Email       string  `json:"email"`
	Telefone    string  `json:"telefone"`
	Origem      string  `json:"origem"`
	Etapa       string  `json:"etapa"`
	Interesse   string  `json:"interesse"`
	Valor       float64 `json:"valor"`
	Observacoes string  `json:"observacoes"`
	DataContato string  `json:"dataContato"`
}

// KanbanColumn groups the display leads of one stage.
type KanbanColumn struct {
	Etapa  string       `json:"etapa"`
	Titulo string       `json:"titulo"`
	Leads  []KanbanLead `json:"leads"`
}

// ToKanbanLead projects a canonical lead into its display form.
func ToKanbanLead(l Lead) KanbanLead {
	dataContato := ""
	if createdAt, ok := l.CreatedAt.Get(); ok {
		dataContato = createdAt.Format(time.DateOnly)
	}

	return KanbanLead{
		ID:          l.ID,
		Nome:        l.Name,
		Email:       l.Email.OrElse(""),
		Telefone:    l.Phone.OrElse(""),
		Origem:      l.Source,
		Etapa:       string(l.Stage),
		Interesse:   l.Interest.OrElse(InterestPlaceholder),
		Valor:       l.EstimatedValue.OrElse(0),
		Observacoes: l.Notes.OrElse(""),
		DataContato: dataContato,
	}
}

// FromKanbanLead maps a display lead back to a partial canonical update.
//
// The mapping is lossy: "" becomes absent for email, phone, interest and
// notes, and a zero valor becomes an absent estimated value. UpdatedAt is
// stamped with the time of the call.
func FromKanbanLead(k KanbanLead) LeadPatch {
	name := k.Nome
	source := k.Origem
	stage := LeadStage(k.Etapa)
	now := time.Now().UTC()

	return LeadPatch{
		ID:             k.ID,
		Name:           &name,
		Email:          emptyAsAbsent(k.Email),
		Phone:          emptyAsAbsent(k.Telefone),
		Source:         &source,
		Stage:          &stage,
		Interest:       emptyAsAbsent(k.Interesse),
		EstimatedValue: zeroAsAbsent(k.Valor),
		Notes:          emptyAsAbsent(k.Observacoes),
		UpdatedAt:      &now,
	}
}

// GroupByStage builds the board: one column per known stage in funnel order,
// followed by one column per unknown stage in order of first appearance.
// Leads keep their collection order inside a column.
func GroupByStage(leads []Lead) []KanbanColumn {
	columns := make([]KanbanColumn, 0, len(LeadStages))
	index := make(map[string]int, len(LeadStages))
	for _, s := range LeadStages {
		index[string(s)] = len(columns)
		columns = append(columns, KanbanColumn{Etapa: string(s), Titulo: s.Label(), Leads: []KanbanLead{}})
	}

	for _, l := range leads {
		k := ToKanbanLead(l)
		i, ok := index[k.Etapa]
		if !ok {
			i = len(columns)
			index[k.Etapa] = i
			columns = append(columns, KanbanColumn{Etapa: k.Etapa, Titulo: l.Stage.Label(), Leads: []KanbanLead{}})
		}
		columns[i].Leads = append(columns[i].Leads, k)
	}
	return columns
}

func emptyAsAbsent(v string) *Optional[string] {
	if v == "" {
		return Clear[string]()
	}
	return Set(v)
}

func zeroAsAbsent(v float64) *Optional[float64] {
	if v == 0 {
		return Clear[float64]()
	}
	return Set(v)
}
