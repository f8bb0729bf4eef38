package entities

import (
	"testing"
	"time"
)

func TestToKanbanLead(t *testing.T) {
	t.Run("all optional fields absent", func(t *testing.T) {
		k := ToKanbanLead(Lead{ID: "a", Name: "Ana", Source: "site", Stage: LeadStageNovo})

		want := KanbanLead{
			ID:          "a",
			Nome:        "Ana",
			Email:       "",
			Telefone:    "",
			Origem:      "site",
			Etapa:       "novo",
			Interesse:   "Não especificado",
			Valor:       0,
			Observacoes: "",
			DataContato: "",
		}
		if k != want {
			t.Fatalf("got %+v, want %+v", k, want)
		}
	})

	t.Run("present fields are copied", func(t *testing.T) {
		created := time.Date(2024, 3, 15, 23, 30, 0, 0, time.FixedZone("BRT", -3*3600))
		k := ToKanbanLead(Lead{
			ID:             "a",
			Name:           "Ana",
			Email:          Some("ana@example.com"),
			Phone:          Some("11999990000"),
			Source:         "indicacao",
			Stage:          LeadStageContrato,
			Interest:       Some("apartamento 3 quartos"),
			EstimatedValue: Some(750000.0),
			Notes:          Some("aguardando documentos"),
			CreatedAt:      Some(created),
		})

		if k.Email != "ana@example.com" || k.Telefone != "11999990000" || k.Interesse != "apartamento 3 quartos" {
			t.Fatalf("unexpected contact fields: %+v", k)
		}
		if k.Valor != 750000 || k.Observacoes != "aguardando documentos" || k.Etapa != "contrato" {
			t.Fatalf("unexpected fields: %+v", k)
		}
		// The date is taken from the timestamp's own zone, not UTC.
		if k.DataContato != "2024-03-15" {
			t.Fatalf("expected 2024-03-15, got %q", k.DataContato)
		}
	})

	t.Run("present empty interest is not replaced", func(t *testing.T) {
		if k := ToKanbanLead(Lead{Interest: Some("")}); k.Interesse != "" {
			t.Fatalf("expected empty interest, got %q", k.Interesse)
		}
	})
}

func TestFromKanbanLead(t *testing.T) {
	t.Run("empty strings and zero value become cleared", func(t *testing.T) {
		before := time.Now().UTC()
		p := FromKanbanLead(KanbanLead{ID: "a", Nome: "Ana", Origem: "site", Etapa: "novo"})
		after := time.Now().UTC()

		for name, f := range map[string]*Optional[string]{
			"email":    p.Email,
			"phone":    p.Phone,
			"interest": p.Interest,
			"notes":    p.Notes,
		} {
			if f == nil || f.IsSet() {
				t.Fatalf("%s must be cleared, got %+v", name, f)
			}
		}
		if p.EstimatedValue == nil || p.EstimatedValue.IsSet() {
			t.Fatalf("zero valor must clear the estimated value")
		}
		if p.UpdatedAt == nil || p.UpdatedAt.Before(before) || p.UpdatedAt.After(after) {
			t.Fatalf("updated_at must be stamped at conversion time, got %v", p.UpdatedAt)
		}
		if p.PropertyID != nil {
			t.Fatalf("property id is not part of the display form")
		}
	})

	t.Run("values pass through", func(t *testing.T) {
		p := FromKanbanLead(KanbanLead{
			ID:          "a",
			Nome:        "Ana",
			Email:       "ana@example.com",
			Telefone:    "11999990000",
			Origem:      "site",
			Etapa:       "qualquer_coisa",
			Interesse:   "casa",
			Valor:       1.5,
			Observacoes: "ok",
		})

		if p.ID != "a" || *p.Name != "Ana" || *p.Source != "site" || *p.Stage != "qualquer_coisa" {
			t.Fatalf("identity fields not passed through: %+v", p)
		}
		if p.Email.OrElse("") != "ana@example.com" || p.Phone.OrElse("") != "11999990000" {
			t.Fatalf("contact fields not passed through")
		}
		if p.Interest.OrElse("") != "casa" || p.EstimatedValue.OrElse(0) != 1.5 || p.Notes.OrElse("") != "ok" {
			t.Fatalf("detail fields not passed through")
		}
	})
}

func TestKanbanRoundTrip(t *testing.T) {
	leads := []Lead{
		{ID: "a", Name: "Ana", Source: "site", Stage: LeadStageNovo},
		{ID: "b", Name: "Bruno", Source: "portal", Stage: LeadStageFechado, Email: Some("b@example.com"), EstimatedValue: Some(10.0)},
		{ID: "c", Name: "Carla", Source: "indicacao", Stage: "perdido"},
	}

	for _, l := range leads {
		p := FromKanbanLead(ToKanbanLead(l))
		if p.ID != l.ID || *p.Name != l.Name || *p.Source != l.Source || *p.Stage != l.Stage {
			t.Fatalf("round trip lost identity fields for %s: %+v", l.ID, p)
		}
	}

	// The placeholder comes back as a literal interest, not as absent.
	p := FromKanbanLead(ToKanbanLead(leads[0]))
	if v, ok := p.Interest.Get(); !ok || v != InterestPlaceholder {
		t.Fatalf("expected placeholder interest, got %q %v", v, ok)
	}
}

func TestGroupByStage(t *testing.T) {
	leads := []Lead{
		{ID: "1", Stage: LeadStageNegociacao},
		{ID: "2", Stage: LeadStageNovo},
		{ID: "3", Stage: "perdido"},
		{ID: "4", Stage: LeadStageNegociacao},
		{ID: "5", Stage: "arquivado"},
		{ID: "6", Stage: "perdido"},
	}
	cols := GroupByStage(leads)

	if len(cols) != len(LeadStages)+2 {
		t.Fatalf("expected %d columns, got %d", len(LeadStages)+2, len(cols))
	}
	for i, s := range LeadStages {
		if cols[i].Etapa != string(s) || cols[i].Titulo != s.Label() {
			t.Fatalf("column %d: got %s/%s", i, cols[i].Etapa, cols[i].Titulo)
		}
		if cols[i].Leads == nil {
			t.Fatalf("column %s must hold an empty list, not nil", s)
		}
	}

	neg := cols[3]
	if len(neg.Leads) != 2 || neg.Leads[0].ID != "1" || neg.Leads[1].ID != "4" {
		t.Fatalf("negociacao column out of order: %+v", neg.Leads)
	}
	if cols[7].Etapa != "perdido" || len(cols[7].Leads) != 2 || cols[7].Leads[1].ID != "6" {
		t.Fatalf("unexpected trailing column: %+v", cols[7])
	}
	if cols[8].Etapa != "arquivado" || cols[8].Titulo != "arquivado" {
		t.Fatalf("unexpected trailing column: %+v", cols[8])
	}
}
