package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"crm_imobiliario/internal/domain/entities"
	"crm_imobiliario/internal/usecase/interfaces"

	"github.com/jmoiron/sqlx"
)

const leadColumns = `id, user_id, name, email, phone, source, stage, interest,
	estimated_value, notes, property_id, created_at, updated_at`

type leadRow struct {
	ID             string          `db:"id"`
	UserID         string          `db:"user_id"`
	Name           string          `db:"name"`
	Email          sql.NullString  `db:"email"`
	Phone          sql.NullString  `db:"phone"`
	Source         string          `db:"source"`
	Stage          string          `db:"stage"`
	Interest       sql.NullString  `db:"interest"`
	EstimatedValue sql.NullFloat64 `db:"estimated_value"`
	Notes          sql.NullString  `db:"notes"`
	PropertyID     sql.NullString  `db:"property_id"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// LeadPostgresRepository persists leads in a hosted Postgres "leads" table
// (see the goose migrations). id and the timestamps are assigned by the
// database.

type LeadPostgresRepository struct {
	db *sqlx.DB
}

var _ interfaces.ILeadRepository = (*LeadPostgresRepository)(nil)

func NewLeadPostgresRepository(db *sqlx.DB) *LeadPostgresRepository {
	return &LeadPostgresRepository{db: db}
}

func (r *LeadPostgresRepository) List(ctx context.Context, filter entities.LeadFilter) ([]entities.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads`
	var args []any
	if filter.UserID != "" {
		query += ` WHERE user_id = $1`
		args = append(args, filter.UserID)
	}
	query += ` ORDER BY created_at DESC, id ASC`

	var rows []leadRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	leads := make([]entities.Lead, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, row.toEntity())
	}
	return leads, nil
}

func (r *LeadPostgresRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	query := `INSERT INTO leads (user_id, name, email, phone, source, stage, interest,
	estimated_value, notes, property_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + leadColumns

	var row leadRow
	err := r.db.QueryRowxContext(ctx, query,
		l.UserID,
		l.Name,
		nullString(l.Email),
		nullString(l.Phone),
		l.Source,
		string(l.Stage),
		nullString(l.Interest),
		nullFloat(l.EstimatedValue),
		nullString(l.Notes),
		nullString(l.PropertyID),
	).StructScan(&row)
	if err != nil {
		return entities.Lead{}, err
	}
	return row.toEntity(), nil
}

func (r *LeadPostgresRepository) Update(ctx context.Context, filter entities.LeadFilter, id string, patch entities.LeadPatch) (entities.Lead, error) {
	sets, args := buildLeadSetClause(patch)
	if len(sets) == 0 {
		return entities.Lead{}, errors.New("empty lead update")
	}
	where, args := leadOwnerWhere(filter, id, args)

	query := fmt.Sprintf(`UPDATE leads SET %s WHERE %s RETURNING %s`,
		strings.Join(sets, ", "), where, leadColumns)

	var row leadRow
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	return row.toEntity(), nil
}

// Delete affecting no rows is not an error.
func (r *LeadPostgresRepository) Delete(ctx context.Context, filter entities.LeadFilter, id string) error {
	where, args := leadOwnerWhere(filter, id, nil)
	_, err := r.db.ExecContext(ctx, `DELETE FROM leads WHERE `+where, args...)
	return err
}

// leadOwnerWhere matches id and, when the filter names one, the owner. The
// placeholders continue after args.
func leadOwnerWhere(filter entities.LeadFilter, id string, args []any) (string, []any) {
	args = append(args, id)
	where := fmt.Sprintf("id = $%d", len(args))
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		where += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	return where, args
}

// buildLeadSetClause lists "column = $n" for every field named by the
// patch, in a fixed column order. Cleared optionals are written as NULL.
func buildLeadSetClause(p entities.LeadPatch) ([]string, []any) {
	var (
		sets []string
		args []any
	)
	add := func(column string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Email != nil {
		add("email", nullString(*p.Email))
	}
	if p.Phone != nil {
		add("phone", nullString(*p.Phone))
	}
	if p.Source != nil {
		add("source", *p.Source)
	}
	if p.Stage != nil {
		add("stage", string(*p.Stage))
	}
	if p.Interest != nil {
		add("interest", nullString(*p.Interest))
	}
	if p.EstimatedValue != nil {
		add("estimated_value", nullFloat(*p.EstimatedValue))
	}
	if p.Notes != nil {
		add("notes", nullString(*p.Notes))
	}
	if p.PropertyID != nil {
		add("property_id", nullString(*p.PropertyID))
	}
	if p.UpdatedAt != nil {
		add("updated_at", p.UpdatedAt.UTC())
	}
	return sets, args
}

func (row leadRow) toEntity() entities.Lead {
	return entities.Lead{
		ID:             row.ID,
		UserID:         row.UserID,
		Name:           row.Name,
		Email:          fromNullString(row.Email),
		Phone:          fromNullString(row.Phone),
		Source:         row.Source,
		Stage:          entities.LeadStage(row.Stage),
		Interest:       fromNullString(row.Interest),
		EstimatedValue: fromNullFloat(row.EstimatedValue),
		Notes:          fromNullString(row.Notes),
		PropertyID:     fromNullString(row.PropertyID),
		CreatedAt:      timeOrNone(row.CreatedAt),
		UpdatedAt:      timeOrNone(row.UpdatedAt),
	}
}

func nullString(o entities.Optional[string]) sql.NullString {
	v, ok := o.Get()
	return sql.NullString{String: v, Valid: ok}
}

func nullFloat(o entities.Optional[float64]) sql.NullFloat64 {
	v, ok := o.Get()
	return sql.NullFloat64{Float64: v, Valid: ok}
}

func fromNullString(n sql.NullString) entities.Optional[string] {
	if !n.Valid {
		return entities.None[string]()
	}
	return entities.Some(n.String)
}

func fromNullFloat(n sql.NullFloat64) entities.Optional[float64] {
	if !n.Valid {
		return entities.None[float64]()
	}
	return entities.Some(n.Float64)
}

func timeOrNone(t time.Time) entities.Optional[time.Time] {
	if t.IsZero() {
		return entities.None[time.Time]()
	}
	return entities.Some(t)
}
