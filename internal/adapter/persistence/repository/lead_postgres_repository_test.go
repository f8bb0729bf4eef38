package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"crm_imobiliario/internal/domain/entities"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var leadRowColumns = []string{
	"id", "user_id", "name", "email", "phone", "source", "stage", "interest",
	"estimated_value", "notes", "property_id", "created_at", "updated_at",
}

func newPostgresRepo(t *testing.T) (*LeadPostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewLeadPostgresRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestLeadPostgresRepository_List(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("filters by user and keeps the database order", func(t *testing.T) {
		repo, mock := newPostgresRepo(t)

		rows := sqlmock.NewRows(leadRowColumns).
			AddRow("b", "u1", "Bruno", nil, "11999990000", "site", "novo", nil, 350000.0, nil, nil, t2, t2).
			AddRow("a", "u1", "Ana", "ana@example.com", nil, "indicacao", "qualificado", "apartamento", nil, "ligar", nil, t1, t1)
		mock.ExpectQuery(`(?s)SELECT .+ FROM leads WHERE user_id = \$1 ORDER BY created_at DESC, id ASC`).
			WithArgs("u1").
			WillReturnRows(rows)

		leads, err := repo.List(context.Background(), entities.LeadFilter{UserID: "u1"})
		require.NoError(t, err)
		require.Len(t, leads, 2)

		assert.Equal(t, "b", leads[0].ID)
		assert.False(t, leads[0].Email.IsSet())
		assert.Equal(t, entities.Some("11999990000"), leads[0].Phone)
		assert.Equal(t, entities.Some(350000.0), leads[0].EstimatedValue)
		assert.Equal(t, entities.Some(t2), leads[0].CreatedAt)

		assert.Equal(t, "a", leads[1].ID)
		assert.Equal(t, entities.LeadStageQualificado, leads[1].Stage)
		assert.Equal(t, entities.Some("apartamento"), leads[1].Interest)
		assert.False(t, leads[1].EstimatedValue.IsSet())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no filter selects every lead", func(t *testing.T) {
		repo, mock := newPostgresRepo(t)

		mock.ExpectQuery(`(?s)SELECT .+ FROM leads ORDER BY created_at DESC`).
			WillReturnRows(sqlmock.NewRows(leadRowColumns))

		leads, err := repo.List(context.Background(), entities.LeadFilter{})
		require.NoError(t, err)
		assert.Empty(t, leads)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newPostgresRepo(t)

		mock.ExpectQuery(`(?s)SELECT .+ FROM leads`).WillReturnError(errors.New("permission denied for table leads"))

		_, err := repo.List(context.Background(), entities.LeadFilter{})
		assert.ErrorContains(t, err, "permission denied")
	})
}

func TestLeadPostgresRepository_Create(t *testing.T) {
	repo, mock := newPostgresRepo(t)
	now := time.Date(2024, 3, 3, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)INSERT INTO leads .+ RETURNING id, user_id`).
		WithArgs("u1", "Ana", "ana@example.com", nil, "site", "novo", nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows(leadRowColumns).
			AddRow("new-id", "u1", "Ana", "ana@example.com", nil, "site", "novo", nil, nil, nil, nil, now, now))

	created, err := repo.Create(context.Background(), entities.Lead{
		UserID: "u1",
		Name:   "Ana",
		Email:  entities.Some("ana@example.com"),
		Source: "site",
		Stage:  entities.LeadStageNovo,
	})
	require.NoError(t, err)
	assert.Equal(t, "new-id", created.ID)
	assert.Equal(t, entities.Some(now), created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadPostgresRepository_Update(t *testing.T) {
	now := time.Date(2024, 3, 3, 9, 30, 0, 0, time.UTC)

	t.Run("writes only the patched columns", func(t *testing.T) {
		repo, mock := newPostgresRepo(t)

		mock.ExpectQuery(`(?s)UPDATE leads SET notes = \$1, property_id = \$2 WHERE id = \$3 RETURNING`).
			WithArgs("retornar amanhã", nil, "lead-1").
			WillReturnRows(sqlmock.NewRows(leadRowColumns).
				AddRow("lead-1", "u1", "Ana", nil, nil, "site", "novo", nil, nil, "retornar amanhã", nil, now, now))

		updated, err := repo.Update(context.Background(), entities.LeadFilter{}, "lead-1", entities.LeadPatch{
			Notes:      entities.Set("retornar amanhã"),
			PropertyID: entities.Clear[string](),
		})
		require.NoError(t, err)
		assert.Equal(t, entities.Some("retornar amanhã"), updated.Notes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing id yields a zero lead", func(t *testing.T) {
		repo, mock := newPostgresRepo(t)

		mock.ExpectQuery(`(?s)UPDATE leads SET stage = \$1 WHERE id = \$2`).
			WithArgs("fechado", "missing").
			WillReturnRows(sqlmock.NewRows(leadRowColumns))

		stage := entities.LeadStageFechado
		updated, err := repo.Update(context.Background(), entities.LeadFilter{}, "missing", entities.LeadPatch{Stage: &stage})
		require.NoError(t, err)
		assert.Empty(t, updated.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("owner scope hides other users' leads", func(t *testing.T) {
		repo, mock := newPostgresRepo(t)

		mock.ExpectQuery(`(?s)UPDATE leads SET notes = \$1 WHERE id = \$2 AND user_id = \$3 RETURNING`).
			WithArgs("x", "lead-1", "bob").
			WillReturnRows(sqlmock.NewRows(leadRowColumns))

		updated, err := repo.Update(context.Background(), entities.LeadFilter{UserID: "bob"}, "lead-1", entities.LeadPatch{
			Notes: entities.Set("x"),
		})
		require.NoError(t, err)
		assert.Empty(t, updated.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty patch is rejected before querying", func(t *testing.T) {
		repo, mock := newPostgresRepo(t)

		_, err := repo.Update(context.Background(), entities.LeadFilter{}, "lead-1", entities.LeadPatch{})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLeadPostgresRepository_Delete(t *testing.T) {
	t.Run("unscoped", func(t *testing.T) {
		repo, mock := newPostgresRepo(t)

		mock.ExpectExec(`DELETE FROM leads WHERE id = \$1$`).
			WithArgs("abc").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Delete(context.Background(), entities.LeadFilter{}, "abc"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("scoped to the owner", func(t *testing.T) {
		repo, mock := newPostgresRepo(t)

		mock.ExpectExec(`DELETE FROM leads WHERE id = \$1 AND user_id = \$2`).
			WithArgs("lead-1", "bob").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Delete(context.Background(), entities.LeadFilter{UserID: "bob"}, "lead-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBuildLeadSetClause(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	name := "Ana"
	sets, args := buildLeadSetClause(entities.LeadPatch{
		Name:           &name,
		Email:          entities.Clear[string](),
		EstimatedValue: entities.Set(1000.5),
		UpdatedAt:      &ts,
	})

	assert.Equal(t, []string{"name = $1", "email = $2", "estimated_value = $3", "updated_at = $4"}, sets)
	require.Len(t, args, 4)
	assert.Equal(t, "Ana", args[0])
	assert.Equal(t, sql.NullString{}, args[1])
	assert.Equal(t, sql.NullFloat64{Float64: 1000.5, Valid: true}, args[2])
	assert.Equal(t, ts.UTC(), args[3])
}
