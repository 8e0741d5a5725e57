package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"fdrates/internal/domain"
	"fdrates/internal/domain/entity"
	"fdrates/pkg/errcodes"
)

type RunLogRepository struct {
	db *sqlx.DB
}

func NewRunLogRepository(db *sqlx.DB) *RunLogRepository {
	return &RunLogRepository{db: db}
}

// Upsert writes the dashboard row for a source, keyed by name.
func (r *RunLogRepository) Upsert(ctx context.Context, log entity.RunLog) error {
	schema := fromRunLog(log)

	query := `
		INSERT INTO run_logs (
			name, institution_type, status, records_updated, error_message, last_run
		) VALUES (
			:name, :institution_type, :status, :records_updated, :error_message, :last_run
		)
		ON CONFLICT (name) DO UPDATE SET
			institution_type = EXCLUDED.institution_type,
			status = EXCLUDED.status,
			records_updated = EXCLUDED.records_updated,
			error_message = EXCLUDED.error_message,
			last_run = EXCLUDED.last_run`

	if _, err := r.db.NamedExecContext(ctx, query, schema); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to upsert run log")
	}

	return nil
}

func (r *RunLogRepository) List(ctx context.Context) ([]entity.RunLog, error) {
	query := `
		SELECT name, institution_type, status, records_updated, error_message, last_run
		FROM run_logs
		ORDER BY name`

	var schemas []runLogSchema
	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list run logs")
	}

	logs := make([]entity.RunLog, 0, len(schemas))
	for _, s := range schemas {
		logs = append(logs, s.toDomain())
	}

	return logs, nil
}

func (r *RunLogRepository) GetByName(ctx context.Context, name string) (entity.RunLog, error) {
	query := `
		SELECT name, institution_type, status, records_updated, error_message, last_run
		FROM run_logs
		WHERE name = $1`

	var schema runLogSchema
	if err := r.db.GetContext(ctx, &schema, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.RunLog{}, domain.NewError(errcodes.RunLogNotFound, "run log not found")
		}
		return entity.RunLog{}, domain.WrapError(err, errcodes.InternalServerError, "failed to get run log")
	}

	return schema.toDomain(), nil
}
