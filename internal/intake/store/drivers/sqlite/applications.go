package sqlite

import (
	"context"
	"database/sql"

	"github.com/jobdesk/intake/internal/intake/domain"
	"github.com/jobdesk/intake/internal/intake/store"
)

type applicationsRepo struct {
	db dbtx
}

const applicationColumns = `id, username, name, email, password_hash, admin, processed, updated, created_at`

func scanApplication(row interface{ Scan(dest ...any) error }) (domain.Application, error) {
	var (
		a       domain.Application
		updated sql.NullTime
	)
	err := row.Scan(
		&a.ID, &a.Username, &a.Name, &a.Email, &a.PasswordHash,
		&a.Admin, &a.Processed, &updated, &a.CreatedAt,
	)
	a.Updated = mapNullTimePtr(updated)
	return a, err
}

func (r *applicationsRepo) CreateApplication(ctx context.Context, a domain.Application) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO applications (id, username, name, email, password_hash, admin)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Username, a.Name, a.Email, a.PasswordHash, a.Admin,
	)
	return err
}

func (r *applicationsRepo) GetApplicationByID(ctx context.Context, id string) (domain.Application, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = ?`, id)
	a, err := scanApplication(row)
	if err != nil {
		return domain.Application{}, mapNotFound(err)
	}
	return a, nil
}

func (r *applicationsRepo) ListApplications(ctx context.Context) ([]domain.Application, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+applicationColumns+` FROM applications ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *applicationsRepo) MarkApplicationProcessed(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE applications
		SET processed = 1, updated = CURRENT_TIMESTAMP
		WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *applicationsRepo) DeleteApplication(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
