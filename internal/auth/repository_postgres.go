package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresAdminRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAdminRepository(db *pgxpool.Pool) *PostgresAdminRepository {
	return &PostgresAdminRepository{db: db}
}

func (r *PostgresAdminRepository) Save(admin *Admin) error {
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}

	query := `
		INSERT INTO admins (id, email, password)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(context.Background(), query,
		admin.ID, admin.Email, admin.Password,
	)
	return err
}

func (r *PostgresAdminRepository) ExistsByEmail(email string) (bool, error) {
	query := `SELECT 1 FROM admins WHERE email=$1 LIMIT 1`
	row := r.db.QueryRow(context.Background(), query, email)

	var exists int
	if err := row.Scan(&exists); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresAdminRepository) FindByEmail(email string) (*Admin, error) {
	query := `
		SELECT id, email, password
		FROM admins WHERE email=$1
	`
	row := r.db.QueryRow(context.Background(), query, email)

	admin := &Admin{}
	if err := row.Scan(&admin.ID, &admin.Email, &admin.Password); err != nil {
		return nil, errors.New("admin not found")
	}
	return admin, nil
}
