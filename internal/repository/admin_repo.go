package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"backend-enrollment/internal/models"

	"github.com/go-sql-driver/mysql"
)

type AdminRepo struct {
	db *sql.DB
}

func NewAdminRepo(db *sql.DB) *AdminRepo {
	return &AdminRepo{db: db}
}

func (r *AdminRepo) GetByID(ctx context.Context, adminID int64) (models.Admin, error) {
	var admin models.Admin
	var spec string

	query := "SELECT id, specialization, window_number FROM admins WHERE id = ?"
	err := r.db.QueryRowContext(ctx, query, adminID).Scan(&admin.ID, &spec, &admin.WindowNumber)

	if err == sql.ErrNoRows {
		return models.Admin{}, ErrNoSuchAdmin
	}

	if err != nil {
		return models.Admin{}, fmt.Errorf("get admin %d: %w", adminID, err)
	}

	admin.Specialization, err = models.ParseSpecialization(spec)
	if err != nil {
		return models.Admin{}, fmt.Errorf("admin %d: %w", adminID, err)
	}

	return admin, nil
}

func (r *AdminRepo) Create(ctx context.Context, admin models.Admin) error {
	query := "INSERT INTO admins (id, specialization, window_number) VALUES (?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query, admin.ID, admin.Specialization.String(), admin.WindowNumber)

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrAdminAlreadyExists
	}

	if err != nil {
		return fmt.Errorf("create admin %d: %w", admin.ID, err)
	}

	return nil
}

// Update - upsert-by-identity, tidak ada workflow yang memakainya saat ini
func (r *AdminRepo) Update(ctx context.Context, admin models.Admin) error {
	query := "UPDATE admins SET specialization = ?, window_number = ? WHERE id = ?"
	_, err := r.db.ExecContext(ctx, query, admin.Specialization.String(), admin.WindowNumber, admin.ID)

	if err != nil {
		return fmt.Errorf("update admin %d: %w", admin.ID, err)
	}

	return nil
}

// Delete - no-op kalau ID tidak ada
func (r *AdminRepo) Delete(ctx context.Context, admin models.Admin) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM admins WHERE id = ?", admin.ID)

	if err != nil {
		return fmt.Errorf("delete admin %d: %w", admin.ID, err)
	}

	return nil
}

// InitTable - idempoten, aman dipanggil setiap startup
func (r *AdminRepo) InitTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS admins (
			id BIGINT PRIMARY KEY,
			specialization VARCHAR(32) NOT NULL,
			window_number INT NOT NULL
		)
	`
	_, err := r.db.ExecContext(ctx, query)

	if err != nil {
		return fmt.Errorf("init table admins: %w", err)
	}

	return nil
}
