package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"backend-enrollment/internal/models"

	"github.com/go-sql-driver/mysql"
)

type TicketRepo struct {
	db *sql.DB
}

func NewTicketRepo(db *sql.DB) *TicketRepo {
	return &TicketRepo{db: db}
}

func scanTicket(row *sql.Row) (models.Ticket, error) {
	var ticket models.Ticket
	var spec string

	if err := row.Scan(&ticket.UserID, &spec, &ticket.Date); err != nil {
		return models.Ticket{}, err
	}

	var err error
	ticket.Specialization, err = models.ParseSpecialization(spec)
	if err != nil {
		return models.Ticket{}, err
	}

	return ticket, nil
}

func (r *TicketRepo) GetByUserID(ctx context.Context, userID int64) (models.Ticket, error) {
	query := "SELECT user_id, specialization, date FROM tickets WHERE user_id = ?"
	ticket, err := scanTicket(r.db.QueryRowContext(ctx, query, userID))

	if err == sql.ErrNoRows {
		return models.Ticket{}, ErrNoSuchTicket
	}

	if err != nil {
		return models.Ticket{}, fmt.Errorf("get ticket %d: %w", userID, err)
	}

	return ticket, nil
}

// GetFirstEnqueued - tiket paling depan, urut date lalu user_id biar deterministik
func (r *TicketRepo) GetFirstEnqueued(ctx context.Context) (models.Ticket, error) {
	query := "SELECT user_id, specialization, date FROM tickets ORDER BY date, user_id LIMIT 1"
	ticket, err := scanTicket(r.db.QueryRowContext(ctx, query))

	if err == sql.ErrNoRows {
		return models.Ticket{}, ErrNoSuchTicket
	}

	if err != nil {
		return models.Ticket{}, fmt.Errorf("get first enqueued ticket: %w", err)
	}

	return ticket, nil
}

func (r *TicketRepo) Create(ctx context.Context, ticket models.Ticket) error {
	query := "INSERT INTO tickets (user_id, specialization, date) VALUES (?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query, ticket.UserID, ticket.Specialization.String(), ticket.Date)

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrTicketAlreadyExists
	}

	if err != nil {
		return fmt.Errorf("create ticket %d: %w", ticket.UserID, err)
	}

	return nil
}

func (r *TicketRepo) Update(ctx context.Context, ticket models.Ticket) error {
	query := "UPDATE tickets SET specialization = ?, date = ? WHERE user_id = ?"
	_, err := r.db.ExecContext(ctx, query, ticket.Specialization.String(), ticket.Date, ticket.UserID)

	if err != nil {
		return fmt.Errorf("update ticket %d: %w", ticket.UserID, err)
	}

	return nil
}

func (r *TicketRepo) Delete(ctx context.Context, ticket models.Ticket) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM tickets WHERE user_id = ?", ticket.UserID)

	if err != nil {
		return fmt.Errorf("delete ticket %d: %w", ticket.UserID, err)
	}

	return nil
}

// Count - jumlah tiket yang sedang menunggu
func (r *TicketRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tickets").Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("count tickets: %w", err)
	}

	return count, nil
}

// Position - posisi 1-based tiket di antrian, tie-break sama dengan GetFirstEnqueued
func (r *TicketRepo) Position(ctx context.Context, ticket models.Ticket) (int, error) {
	query := `
		SELECT COUNT(*) FROM tickets
		WHERE date < ? OR (date = ? AND user_id <= ?)
	`
	var position int
	err := r.db.QueryRowContext(ctx, query, ticket.Date, ticket.Date, ticket.UserID).Scan(&position)

	if err != nil {
		return 0, fmt.Errorf("position of ticket %d: %w", ticket.UserID, err)
	}

	return position, nil
}

// InitTable - idempoten, aman dipanggil setiap startup
func (r *TicketRepo) InitTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS tickets (
			user_id BIGINT PRIMARY KEY,
			specialization VARCHAR(32) NOT NULL,
			date TIMESTAMP(6) NOT NULL,
			KEY idx_tickets_date (date)
		)
	`
	_, err := r.db.ExecContext(ctx, query)

	if err != nil {
		return fmt.Errorf("init table tickets: %w", err)
	}

	return nil
}
