package queue

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"backend-enrollment/internal/models"
	"backend-enrollment/internal/repository"
)

var (
	ErrSameTicketEnqueue = errors.New("tiket dengan layanan yang sama sudah diambil")
	ErrNoTicketsInQueue  = errors.New("tidak ada tiket di antrian")
)

// TicketStore - kontrak penyimpanan tiket yang dipakai queue engine
type TicketStore interface {
	GetByUserID(ctx context.Context, userID int64) (models.Ticket, error)
	GetFirstEnqueued(ctx context.Context) (models.Ticket, error)
	Create(ctx context.Context, ticket models.Ticket) error
	Update(ctx context.Context, ticket models.Ticket) error
	Delete(ctx context.Context, ticket models.Ticket) error
}

/*
|--------------------------------------------------------------------------
| ENROLLEE QUEUE
|--------------------------------------------------------------------------
| Satu antrian FIFO global. Mutasi diserialisasi dengan mutex supaya
| read-modify-write enqueue dan read-then-delete dequeue tidak saling
| menyalip; constraint primary key di store tetap jadi pengaman terakhir.
*/
type EnrolleeQueue struct {
	mu      sync.Mutex
	tickets TicketStore
	now     func() time.Time
}

func New(tickets TicketStore) *EnrolleeQueue {
	return &EnrolleeQueue{
		tickets: tickets,
		now:     time.Now,
	}
}

// Enqueue - buat tiket baru, atau ganti layanan tiket lama tanpa
// kehilangan posisi antrian. Layanan sama dua kali ditolak.
// created = true hanya kalau tiket benar-benar baru masuk antrian.
func (q *EnrolleeQueue) Enqueue(ctx context.Context, userID int64, spec models.Specialization) (created bool, err error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	ticket, err := q.tickets.GetByUserID(ctx, userID)

	if errors.Is(err, repository.ErrNoSuchTicket) {
		err := q.tickets.Create(ctx, models.Ticket{
			UserID:         userID,
			Specialization: spec,
			Date:           q.now(),
		})
		if err != nil {
			return false, err
		}
		return true, nil
	}

	if err != nil {
		return false, err
	}

	if ticket.Specialization == spec {
		return false, ErrSameTicketEnqueue
	}

	// Ganti layanan in-place, Date tidak di-refresh: posisi antrian tetap
	ticket.Specialization = spec

	return false, q.tickets.Update(ctx, ticket)
}

// Dequeue - ambil tiket paling depan dan hapus dari antrian.
// adminID cuma untuk log, pemilihan tiket murni FIFO global.
func (q *EnrolleeQueue) Dequeue(ctx context.Context, adminID int64) (models.Ticket, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	ticket, err := q.tickets.GetFirstEnqueued(ctx)

	if errors.Is(err, repository.ErrNoSuchTicket) {
		return models.Ticket{}, ErrNoTicketsInQueue
	}

	if err != nil {
		return models.Ticket{}, err
	}

	if err := q.tickets.Delete(ctx, ticket); err != nil {
		return models.Ticket{}, err
	}

	log.Printf("[queue] admin %d dequeued ticket of user %d (%s)", adminID, ticket.UserID, ticket.Specialization)

	return ticket, nil
}
