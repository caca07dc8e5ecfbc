package handler

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"backend-enrollment/internal/metrics"
	"backend-enrollment/internal/models"
	"backend-enrollment/internal/notify"
	"backend-enrollment/internal/queue"
	"backend-enrollment/internal/realtime"
	"backend-enrollment/internal/registry"
)

// TicketReader - akses baca antrian untuk status/posisi, di luar jalur mutasi engine
type TicketReader interface {
	GetByUserID(ctx context.Context, userID int64) (models.Ticket, error)
	GetFirstEnqueued(ctx context.Context) (models.Ticket, error)
	Count(ctx context.Context) (int, error)
	Position(ctx context.Context, ticket models.Ticket) (int, error)
}

type Handler struct {
	Queue    *queue.EnrolleeQueue
	Registry *registry.AdminRegistry
	Notifier notify.Notifier
	Tickets  TicketReader
}

func New(q *queue.EnrolleeQueue, r *registry.AdminRegistry, n notify.Notifier, t TicketReader) *Handler {
	return &Handler{
		Queue:    q,
		Registry: r,
		Notifier: n,
		Tickets:  t,
	}
}

type queueState struct {
	Waiting     int        `json:"waiting"`
	FrontUserID *int64     `json:"front_user_id,omitempty"`
	FrontSince  *time.Time `json:"front_since,omitempty"`
}

// broadcastQueueState - kirim kondisi antrian terbaru ke semua display
// dan update gauge. Best-effort: gagal baca cuma di-log.
func (h *Handler) broadcastQueueState(ctx context.Context) {
	state, err := h.readQueueState(ctx)
	if err != nil {
		log.Printf("[realtime] gagal baca kondisi antrian: %v", err)
		return
	}

	metrics.QueueDepth.Set(float64(state.Waiting))

	msg, err := json.Marshal(state)
	if err != nil {
		log.Printf("[realtime] gagal marshal kondisi antrian: %v", err)
		return
	}

	realtime.Queue.Broadcast <- msg
}

func (h *Handler) readQueueState(ctx context.Context) (queueState, error) {
	count, err := h.Tickets.Count(ctx)
	if err != nil {
		return queueState{}, err
	}

	state := queueState{Waiting: count}

	if count > 0 {
		front, err := h.Tickets.GetFirstEnqueued(ctx)
		if err != nil {
			return queueState{}, err
		}
		state.FrontUserID = &front.UserID
		// Sejak kapan antrian paling depan menunggu
		state.FrontSince = &front.Date
	}

	return state, nil
}
