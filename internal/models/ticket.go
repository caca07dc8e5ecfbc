package models

import (
	"time"
)

/*
|--------------------------------------------------------------------------
| DATABASE MODEL (INTERNAL)
|--------------------------------------------------------------------------
| Satu pendaftar maksimal punya satu tiket (user_id = primary key).
| Date dipakai untuk urutan FIFO, tidak pernah di-reset saat ganti layanan.
*/
type Ticket struct {
	UserID         int64
	Specialization Specialization
	Date           time.Time
}

/*
|--------------------------------------------------------------------------
| REQUEST
|--------------------------------------------------------------------------
*/
type TakeTicketRequest struct {
	Specialization string `json:"specialization"`
}

/*
|--------------------------------------------------------------------------
| RESPONSE DTO
|--------------------------------------------------------------------------
*/
type TicketResponse struct {
	UserID         int64     `json:"user_id"`
	Specialization string    `json:"specialization"`
	Date           time.Time `json:"date"`
}

func ToTicketResponse(t Ticket) TicketResponse {
	return TicketResponse{
		UserID:         t.UserID,
		Specialization: t.Specialization.String(),
		Date:           t.Date,
	}
}
