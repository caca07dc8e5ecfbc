package handler

import (
	"context"
	"errors"
	"log"

	"backend-enrollment/internal/metrics"
	"backend-enrollment/internal/models"
	"backend-enrollment/internal/queue"

	"github.com/gofiber/fiber/v2"
)

// CallNext - admin memanggil pendaftar paling depan di antrian.
// Urutan murni FIFO global, tidak peduli layanan maupun loket admin.
func (h *Handler) CallNext(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int64)

	admin, err := h.Registry.GetAdmin(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Gagal memeriksa status admin",
		})
	}

	if admin == nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   "Hanya admin yang boleh memanggil antrian",
		})
	}

	ticket, err := h.Queue.Dequeue(c.Context(), userID)

	if errors.Is(err, queue.ErrNoTicketsInQueue) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Tidak ada yang menunggu di antrian",
		})
	}

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Gagal memanggil antrian",
		})
	}

	metrics.TicketsDequeued.Inc()
	go h.broadcastQueueState(context.Background())

	// Dequeue sudah commit; notifikasi best-effort saja
	if err := h.Notifier.NotifyWindow(context.Background(), ticket.UserID, admin.WindowNumber); err != nil {
		log.Printf("[notify] gagal kirim notifikasi ke user %d: %v", ticket.UserID, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Pendaftar diarahkan ke loket Anda",
		"data": fiber.Map{
			"ticket":        models.ToTicketResponse(ticket),
			"window_number": admin.WindowNumber,
		},
	})
}
