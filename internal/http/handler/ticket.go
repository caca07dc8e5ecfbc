package handler

import (
	"context"
	"errors"

	"backend-enrollment/internal/metrics"
	"backend-enrollment/internal/models"
	"backend-enrollment/internal/queue"
	"backend-enrollment/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// TakeTicket - ambil tiket antrian, atau ganti layanan tiket yang sudah ada
func (h *Handler) TakeTicket(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int64)

	var req models.TakeTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	spec, err := models.ParseSpecialization(req.Specialization)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Layanan tidak dikenal, pilih DOCUMENTS atau CONSULTATION",
		})
	}

	// Admin tidak ikut antri
	admin, err := h.Registry.GetAdmin(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Gagal memeriksa status admin",
		})
	}

	if admin != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   "Admin tidak perlu mengambil tiket antrian",
		})
	}

	created, err := h.Queue.Enqueue(c.Context(), userID, spec)

	if errors.Is(err, queue.ErrSameTicketEnqueue) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"error":   "Tiket untuk layanan ini sudah diambil, silakan tunggu",
		})
	}

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Gagal membuat tiket antrian",
		})
	}

	// Ganti layanan bukan tiket baru, jangan dihitung masuk antrian lagi
	if created {
		metrics.TicketsEnqueued.WithLabelValues(spec.String()).Inc()
	}
	go h.broadcastQueueState(context.Background())

	message := "Tiket berhasil diambil, silakan tunggu panggilan"
	if !created {
		message = "Layanan tiket diganti, posisi antrian Anda tetap"
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// MyTicket - tiket aktif pemanggil plus posisi 1-based di antrian
func (h *Handler) MyTicket(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int64)

	ticket, err := h.Tickets.GetByUserID(c.Context(), userID)

	if errors.Is(err, repository.ErrNoSuchTicket) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Anda belum mengambil tiket",
		})
	}

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Gagal mengambil data tiket",
		})
	}

	position, err := h.Tickets.Position(c.Context(), ticket)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Gagal menghitung posisi antrian",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"ticket":   models.ToTicketResponse(ticket),
			"position": position,
		},
	})
}
