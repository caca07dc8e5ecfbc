package handler

import (
	"github.com/gofiber/fiber/v2"
)

// QueueStatus - endpoint publik untuk display antrian
func (h *Handler) QueueStatus(c *fiber.Ctx) error {
	state, err := h.readQueueState(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Gagal mengambil kondisi antrian",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    state,
	})
}
