package handler

import (
	"errors"

	"backend-enrollment/internal/models"
	"backend-enrollment/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// AddAdmin - provisioning admin, hanya owner. Semua field divalidasi
// dulu; satu saja salah, seluruh request ditolak tanpa menyentuh store.
func (h *Handler) AddAdmin(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int64)

	if !h.Registry.IsOwner(userID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   "Hanya owner yang boleh menambah admin",
		})
	}

	var req models.AddAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	spec, specErr := models.ParseSpecialization(req.Specialization)

	if req.UserID <= 0 || specErr != nil || req.WindowNumber <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error": "Argumen tidak valid. user_id harus user ID (integer), " +
				"specialization harus DOCUMENTS atau CONSULTATION, " +
				"window_number harus integer nomor loket",
		})
	}

	err := h.Registry.AddAdmin(c.Context(), req.UserID, spec, req.WindowNumber)

	if errors.Is(err, repository.ErrAdminAlreadyExists) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"error":   "Admin dengan ID tersebut sudah ada",
		})
	}

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Gagal menambah admin",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Admin berhasil ditambahkan",
	})
}

// MyAdmin - data admin pemanggil sendiri (lihat nomor loket)
func (h *Handler) MyAdmin(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int64)

	admin, err := h.Registry.GetAdmin(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Gagal mengambil data admin",
		})
	}

	if admin == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Anda bukan admin",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    models.ToAdminResponse(*admin),
	})
}
