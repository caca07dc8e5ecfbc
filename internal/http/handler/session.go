package handler

import (
	"os"

	"backend-enrollment/internal/config"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type SessionRequest struct {
	UserID      int64  `json:"user_id"`
	TerminalKey string `json:"terminal_key"`
}

// CreateSession - terminal pendaftaran menukar terminal key + user ID
// dengan token sesi. Pendaftar tidak punya password sendiri; terminal
// yang dipercaya, key-nya dicek lawan hash bcrypt dari konfigurasi.
func (h *Handler) CreateSession(c *fiber.Ctx) error {
	var req SessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.UserID <= 0 || req.TerminalKey == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "user_id dan terminal_key wajib diisi",
		})
	}

	keyHash := os.Getenv("TERMINAL_KEY_HASH")
	if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(req.TerminalKey)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Terminal key salah",
		})
	}

	token, err := config.GenerateToken(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Gagal membuat token",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"token":   token,
			"user_id": req.UserID,
		},
	})
}

// Me - balikin identitas hasil resolve token (padanan command /id di bot lama)
func (h *Handler) Me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int64)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"user_id": userID,
		},
	})
}
