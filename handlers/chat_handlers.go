package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"app/ai"
	"app/models"
)

// HandleChat submits a question to the conversation and returns the rendered
// history. A blank prompt is rejected; a submission while another is in
// flight returns 409.
// POST /api/v1/chat
func (h *Handler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	history, err := h.Chat.Submit(c.Context(), req.Prompt, parseFilter(c))
	switch {
	case errors.Is(err, ai.ErrEmptyInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Nothing to do: prompt is empty"})
	case errors.Is(err, ai.ErrBusy):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "error", "message": "A question is already being answered"})
	case err != nil:
		h.Log.Error().Err(err).Msg("chat submission failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to process question"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": ai.RenderMessages(history)})
}

// HandleGetChatHistory returns the rendered conversation so far.
// GET /api/v1/chat/history
func (h *Handler) HandleGetChatHistory(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "success", "data": ai.RenderMessages(h.Chat.History())})
}
