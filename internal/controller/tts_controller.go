package controller

import (
	"errors"
	"strings"

	"lira-support-be/internal/dto"
	"lira-support-be/internal/pkg/serverutils"
	"lira-support-be/internal/service"
	"lira-support-be/pkg/speech"

	"github.com/gofiber/fiber/v2"
)

type ITTSController interface {
	RegisterRoutes(r fiber.Router)
	Synthesize(ctx *fiber.Ctx) error
}

type ttsController struct {
	ttsService service.ITTSService
}

func NewTTSController(ttsService service.ITTSService) ITTSController {
	return &ttsController{
		ttsService: ttsService,
	}
}

func (c *ttsController) RegisterRoutes(r fiber.Router) {
	r.Post("/tts", c.Synthesize)
}

func (c *ttsController) Synthesize(ctx *fiber.Ctx) error {
	var req dto.SynthesizeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No text"})
	}

	req.Text = strings.TrimSpace(req.Text)
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No text"})
	}

	res, err := c.ttsService.Synthesize(ctx.Context(), req.Text, req.Lang)
	if err != nil {
		message := "TTS failed"
		if errors.Is(err, speech.ErrConfigMissing) {
			message = "TTS is not configured"
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: message})
	}

	return ctx.JSON(res)
}
