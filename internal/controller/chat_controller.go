package controller

import (
	"lira-support-be/internal/dto"
	"lira-support-be/internal/pkg/serverutils"
	"lira-support-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.SendChat)
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		// A malformed body is treated as an empty message and answered
		// with the prompt-for-input reply
		req = dto.SendChatRequest{}
	}

	sessionID := serverutils.SessionID(ctx)

	res, err := c.chatService.HandleMessage(ctx.Context(), sessionID, req.Message)
	if err != nil {
		return err
	}

	// Always 200: model failures are recovered into a canned reply
	return ctx.JSON(res)
}
