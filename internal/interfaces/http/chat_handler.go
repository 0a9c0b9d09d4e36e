package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lifebank-api/internal/application/auth"
	"github.com/jhoicas/lifebank-api/internal/application/chat"
	"github.com/jhoicas/lifebank-api/internal/application/dto"
	"github.com/jhoicas/lifebank-api/internal/domain"
	"github.com/jhoicas/lifebank-api/internal/domain/entity"
)

// ChatHandler expone el asistente de chat. El shape de request/response y el
// cuerpo de error "No message provided" son contrato de compatibilidad con los
// clientes existentes; no usan dto.ErrorResponse.
type ChatHandler struct {
	responder *chat.Responder
	authUC    *auth.AuthUseCase
}

// NewChatHandler construye el handler.
func NewChatHandler(responder *chat.Responder, authUC *auth.AuthUseCase) *ChatHandler {
	return &ChatHandler{responder: responder, authUC: authUC}
}

// Ask godoc
// @Summary      Preguntar al asistente
// @Description  Clasifica el mensaje contra reglas ordenadas (stock, elegibilidad,
//               donación, citas, saludo, gracias, ayuda) y responde un texto fijo.
//               Con Bearer token válido, la respuesta se personaliza con la identidad.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "message"
// @Success      200   {object}  dto.ChatReply
// @Failure      400   {object}  map[string]string
// @Router       /api/chat [post]
func (h *ChatHandler) Ask(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No message provided"})
	}

	reply, err := h.responder.Respond(c.Context(), in.Message)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidMessage) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No message provided"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	reply = chat.Personalize(reply, h.identity(c))
	return c.JSON(dto.ChatReply{Reply: reply})
}

// identity arma la identidad de chat desde el token opcional; nil si anónimo o
// si el usuario ya no existe.
func (h *ChatHandler) identity(c *fiber.Ctx) *chat.Identity {
	userID := GetUserID(c)
	if userID == "" {
		return nil
	}
	user, err := h.authUC.Identity(c.Context(), userID)
	if err != nil || user == nil {
		return nil
	}
	ident := &chat.Identity{Name: user.Name, Role: user.Role}
	if user.BloodType != "" {
		bt := entity.BloodType(user.BloodType)
		ident.BloodType = &bt
	}
	return ident
}
