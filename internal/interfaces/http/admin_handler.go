package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lifebank-api/internal/application/donation"
	"github.com/jhoicas/lifebank-api/internal/application/dto"
	"github.com/jhoicas/lifebank-api/internal/domain"
)

// AdminHandler operaciones restringidas a administradores.
type AdminHandler struct {
	donationUC *donation.RecordDonationUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(donationUC *donation.RecordDonationUseCase) *AdminHandler {
	return &AdminHandler{donationUC: donationUC}
}

// Adjust godoc
// @Summary      Ajuste manual de inventario
// @Description  Registra un evento de ajuste con location "admin-adjust". Acepta
//               ajustes negativos para corregir inventario sobrante; cero se rechaza.
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdminAdjustRequest  true  "blood_type y adjust"
// @Success      201   {object}  dto.DonationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/admin/adjust [post]
func (h *AdminHandler) Adjust(c *fiber.Ctx) error {
	adminID := GetUserID(c)
	if adminID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AdminAdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.donationUC.AdminAdjust(c.Context(), adminID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownBloodType):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_BLOOD_TYPE", Message: "tipo de sangre fuera del vocabulario A+,A-,B+,B-,AB+,AB-,O+,O-"})
		case errors.Is(err, domain.ErrInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "adjust debe ser un entero distinto de cero"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
