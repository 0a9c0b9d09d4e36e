package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lifebank-api/internal/application/dto"
	"github.com/jhoicas/lifebank-api/internal/application/stock"
	"github.com/jhoicas/lifebank-api/internal/domain"
	"github.com/jhoicas/lifebank-api/internal/domain/entity"
)

// StockHandler expone el inventario actual. Cada petición recalcula el
// snapshot desde el ledger; no hay caché intermedia.
type StockHandler struct {
	ledger *stock.Ledger
}

// NewStockHandler construye el handler.
func NewStockHandler(ledger *stock.Ledger) *StockHandler {
	return &StockHandler{ledger: ledger}
}

// Snapshot godoc
// @Summary      Inventario actual por tipo de sangre
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.StockSnapshotResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) Snapshot(c *fiber.Ctx) error {
	snap, err := h.ledger.Compute(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make(map[string]int, len(snap))
	for bt, units := range snap {
		out[bt.String()] = units
	}
	return c.JSON(dto.StockSnapshotResponse{Stock: out})
}

// Level godoc
// @Summary      Unidades actuales de un tipo de sangre
// @Tags         stock
// @Produce      json
// @Param        bloodType  path  string  true  "A+, A-, B+, B-, AB+, AB-, O+ u O-"
// @Success      200  {object}  dto.StockLevelResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/{bloodType} [get]
func (h *StockHandler) Level(c *fiber.Ctx) error {
	raw, err := unescapeParam(c, "bloodType")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_BLOOD_TYPE", Message: "tipo de sangre ilegible"})
	}
	bt, err := entity.ParseBloodType(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_BLOOD_TYPE", Message: "tipo de sangre fuera del vocabulario A+,A-,B+,B-,AB+,AB-,O+,O-"})
	}
	units, err := h.ledger.Available(c.Context(), bt)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownBloodType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_BLOOD_TYPE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StockLevelResponse{BloodType: bt.String(), Units: units})
}
