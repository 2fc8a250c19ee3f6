package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumaconta/sumaconta_backend/internal/apperrors"
	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
	portssvc "github.com/sumaconta/sumaconta_backend/internal/core/ports/services"
	"github.com/sumaconta/sumaconta_backend/internal/dto"
	"github.com/sumaconta/sumaconta_backend/internal/middleware"
)

// inventoryHandler handles inventory valuation and reexpression requests.
type inventoryHandler struct {
	costingService      portssvc.CostingSvc
	reexpressionService portssvc.ReexpressionSvc
	defaultPolicy       domain.NegativeStockPolicy
}

func newInventoryHandler(cs portssvc.CostingSvc, rs portssvc.ReexpressionSvc, defaultPolicy domain.NegativeStockPolicy) *inventoryHandler {
	return &inventoryHandler{
		costingService:      cs,
		reexpressionService: rs,
		defaultPolicy:       defaultPolicy,
	}
}

// registerInventoryRoutes registers inventory valuation routes.
func registerInventoryRoutes(rg *gin.RouterGroup, cs portssvc.CostingSvc, rs portssvc.ReexpressionSvc, defaultPolicy domain.NegativeStockPolicy) {
	h := newInventoryHandler(cs, rs, defaultPolicy)

	inventory := rg.Group("/inventory")
	{
		inventory.POST("/valuations", h.computeValuations)
		inventory.POST("/ending-valuation", h.computeEndingValuation)
	}
}

// computeValuations godoc
// @Summary Compute per-product stock valuations
// @Description Values each product's stock under FIFO, LIFO or weighted-average from its movement history
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body dto.ValuationsRequest true "Products, movements and costing method"
// @Success 200 {object} dto.ValuationsResponse
// @Failure 400 {object} map[string]string "Invalid input or insufficient stock"
// @Router /inventory/valuations [post]
func (h *inventoryHandler) computeValuations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ValuationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid valuations request payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	policy := domain.NegativeStockPolicy(req.NegativeStockPolicy)
	if policy == "" {
		policy = h.defaultPolicy
	}

	valuations, err := h.costingService.CalculateAllValuations(
		c.Request.Context(),
		dto.ProductsToDomain(req.Products),
		dto.MovementsToDomain(req.Movements),
		domain.CostingMethod(req.Method),
		portssvc.CostingOptions{NegativeStock: policy},
	)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute valuations", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute valuations"})
		}
		return
	}

	logger.Info("Inventory valuations computed",
		slog.String("method", req.Method),
		slog.Int("product_count", len(valuations)))
	c.JSON(http.StatusOK, dto.ValuationsResponse{
		Method:     req.Method,
		Valuations: valuations,
	})
}

// computeEndingValuation godoc
// @Summary Compute the homogeneous-currency ending inventory
// @Description Reexpresses the ending inventory from historical to inflation-adjusted currency using monthly price indices
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body dto.EndingInventoryRequest true "Products, movements, method, closing period and index table"
// @Success 200 {object} domain.EndingInventoryValuation
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /inventory/ending-valuation [post]
func (h *inventoryHandler) computeEndingValuation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EndingInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid ending valuation request payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.reexpressionService.ComputeEndingInventoryValuation(
		c.Request.Context(), req.ToParams(h.defaultPolicy))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute ending valuation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute ending valuation"})
		}
		return
	}

	logger.Info("Ending inventory valuation computed",
		slog.String("closing_period", req.ClosingPeriod),
		slog.Bool("has_indices", result.HasIndices),
		slog.Int("missing_periods", len(result.MissingPeriods)))
	c.JSON(http.StatusOK, result)
}
