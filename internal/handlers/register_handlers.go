package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
	"github.com/sumaconta/sumaconta_backend/internal/core/services"
)

// RegisterHandlers wires every computation route onto the API group.
func RegisterHandlers(rg *gin.RouterGroup, container *services.ServicesContainer, defaultPolicy domain.NegativeStockPolicy) {
	registerJournalRoutes(rg, container.Validation, container.Ledger)
	registerReportingRoutes(rg, container.Ledger, container.TrialBalance, container.Statements)
	registerInventoryRoutes(rg, container.Costing, container.Reexpression, defaultPolicy)
}
