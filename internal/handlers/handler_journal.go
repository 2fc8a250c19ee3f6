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

// journalHandler handles journal validation and ledger computation requests.
type journalHandler struct {
	validationService portssvc.JournalValidationSvc
	ledgerService     portssvc.LedgerSvc
}

func newJournalHandler(vs portssvc.JournalValidationSvc, ls portssvc.LedgerSvc) *journalHandler {
	return &journalHandler{
		validationService: vs,
		ledgerService:     ls,
	}
}

// registerJournalRoutes registers journal and ledger computation routes.
func registerJournalRoutes(rg *gin.RouterGroup, vs portssvc.JournalValidationSvc, ls portssvc.LedgerSvc) {
	h := newJournalHandler(vs, ls)

	journal := rg.Group("/journal")
	{
		journal.POST("/validate", h.validateEntry)
	}
	ledger := rg.Group("/ledger")
	{
		ledger.POST("/compute", h.computeLedger)
	}
}

// validateEntry godoc
// @Summary Validate a journal entry
// @Description Checks that a proposed entry balances within tolerance and references only postable accounts
// @Tags journal
// @Accept json
// @Produce json
// @Param request body dto.ValidateEntryRequest true "Entry and chart of accounts"
// @Success 200 {object} domain.ValidationResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /journal/validate [post]
func (h *journalHandler) validateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ValidateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid validate request payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accounts := domain.AccountIndex(dto.AccountsToDomain(req.Accounts))
	result := h.validationService.Validate(c.Request.Context(), req.Entry.ToDomain(), accounts)

	logger.Info("Journal entry validated",
		slog.String("entry_id", req.Entry.EntryID),
		slog.Bool("ok", result.OK))
	c.JSON(http.StatusOK, result)
}

// computeLedger godoc
// @Summary Compute the ledger
// @Description Folds the journal into per-account movement histories and balances
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body dto.ComputeLedgerRequest true "Chart of accounts and journal"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown account reference"
// @Router /ledger/compute [post]
func (h *journalHandler) computeLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ComputeLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid ledger request payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accounts := domain.AccountIndex(dto.AccountsToDomain(req.Accounts))
	ledger, err := h.ledgerService.ComputeLedger(c.Request.Context(), dto.EntriesToDomain(req.Entries), accounts)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute ledger", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute ledger"})
		}
		return
	}

	logger.Info("Ledger computed",
		slog.Int("entry_count", len(req.Entries)),
		slog.Int("account_count", len(ledger)))
	c.JSON(http.StatusOK, dto.ToLedgerResponse(ledger))
}
