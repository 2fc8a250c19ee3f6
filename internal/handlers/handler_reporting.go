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

// reportingHandler runs the ledger -> trial balance -> statements pipeline.
type reportingHandler struct {
	ledgerService       portssvc.LedgerSvc
	trialBalanceService portssvc.TrialBalanceSvc
	statementService    portssvc.StatementSvc
}

func newReportingHandler(ls portssvc.LedgerSvc, tbs portssvc.TrialBalanceSvc, ss portssvc.StatementSvc) *reportingHandler {
	return &reportingHandler{
		ledgerService:       ls,
		trialBalanceService: tbs,
		statementService:    ss,
	}
}

// registerReportingRoutes registers trial balance and statement routes.
func registerReportingRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvc, tbs portssvc.TrialBalanceSvc, ss portssvc.StatementSvc) {
	h := newReportingHandler(ls, tbs, ss)

	reports := rg.Group("/reports")
	{
		reports.POST("/trial-balance", h.computeTrialBalance)
		reports.POST("/statements", h.computeStatements)
	}
}

// pipeline runs accounts+entries through ledger and trial balance.
func (h *reportingHandler) pipeline(c *gin.Context, req dto.ComputeLedgerRequest) (domain.TrialBalance, map[string]domain.Account, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accounts := domain.AccountIndex(dto.AccountsToDomain(req.Accounts))

	ledger, err := h.ledgerService.ComputeLedger(c.Request.Context(), dto.EntriesToDomain(req.Entries), accounts)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute ledger for report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute report"})
		}
		return domain.TrialBalance{}, nil, false
	}

	trialBalance, err := h.trialBalanceService.ComputeTrialBalance(c.Request.Context(), ledger, accounts)
	if err != nil {
		// An imbalance after validated postings is a defect, not a
		// business condition; report it as such.
		logger.Error("Trial balance invariant violation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return domain.TrialBalance{}, nil, false
	}
	return trialBalance, accounts, true
}

// computeTrialBalance godoc
// @Summary Compute the trial balance
// @Description Builds the ledger from the journal and summarises it into balanced debit/credit columns
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.ComputeLedgerRequest true "Chart of accounts and journal"
// @Success 200 {object} domain.TrialBalance
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Invariant violation"
// @Router /reports/trial-balance [post]
func (h *reportingHandler) computeTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ComputeLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid trial balance request payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trialBalance, _, ok := h.pipeline(c, req)
	if !ok {
		return
	}

	logger.Info("Trial balance report generated", slog.Int("row_count", len(trialBalance.Rows)))
	c.JSON(http.StatusOK, trialBalance)
}

// computeStatements godoc
// @Summary Compute the financial statements
// @Description Assembles the balance sheet and income statement from the journal
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.ComputeLedgerRequest true "Chart of accounts and journal"
// @Success 200 {object} dto.StatementsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Invariant violation"
// @Router /reports/statements [post]
func (h *reportingHandler) computeStatements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ComputeLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid statements request payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trialBalance, accounts, ok := h.pipeline(c, req)
	if !ok {
		return
	}

	statements, err := h.statementService.ComputeStatements(c.Request.Context(), trialBalance, accounts)
	if err != nil {
		logger.Error("Failed to assemble statements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assemble statements"})
		return
	}

	logger.Info("Financial statements generated",
		slog.Bool("is_balanced", statements.BalanceSheet.IsBalanced))
	c.JSON(http.StatusOK, dto.StatementsResponse{
		TrialBalance: trialBalance,
		Statements:   statements,
	})
}
