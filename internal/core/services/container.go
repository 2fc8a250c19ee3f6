package services

import (
	portssvc "github.com/sumaconta/sumaconta_backend/internal/core/ports/services"
)

// ServicesContainer holds every computation service so wiring happens once.
type ServicesContainer struct {
	Validation   portssvc.JournalValidationSvc
	Ledger       portssvc.LedgerSvc
	TrialBalance portssvc.TrialBalanceSvc
	Statements   portssvc.StatementSvc
	Costing      portssvc.CostingSvc
	Reexpression portssvc.ReexpressionSvc
}

// NewServicesContainer wires the full computation pipeline. The reexpression
// service is built on top of the same costing service the container exposes.
func NewServicesContainer() *ServicesContainer {
	costing := NewCostingService()
	return &ServicesContainer{
		Validation:   NewJournalValidationService(),
		Ledger:       NewLedgerService(),
		TrialBalance: NewTrialBalanceService(),
		Statements:   NewStatementService(),
		Costing:      costing,
		Reexpression: NewReexpressionService(costing),
	}
}
