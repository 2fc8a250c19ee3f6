package domain

import "github.com/shopspring/decimal"

// StatementLine is one account's presentation inside a statement section.
// Balance is oriented to the section's side, so a contra account (whose
// balance sits on the opposite side) naturally shows up negative.
type StatementLine struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	IsContra  bool            `json:"isContra"`
}

// StatementSection groups the accounts of one statementGroup tag.
// Subtotal sums the non-contra lines only; NetTotal also applies the contra
// lines, i.e. NetTotal = Subtotal minus the contra balances.
type StatementSection struct {
	Label    string          `json:"label"`
	Group    StatementGroup  `json:"group"`
	Lines    []StatementLine `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
	NetTotal decimal.Decimal `json:"netTotal"`
}

// BalanceSheet presents assets against liabilities plus equity.
// TotalEquity includes the current-period net income carried over from the
// income statement.
type BalanceSheet struct {
	CurrentAssets         StatementSection `json:"currentAssets"`
	NonCurrentAssets      StatementSection `json:"nonCurrentAssets"`
	CurrentLiabilities    StatementSection `json:"currentLiabilities"`
	NonCurrentLiabilities StatementSection `json:"nonCurrentLiabilities"`
	Equity                StatementSection `json:"equity"`
	TotalAssets           decimal.Decimal  `json:"totalAssets"`
	TotalLiabilities      decimal.Decimal  `json:"totalLiabilities"`
	TotalEquity           decimal.Decimal  `json:"totalEquity"`
	IsBalanced            bool             `json:"isBalanced"`
}

// IncomeStatement presents the result cascade. Expense sections carry a
// negative NetTotal by convention, so every subtotal in the cascade is a pure
// running addition:
//
//	GrossProfit     = Sales + CostOfGoodsSold
//	OperatingIncome = GrossProfit + AdminExpenses + SellingExpenses
//	NetIncome       = OperatingIncome + FinancialResults + OtherResults
type IncomeStatement struct {
	Sales            StatementSection `json:"sales"`
	CostOfGoodsSold  StatementSection `json:"costOfGoodsSold"`
	AdminExpenses    StatementSection `json:"adminExpenses"`
	SellingExpenses  StatementSection `json:"sellingExpenses"`
	FinancialResults StatementSection `json:"financialResults"`
	OtherResults     StatementSection `json:"otherResults"`
	GrossProfit      decimal.Decimal  `json:"grossProfit"`
	OperatingIncome  decimal.Decimal  `json:"operatingIncome"`
	NetIncome        decimal.Decimal  `json:"netIncome"`
}

// FinancialStatements bundles the two statements produced from one trial
// balance snapshot.
type FinancialStatements struct {
	BalanceSheet    BalanceSheet    `json:"balanceSheet"`
	IncomeStatement IncomeStatement `json:"incomeStatement"`
}
