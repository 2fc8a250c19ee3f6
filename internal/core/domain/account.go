package domain

// AccountKind defines the fundamental accounting type of an account.
type AccountKind string

const (
	Asset     AccountKind = "ASSET"
	Liability AccountKind = "LIABILITY"
	Equity    AccountKind = "EQUITY"
	Income    AccountKind = "INCOME"
	Expense   AccountKind = "EXPENSE"
)

// NormalSide is the side (debit or credit) on which an account's balance is
// conventionally positive.
type NormalSide string

const (
	DebitSide  NormalSide = "DEBIT"
	CreditSide NormalSide = "CREDIT"
)

// Opposite returns the other side of the ledger.
func (s NormalSide) Opposite() NormalSide {
	if s == DebitSide {
		return CreditSide
	}
	return DebitSide
}

// StatementGroup tags an account with the financial-statement section it
// belongs to. Accounts without a group are ignored by the statement assembler.
type StatementGroup string

const (
	GroupCurrentAssets         StatementGroup = "CURRENT_ASSETS"
	GroupNonCurrentAssets      StatementGroup = "NON_CURRENT_ASSETS"
	GroupCurrentLiabilities    StatementGroup = "CURRENT_LIABILITIES"
	GroupNonCurrentLiabilities StatementGroup = "NON_CURRENT_LIABILITIES"
	GroupEquity                StatementGroup = "EQUITY"
	GroupSales                 StatementGroup = "SALES"
	GroupCostOfGoodsSold       StatementGroup = "COGS"
	GroupAdminExpenses         StatementGroup = "ADMIN_EXPENSES"
	GroupSellingExpenses       StatementGroup = "SELLING_EXPENSES"
	GroupFinancialResults      StatementGroup = "FINANCIAL_RESULTS"
	GroupOtherResults          StatementGroup = "OTHER_RESULTS"
)

// Account represents one node of the chart of accounts.
// Accounts are created by an external chart-of-accounts editor and are
// treated as immutable during a single computation pass.
type Account struct {
	AccountID       string         `json:"accountID"`       // Primary Key (e.g., UUID)
	Code            string         `json:"code"`            // Dot-hierarchical code (e.g., "1.1.02.02")
	Name            string         `json:"name"`            // User-defined name
	Kind            AccountKind    `json:"kind"`            // ASSET, LIABILITY, etc.
	NormalSide      NormalSide     `json:"normalSide"`      // Empty means: derive from Kind
	IsContra        bool           `json:"isContra"`        // Reduces its paired account's net presentation
	IsHeader        bool           `json:"isHeader"`        // Structural, never receives postings
	ParentAccountID string         `json:"parentAccountID"` // Nullable self-reference
	StatementGroup  StatementGroup `json:"statementGroup"`  // Used only by the statement assembler
}

// DefaultNormalSide returns the conventional normal side for an account kind:
// DEBIT for ASSET and EXPENSE, CREDIT for everything else.
func DefaultNormalSide(kind AccountKind) NormalSide {
	switch kind {
	case Asset, Expense:
		return DebitSide
	default:
		return CreditSide
	}
}

// EffectiveNormalSide returns the account's normal side, falling back to the
// kind-derived default when no per-account override is set. Contra accounts
// typically carry an override (e.g., accumulated depreciation is an ASSET
// account with a CREDIT normal side).
func (a Account) EffectiveNormalSide() NormalSide {
	if a.NormalSide == DebitSide || a.NormalSide == CreditSide {
		return a.NormalSide
	}
	return DefaultNormalSide(a.Kind)
}

// AccountIndex builds an accountID keyed lookup over a chart of accounts.
func AccountIndex(accounts []Account) map[string]Account {
	index := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		index[a.AccountID] = a
	}
	return index
}
