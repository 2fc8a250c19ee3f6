package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/sumaconta/sumaconta_backend/internal/core/domain"
)

// SignedAmount expresses an entry line relative to an account's normal side:
// positive when the line moves the balance with the account's convention.
// DEBIT-normal accounts grow with debits, CREDIT-normal accounts with credits.
func SignedAmount(line domain.EntryLine, side domain.NormalSide) decimal.Decimal {
	if side == domain.CreditSide {
		return line.Credit.Sub(line.Debit)
	}
	return line.Debit.Sub(line.Credit)
}

// NormalBalance converts raw debit/credit totals into the balance convention
// of the given side: totalDebit-totalCredit for DEBIT-normal accounts and the
// mirror for CREDIT-normal ones.
func NormalBalance(totalDebit, totalCredit decimal.Decimal, side domain.NormalSide) decimal.Decimal {
	if side == domain.CreditSide {
		return totalCredit.Sub(totalDebit)
	}
	return totalDebit.Sub(totalCredit)
}

// AdjustmentSide returns the side on which a reexpression (or any valuation)
// adjustment must be posted to the adjusted account. A positive delta grows
// the account, so it posts on the account's own normal side; a negative delta
// posts on the opposite side. The counterpart to the inflation-result account
// is always the opposite of the returned side.
//
// The direction is derived from the account's normal side, never assumed
// debit: a positive adjustment on a CREDIT-normal account (liability, equity,
// credit-balance income) is a CREDIT to that account.
func AdjustmentSide(side domain.NormalSide, delta decimal.Decimal) domain.NormalSide {
	if delta.IsNegative() {
		return side.Opposite()
	}
	return side
}

// AdjustmentLines builds the two balanced entry lines for posting a
// reexpression delta against an account, with the inflation-result account
// taking the mirror side.
func AdjustmentLines(account domain.Account, resultAccountID string, delta decimal.Decimal) []domain.EntryLine {
	if delta.IsZero() {
		return nil
	}
	amount := delta.Abs()
	accountLine := domain.EntryLine{AccountID: account.AccountID}
	resultLine := domain.EntryLine{AccountID: resultAccountID}

	if AdjustmentSide(account.EffectiveNormalSide(), delta) == domain.DebitSide {
		accountLine.Debit = amount
		resultLine.Credit = amount
	} else {
		accountLine.Credit = amount
		resultLine.Debit = amount
	}
	return []domain.EntryLine{accountLine, resultLine}
}
