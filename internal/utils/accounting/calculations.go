package accounting

import (
	"fmt"
	"strings"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/utils"
	"github.com/shopspring/decimal"
)

// Remaining returns what is still owed on a transaction of the given total.
func Remaining(total, paid decimal.Decimal) decimal.Decimal {
	return total.Sub(paid)
}

// SettlementOf classifies a transaction by comparing what was paid against its total.
func SettlementOf(total, paid decimal.Decimal) domain.Settlement {
	switch {
	case paid.GreaterThanOrEqual(total):
		return domain.SettlementPaid
	case paid.IsPositive():
		return domain.SettlementPartial
	default:
		return domain.SettlementUnpaid
	}
}

// CheckPaymentLimit verifies that adding amount to alreadyPaid keeps the payments within total.
// On update, alreadyPaid must exclude the payment's previous amount.
func CheckPaymentLimit(total, alreadyPaid, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.NewValidationError("payment amount must be greater than zero")
	}
	if alreadyPaid.Add(amount).GreaterThan(total) {
		return apperrors.NewValidationError(fmt.Sprintf(
			"total payments cannot exceed %s. Already paid: %s. Available: %s",
			utils.FormatAmount(total),
			utils.FormatAmount(alreadyPaid),
			utils.FormatAmount(Remaining(total, alreadyPaid)),
		))
	}
	return nil
}

// statusColorKeywords is checked in order. The unsettled and voided names come first
// because most of them also contain "pag" or "paid".
var statusColorKeywords = []struct {
	keywords []string
	color    domain.StatusColor
}{
	{[]string{"unpaid", "impag", "no pag", "sin pag", "pend"}, domain.StatusColorWarning},
	{[]string{"anul", "cancel", "void"}, domain.StatusColorDanger},
	{[]string{"pag", "paid"}, domain.StatusColorSuccess},
}

// StatusColorFor maps a status name to its display color.
func StatusColorFor(statusName *string) domain.StatusColor {
	if statusName == nil {
		return domain.StatusColorDefault
	}
	name := strings.ToLower(*statusName)
	for _, entry := range statusColorKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(name, kw) {
				return entry.color
			}
		}
	}
	return domain.StatusColorDefault
}
