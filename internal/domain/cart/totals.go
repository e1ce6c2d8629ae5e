package cart

import "github.com/shopspring/decimal"

type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// TotalsOf rounds each figure to cents after computing from unrounded values.
func TotalsOf(items []LineItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount())
	}
	tax := subtotal.Mul(taxRate)
	total := subtotal.Add(tax)

	return Totals{
		Subtotal:  subtotal.Round(moneyScale),
		TaxAmount: tax.Round(moneyScale),
		Total:     total.Round(moneyScale),
	}
}

func (t Totals) IsPositive() bool {
	return t.Total.IsPositive()
}
