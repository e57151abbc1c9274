package query

import (
	"fmt"
	"math"

	"binaa-admin/internal/domain/entity"
)

// Advisory consistency checks shown on detail pages. They never block a
// record from rendering.

const amountTolerance = 0.01

// QuotationWarnings flags installment and phase totals that drift from the
// quoted price.
func QuotationWarnings(q entity.Quotation) []string {
	var warnings []string

	if len(q.Installments) > 0 {
		var sum float64
		for _, inst := range q.Installments {
			sum += inst.Amount
		}
		if math.Abs(sum-q.Price) > amountTolerance {
			warnings = append(warnings, fmt.Sprintf("installments total %.2f does not match price %.2f", sum, q.Price))
		}
	}

	if len(q.ExecutionPhases) > 0 {
		var sum float64
		for _, phase := range q.ExecutionPhases {
			sum += phase.Amount
		}
		if math.Abs(sum-q.Price) > amountTolerance {
			warnings = append(warnings, fmt.Sprintf("execution phases total %.2f does not match price %.2f", sum, q.Price))
		}
	}

	return warnings
}

// ContractWarnings flags milestone totals that drift from the contract price.
func ContractWarnings(c entity.Contract) []string {
	if len(c.Milestones) == 0 {
		return nil
	}
	var sum float64
	for _, m := range c.Milestones {
		sum += m.Amount
	}
	if math.Abs(sum-c.TotalPrice) > amountTolerance {
		return []string{fmt.Sprintf("milestones total %.2f does not match contract price %.2f", sum, c.TotalPrice)}
	}
	return nil
}

// InvoiceWarnings flags VAT arithmetic that does not add up.
func InvoiceWarnings(inv entity.Invoice) []string {
	var warnings []string
	if math.Abs(inv.Amount+inv.VATAmount-inv.TotalAmount) > amountTolerance {
		warnings = append(warnings, fmt.Sprintf("amount %.2f + VAT %.2f does not equal total %.2f", inv.Amount, inv.VATAmount, inv.TotalAmount))
	}
	if expected := inv.Amount * 0.15; math.Abs(inv.VATAmount-expected) > amountTolerance {
		warnings = append(warnings, fmt.Sprintf("VAT %.2f is not 15%% of amount %.2f", inv.VATAmount, inv.Amount))
	}
	return warnings
}
