package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"binaa-admin/internal/domain/entity"
)

func TestQuotationWarnings(t *testing.T) {
	q := entity.Quotation{
		Price: 30000,
		Installments: []entity.Installment{
			{Label: "first", Amount: 10000},
			{Label: "final", Amount: 10000},
		},
	}
	warnings := QuotationWarnings(q)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "20000.00")

	// matching totals produce no warnings
	q.Installments[1].Amount = 20000
	assert.Empty(t, QuotationWarnings(q))

	// no installments or phases means nothing to check
	assert.Empty(t, QuotationWarnings(entity.Quotation{Price: 5000}))
}

func TestContractWarnings(t *testing.T) {
	c := entity.Contract{
		TotalPrice: 45000,
		Milestones: []entity.Milestone{
			{Amount: 15000},
			{Amount: 15000},
			{Amount: 15000},
		},
	}
	assert.Empty(t, ContractWarnings(c))

	c.Milestones = c.Milestones[:2]
	assert.Len(t, ContractWarnings(c), 1)
}

func TestInvoiceWarnings(t *testing.T) {
	ok := entity.Invoice{Amount: 8000, VATAmount: 1200, TotalAmount: 9200}
	assert.Empty(t, InvoiceWarnings(ok))

	// wrong VAT rate and wrong total
	bad := entity.Invoice{Amount: 8000, VATAmount: 1000, TotalAmount: 9200}
	warnings := InvoiceWarnings(bad)
	assert.Len(t, warnings, 2)
}
