package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKnownCodes(t *testing.T) {
	tests := []struct {
		code    string
		label   string
		variant Variant
	}{
		{"IN_REVIEW", "In Review", VariantWarning},
		{"SUBMITTED", "Submitted", VariantWarning},
		{"WITHDRAWN", "Withdrawn", VariantMuted},
		{"NotDue", "Not Due", VariantMuted},
		{"Paid", "Paid", VariantSuccess},
		{"ON_HOLD", "On Hold", VariantWarning},
		{"SENT", "Sent", VariantDefault},
		{"SUCCESS", "Successful", VariantSuccess},
		{"VERIFIED", "Verified", VariantSuccess},
		{"CLEARED", "Cleared", VariantSuccess},
		{"ESCALATED", "Escalated", VariantDanger},
		{"CLOSED", "Closed", VariantMuted},
		{"urgent", "Urgent", VariantDanger},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			badge := Resolve(tt.code)
			assert.Equal(t, tt.label, badge.Label)
			assert.Equal(t, tt.variant, badge.Variant)
		})
	}
}

// Several enums reuse the same literal code; the lookup keeps whichever
// badge appears last in the table.
func TestResolveCollidingCodesKeepLastEntry(t *testing.T) {
	tests := []struct {
		code    string
		label   string
		variant Variant
	}{
		{"PENDING", "ZATCA Pending", VariantWarning},
		{"REJECTED", "ZATCA Rejected", VariantDanger},
		{"DRAFT", "Draft Invoice", VariantMuted},
		{"COMPLETED", "Delivered", VariantSuccess},
		{"CANCELLED", "Terminated", VariantDanger},
		{"OPEN", "Open", VariantWarning},
		{"IN_PROGRESS", "In Progress", VariantDefault},
		{"RESOLVED", "Resolved", VariantSuccess},
		{"ACTIVE", "Active", VariantSuccess},
		{"ACCEPTED", "Accepted", VariantSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			badge := Resolve(tt.code)
			assert.Equal(t, tt.label, badge.Label)
			assert.Equal(t, tt.variant, badge.Variant)
		})
	}
}

func TestResolveUnknownCodeFallsBack(t *testing.T) {
	badge := Resolve("SOMETHING_NEW")
	assert.Equal(t, "SOMETHING_NEW", badge.Label)
	assert.Equal(t, VariantDefault, badge.Variant)

	badge = Resolve("")
	assert.Equal(t, "", badge.Label)
	assert.Equal(t, VariantDefault, badge.Variant)
}

func TestResolveWithLabelOverridesLabelOnly(t *testing.T) {
	badge := ResolveWithLabel("RESPONDED", "Replied")
	assert.Equal(t, "Replied", badge.Label)
	assert.Equal(t, VariantSuccess, badge.Variant)
}
