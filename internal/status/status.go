// Package status maps raw status codes from every entity enum onto the
// label/variant pairs the admin UI renders as badges.
package status

// Variant is the visual severity of a status badge.
type Variant string

const (
	VariantDefault Variant = "default"
	VariantSuccess Variant = "success"
	VariantWarning Variant = "warning"
	VariantDanger  Variant = "danger"
	VariantMuted   Variant = "muted"
)

// Badge is the resolved presentation of a status code.
type Badge struct {
	Label   string  `json:"label"`
	Variant Variant `json:"variant"`
}

type entry struct {
	code  string
	badge Badge
}

// entries lists every known status in enum order. Several enums reuse the
// same literal (DRAFT, PENDING, COMPLETED, CANCELLED, REJECTED, OPEN, ...);
// the lookup table keeps the last entry for a colliding code.
var entries = []entry{
	// service requests
	{"DRAFT", Badge{"Draft", VariantMuted}},
	{"PENDING", Badge{"Pending Review", VariantWarning}},
	{"IN_REVIEW", Badge{"In Review", VariantWarning}},
	{"ACCEPTED", Badge{"Accepted", VariantSuccess}},
	{"IN_PROGRESS", Badge{"In Progress", VariantDefault}},
	{"COMPLETED", Badge{"Completed", VariantSuccess}},
	{"CANCELLED", Badge{"Cancelled", VariantDanger}},

	// quick service orders
	{"DRAFT", Badge{"Draft", VariantMuted}},
	{"SUBMITTED", Badge{"Submitted", VariantWarning}},
	{"ACCEPTED", Badge{"Accepted", VariantSuccess}},
	{"SCHEDULED", Badge{"Scheduled", VariantDefault}},
	{"COMPLETED", Badge{"Completed", VariantSuccess}},
	{"CANCELLED", Badge{"Cancelled", VariantDanger}},

	// quotations
	{"PENDING", Badge{"Awaiting Decision", VariantWarning}},
	{"ACCEPTED", Badge{"Accepted", VariantSuccess}},
	{"REJECTED", Badge{"Rejected", VariantDanger}},
	{"WITHDRAWN", Badge{"Withdrawn", VariantMuted}},

	// contract milestones
	{"NotDue", Badge{"Not Due", VariantMuted}},
	{"Due", Badge{"Due", VariantWarning}},
	{"Paid", Badge{"Paid", VariantSuccess}},

	// projects
	{"ACTIVE", Badge{"Active", VariantDefault}},
	{"ON_HOLD", Badge{"On Hold", VariantWarning}},
	{"COMPLETED", Badge{"Delivered", VariantSuccess}},
	{"CANCELLED", Badge{"Terminated", VariantDanger}},

	// invoices
	{"DRAFT", Badge{"Draft Invoice", VariantMuted}},
	{"SENT", Badge{"Sent", VariantDefault}},
	{"APPROVED", Badge{"Approved", VariantSuccess}},
	{"REJECTED", Badge{"Rejected", VariantDanger}},
	{"PAID", Badge{"Paid", VariantSuccess}},

	// payments
	{"PENDING", Badge{"Payment Pending", VariantWarning}},
	{"PROCESSING", Badge{"Processing", VariantDefault}},
	{"SUCCESS", Badge{"Successful", VariantSuccess}},
	{"FAILED", Badge{"Failed", VariantDanger}},
	{"REFUNDED", Badge{"Refunded", VariantMuted}},

	// complaints
	{"OPEN", Badge{"Open", VariantWarning}},
	{"RESPONDED", Badge{"Responded", VariantSuccess}},
	{"RESOLVED", Badge{"Resolved", VariantSuccess}},
	{"ESCALATED", Badge{"Escalated", VariantDanger}},

	// contractor verification
	{"PENDING", Badge{"Verification Pending", VariantWarning}},
	{"VERIFIED", Badge{"Verified", VariantSuccess}},
	{"REJECTED", Badge{"Verification Rejected", VariantDanger}},

	// ZATCA compliance
	{"PENDING", Badge{"ZATCA Pending", VariantWarning}},
	{"REPORTED", Badge{"Reported", VariantDefault}},
	{"CLEARED", Badge{"Cleared", VariantSuccess}},
	{"REJECTED", Badge{"ZATCA Rejected", VariantDanger}},

	// support tickets
	{"OPEN", Badge{"Open", VariantWarning}},
	{"IN_PROGRESS", Badge{"In Progress", VariantDefault}},
	{"RESOLVED", Badge{"Resolved", VariantSuccess}},
	{"CLOSED", Badge{"Closed", VariantMuted}},

	// ad hoc flags used by list pages
	{"urgent", Badge{"Urgent", VariantDanger}},
	{"normal", Badge{"Normal", VariantDefault}},
	{"ACTIVE", Badge{"Active", VariantSuccess}},
}

var lookup = buildLookup()

func buildLookup() map[string]Badge {
	m := make(map[string]Badge, len(entries))
	for _, e := range entries {
		m[e.code] = e.badge
	}
	return m
}

// Resolve maps a raw status code to its badge. Unknown codes fall back to the
// raw code with the default variant.
func Resolve(code string) Badge {
	if badge, ok := lookup[code]; ok {
		return badge
	}
	return Badge{Label: code, Variant: VariantDefault}
}

// ResolveWithLabel resolves the variant for a code but replaces the label.
// List pages use this for synthetic states such as replied/awaiting reply.
func ResolveWithLabel(code, label string) Badge {
	badge := Resolve(code)
	badge.Label = label
	return badge
}
