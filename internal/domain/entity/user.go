package entity

// UserRole discriminates the two marketplace user types
type UserRole string

const (
	RoleClient     UserRole = "CLIENT"
	RoleContractor UserRole = "CONTRACTOR"
)

// IsValid checks if the role is valid
func (r UserRole) IsValid() bool {
	return r == RoleClient || r == RoleContractor
}

// VerificationStatus tracks contractor document verification
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationRejected VerificationStatus = "REJECTED"
)

func (s VerificationStatus) IsValid() bool {
	return s == VerificationPending || s == VerificationVerified || s == VerificationRejected
}

// User is the role-discriminated directory entry shown on the users list
type User struct {
	ID        string   `json:"id"`
	Role      UserRole `json:"role"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	City      string   `json:"city"`
	CreatedAt string   `json:"created_at"`
}

// ClientProfile is the client detail record
type ClientProfile struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Addresses []string `json:"addresses"`
	CreatedAt string   `json:"created_at"`
}

// CoverageArea is a city with the districts a contractor serves
type CoverageArea struct {
	City      string   `json:"city"`
	Districts []string `json:"districts"`
}

// ContractorProfile is the contractor detail record
type ContractorProfile struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Phone              string             `json:"phone"`
	CompanyName        string             `json:"company_name"`
	CRNumber           string             `json:"cr_number"`
	Rating             float64            `json:"rating"`
	TotalRatings       int                `json:"total_ratings"`
	Services           []string           `json:"services"`
	CoverageAreas      []CoverageArea     `json:"coverage_areas"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	CreatedAt          string             `json:"created_at"`
}
