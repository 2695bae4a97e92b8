package models

type UserRole string
type VerificationStatus string
type JobStatus string

const (
	UserRoleTechnician UserRole = "technician"
	UserRoleSales      UserRole = "sales"
	UserRoleWorkshop   UserRole = "workshop"
	UserRoleAdmin      UserRole = "admin"

	// RoleRecruiter is not a User row role; it only appears in JWT claims
	// issued to recruiter accounts.
	RoleRecruiter = "recruiter"

	VerificationPending        VerificationStatus = "pending"
	VerificationStep2Completed VerificationStatus = "step2_completed"
	VerificationStep3Pending   VerificationStatus = "step3_pending"
	VerificationVerified       VerificationStatus = "verified"
	VerificationRejected       VerificationStatus = "rejected"

	JobStatusPending  JobStatus = "pending"
	JobStatusApproved JobStatus = "approved"
	JobStatusRejected JobStatus = "rejected"
)

// legacyVerifiedAlias is the historical "approved" value some clients still
// send for users; it is normalized to "verified" at the boundary.
const legacyVerifiedAlias = "approved"

// ParseVerificationStatus validates a caller-supplied status string against
// the closed enum, normalizing the legacy alias.
func ParseVerificationStatus(s string) (VerificationStatus, bool) {
	if s == legacyVerifiedAlias {
		return VerificationVerified, true
	}
	switch VerificationStatus(s) {
	case VerificationPending, VerificationStep2Completed, VerificationStep3Pending,
		VerificationVerified, VerificationRejected:
		return VerificationStatus(s), true
	default:
		return "", false
	}
}

// IsTerminal reports whether no further pipeline transitions are possible.
func (s VerificationStatus) IsTerminal() bool {
	return s == VerificationVerified || s == VerificationRejected
}

// IsQuizPassed reports whether the user cleared the quiz stages. Only such
// users are eligible for the admin trusted badge.
func (s VerificationStatus) IsQuizPassed() bool {
	return s == VerificationVerified
}

// IsCandidateRole reports whether the role participates in the verification
// pipeline and the question bank.
func IsCandidateRole(r UserRole) bool {
	switch r {
	case UserRoleTechnician, UserRoleSales, UserRoleWorkshop:
		return true
	default:
		return false
	}
}
