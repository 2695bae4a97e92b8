package dto

// SetVerificationRequest - manual admin override of a user's verification
// status. Only terminal decisions are accepted here.
type SetVerificationRequest struct {
	Status string `json:"status" binding:"required" validate:"is-verification-status"`
}

// PlatformStats - public aggregate counts
type PlatformStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalRecruiters   int64 `json:"totalRecruiters"`
	TotalJobs         int64 `json:"totalJobs"`
	TotalApplications int64 `json:"totalApplications"`
}

// AdminStats - admin dashboard counts, gathered concurrently
type AdminStats struct {
	TotalUsers           int64 `json:"totalUsers"`
	VerifiedUsers        int64 `json:"verifiedUsers"`
	AdminVerifiedUsers   int64 `json:"adminVerifiedUsers"`
	PendingVerifications int64 `json:"pendingVerifications"`
	PendingJobs          int64 `json:"pendingJobs"`
	ApprovedJobs         int64 `json:"approvedJobs"`
}
