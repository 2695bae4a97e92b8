package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVerificationStatus(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"pending", "step2_completed", "step3_pending", "verified", "rejected"} {
		status, ok := ParseVerificationStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, VerificationStatus(valid), status)
	}

	t.Run("legacy approved alias normalizes to verified", func(t *testing.T) {
		status, ok := ParseVerificationStatus("approved")
		assert.True(t, ok)
		assert.Equal(t, VerificationVerified, status)
	})

	t.Run("unknown values are rejected", func(t *testing.T) {
		for _, invalid := range []string{"", "done", "VERIFIED", "step_1", "banned"} {
			_, ok := ParseVerificationStatus(invalid)
			assert.False(t, ok, invalid)
		}
	})
}

func TestVerificationStatusHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, VerificationVerified.IsTerminal())
	assert.True(t, VerificationRejected.IsTerminal())
	assert.False(t, VerificationPending.IsTerminal())
	assert.False(t, VerificationStep3Pending.IsTerminal())

	assert.True(t, VerificationVerified.IsQuizPassed())
	assert.False(t, VerificationStep3Pending.IsQuizPassed())
	assert.False(t, VerificationRejected.IsQuizPassed())
}

func TestIsCandidateRole(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCandidateRole(UserRoleTechnician))
	assert.True(t, IsCandidateRole(UserRoleSales))
	assert.True(t, IsCandidateRole(UserRoleWorkshop))
	assert.False(t, IsCandidateRole(UserRoleAdmin))
	assert.False(t, IsCandidateRole(UserRole("recruiter")))
	assert.False(t, IsCandidateRole(UserRole("")))
}
