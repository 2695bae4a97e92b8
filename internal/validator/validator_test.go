package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Phone  string `json:"phoneNumber" validate:"required"`
	Role   string `json:"role" validate:"omitempty,is-user-role"`
	Status string `json:"status" validate:"omitempty,is-verification-status"`
}

func TestValidate(t *testing.T) {
	v := New()

	t.Run("valid payload", func(t *testing.T) {
		err := v.Validate(&samplePayload{Phone: "+91", Role: "technician", Status: "approved"})
		assert.NoError(t, err)
	})

	t.Run("missing required field reports the json name", func(t *testing.T) {
		err := v.Validate(&samplePayload{Role: "sales"})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Errors, "phoneNumber")
	})

	t.Run("admin is not a candidate role", func(t *testing.T) {
		err := v.Validate(&samplePayload{Phone: "+91", Role: "admin"})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Errors["role"], "valid candidate role")
	})

	t.Run("unknown verification status", func(t *testing.T) {
		err := v.Validate(&samplePayload{Phone: "+91", Status: "done"})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Errors, "status")
	})
}
