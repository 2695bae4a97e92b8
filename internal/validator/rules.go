package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"evhire_backend/internal/models"
)

func registerCustomRules(v *validator.Validate) {
	mustRegister(v, "is-user-role", validateUserRole)
	mustRegister(v, "is-verification-status", validateVerificationStatus)
	mustRegister(v, "is-job-status", validateJobStatus)
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validator: failed to register rule %q: %v", tag, err))
	}
}

// validateUserRole accepts candidate roles only. Admin accounts are never
// created through registration payloads.
func validateUserRole(fl validator.FieldLevel) bool {
	return models.IsCandidateRole(models.UserRole(fl.Field().String()))
}

func validateVerificationStatus(fl validator.FieldLevel) bool {
	_, ok := models.ParseVerificationStatus(fl.Field().String())
	return ok
}

func validateJobStatus(fl validator.FieldLevel) bool {
	switch models.JobStatus(fl.Field().String()) {
	case models.JobStatusPending, models.JobStatusApproved, models.JobStatusRejected:
		return true
	}
	return false
}
