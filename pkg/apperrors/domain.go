package apperrors

import (
	"net/http"
)

// Factories and predefined variables for the recruiting/verification domain.

// ErrNotFound converts a repository not-found error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrInvalidStatus builds a 400 for status values outside the closed enums.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid phone number or password",
	http.StatusUnauthorized,
)

var ErrPhoneNotRegistered = New(
	CodeNotFound,
	"auth",
	"Phone number is not registered",
	http.StatusNotFound,
)

var ErrPhoneAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Phone number already in use",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"user",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// --- Verification pipeline ---

// ErrInvalidTransition rejects verification status writes outside the
// transition table.
var ErrInvalidTransition = New(
	CodeInvalidStatus,
	"verification",
	"Verification status transition is not allowed",
	http.StatusBadRequest,
)

// ErrNotEligibleForAdminVerify guards the admin gate: the trusted badge
// requires a quiz-passed verification status.
var ErrNotEligibleForAdminVerify = New(
	CodeInvalidStatus,
	"verification",
	"User has not passed verification and cannot be admin-verified",
	http.StatusConflict,
)

// --- Quiz ---

var ErrQuizSessionInvalid = New(
	CodeInvalidToken,
	"quiz",
	"Quiz session token is invalid or expired",
	http.StatusUnauthorized,
)

var ErrQuizSessionMismatch = New(
	CodeInvalidOperation,
	"quiz",
	"Submitted answers do not match the issued question set",
	http.StatusBadRequest,
)

var ErrNoQuestionsAvailable = New(
	CodeNotFound,
	"quiz",
	"No questions available for the requested filters",
	http.StatusNotFound,
)

// --- Jobs ---

// ErrJobLocked is returned when a recruiter edits an approved post.
// Approved content is immutable.
var ErrJobLocked = New(
	CodeForbidden,
	"job",
	"Approved job posts cannot be edited",
	http.StatusForbidden,
)

var ErrJobNotPending = New(
	CodeInvalidStatus,
	"job",
	"Job post is not pending approval",
	http.StatusConflict,
)
