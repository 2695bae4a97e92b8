package verification

import (
	"evhire_backend/internal/models"
)

// transitions is the exhaustive table of allowed pipeline moves. Anything
// outside it is rejected at write time; callers can no longer push arbitrary
// status strings into the store.
var transitions = map[models.VerificationStatus][]models.VerificationStatus{
	models.VerificationPending:        {models.VerificationStep2Completed, models.VerificationRejected},
	models.VerificationStep2Completed: {models.VerificationStep3Pending, models.VerificationRejected},
	models.VerificationStep3Pending:   {models.VerificationVerified, models.VerificationRejected},
	models.VerificationVerified:       {},
	models.VerificationRejected:       {},
}

// CanTransition reports whether the pipeline allows moving from one status to
// another. A no-op transition (same status) is always allowed; it keeps
// repeated quiz submissions and admin retries idempotent.
func CanTransition(from, to models.VerificationStatus) bool {
	if from == to {
		return true
	}
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CanAdminOverride reports whether an admin may force the given terminal
// decision. Admins may settle any non-terminal state directly, skipping
// intermediate quiz stages; terminal states stay settled.
func CanAdminOverride(from, to models.VerificationStatus) bool {
	if !to.IsTerminal() {
		return false
	}
	if from == to {
		return true
	}
	return !from.IsTerminal()
}

// QuizOutcome is the status/step proposal the evaluator derives from a
// graded submission.
type QuizOutcome struct {
	Status models.VerificationStatus
	Step   int
	// Advanced is false when the quiz was failed or the user sits past the
	// quiz stages; the score is still recorded either way.
	Advanced bool
}

// NextAfterQuiz maps a quiz result onto the pipeline. Steps 1 and 2 carry
// quizzes; step 3 is the manual admin review and never advances here.
func NextAfterQuiz(current models.VerificationStatus, currentStep int, passed bool) QuizOutcome {
	unchanged := QuizOutcome{Status: current, Step: currentStep}

	if !passed || current.IsTerminal() {
		return unchanged
	}

	switch current {
	case models.VerificationPending:
		return QuizOutcome{Status: models.VerificationStep2Completed, Step: 2, Advanced: true}
	case models.VerificationStep2Completed:
		return QuizOutcome{Status: models.VerificationStep3Pending, Step: 3, Advanced: true}
	default:
		return unchanged
	}
}
