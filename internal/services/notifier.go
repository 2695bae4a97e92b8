package services

import (
	"context"
	"fmt"
	"time"

	"evhire_backend/internal/email"
	"evhire_backend/internal/logger"
	"evhire_backend/internal/models"
)

// DecisionNotifier emails users and recruiters about moderation decisions.
// Delivery runs in a goroutine and never blocks or fails the decision
// itself; accounts without an email address are skipped.
type DecisionNotifier struct {
	provider email.Provider
}

func NewDecisionNotifier(provider email.Provider) *DecisionNotifier {
	return &DecisionNotifier{provider: provider}
}

// JobDecided notifies the recruiter that a post was approved or rejected.
func (n *DecisionNotifier) JobDecided(job *models.JobPost, decision models.JobStatus) {
	if job.Recruiter == nil || job.Recruiter.Email == "" {
		return
	}

	to := job.Recruiter.Email
	subject := fmt.Sprintf("Your job post %q was %s", job.Title, decision)
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your job post <b>%s</b> has been <b>%s</b> by our moderation team.</p>",
		job.Recruiter.CompanyName, job.Title, decision,
	)
	n.send(to, subject, body)
}

// VerificationDecided notifies a candidate about the final verification
// outcome.
func (n *DecisionNotifier) VerificationDecided(user *models.User, status models.VerificationStatus) {
	if user.Email == "" {
		return
	}

	var subject, body string
	switch status {
	case models.VerificationVerified:
		subject = "You are now a verified candidate"
		body = fmt.Sprintf("<p>Hello %s,</p><p>Congratulations, your profile passed verification.</p>", user.Name)
	case models.VerificationRejected:
		subject = "Verification decision on your profile"
		body = fmt.Sprintf("<p>Hello %s,</p><p>Unfortunately your profile did not pass verification.</p>", user.Name)
	default:
		return
	}
	n.send(user.Email, subject, body)
}

func (n *DecisionNotifier) send(to, subject, body string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := n.provider.Send(ctx, to, subject, body); err != nil {
			logger.WithError(err).Warn("notification email failed", "to", to, "subject", subject)
		}
	}()
}
