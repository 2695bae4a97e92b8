package verification

// GradedQuestion is the server-side view of one issued question: the stored
// correct option index and its point weight. Nothing here is ever sent to
// the client.
type GradedQuestion struct {
	QuestionID    uint
	CorrectOption int
	Points        int
}

// Answer is one (question, selected option) pair from a submission.
type Answer struct {
	QuestionID     uint
	SelectedOption int
}

// Result of grading a submission server-side.
type Result struct {
	Score          int
	TotalPoints    int
	TotalQuestions int
	CorrectCount   int
	Percent        int
	Passed         bool
}

// Evaluate re-grades a submission against the issued question set. Scores
// are points-weighted; unanswered questions count as wrong; answers for
// questions outside the set are ignored (the session binding is checked
// before grading). passPercent is the 0-100 threshold.
func Evaluate(questions []GradedQuestion, answers []Answer, passPercent int) Result {
	selected := make(map[uint]int, len(answers))
	for _, a := range answers {
		selected[a.QuestionID] = a.SelectedOption
	}

	res := Result{TotalQuestions: len(questions)}
	for _, q := range questions {
		points := q.Points
		if points <= 0 {
			points = 1
		}
		res.TotalPoints += points

		opt, answered := selected[q.QuestionID]
		if answered && opt == q.CorrectOption {
			res.Score += points
			res.CorrectCount++
		}
	}

	if res.TotalPoints > 0 {
		res.Percent = res.Score * 100 / res.TotalPoints
	}
	res.Passed = res.TotalPoints > 0 && res.Percent >= passPercent
	return res
}
