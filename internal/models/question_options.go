package models

import "encoding/json"

// QuestionOption is the stored shape of one answer option. Text maps
// locale code ("en", "hi", ...) to the option text.
type QuestionOption struct {
	Text      map[string]string `json:"text"`
	IsCorrect bool              `json:"isCorrect"`
}

// LocalizedText is the stored shape of the question text column.
type LocalizedText map[string]string

// DecodeText unmarshals the per-locale question text.
func (q *VerificationQuestion) DecodeText() (LocalizedText, error) {
	var text LocalizedText
	if err := json.Unmarshal(q.Text, &text); err != nil {
		return nil, err
	}
	return text, nil
}

// DecodeOptions unmarshals the ordered option list.
func (q *VerificationQuestion) DecodeOptions() ([]QuestionOption, error) {
	var options []QuestionOption
	if err := json.Unmarshal(q.Options, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// CorrectOptionIndex returns the index of the option marked correct.
// ok is false when the stored row violates the exactly-one-correct invariant.
func (q *VerificationQuestion) CorrectOptionIndex() (int, bool) {
	options, err := q.DecodeOptions()
	if err != nil {
		return 0, false
	}

	idx := -1
	for i, opt := range options {
		if !opt.IsCorrect {
			continue
		}
		if idx >= 0 {
			return 0, false
		}
		idx = i
	}
	if idx < 0 {
		return 0, false
	}
	return idx, true
}
