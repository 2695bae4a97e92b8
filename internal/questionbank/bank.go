// Package questionbank is the single canonical source of the multilingual
// verification question data, keyed by (role, step, locale). The historical
// data lived in several near-duplicate static tables; everything loads from
// here exactly once.
package questionbank

import (
	"fmt"

	"evhire_backend/internal/models"
)

// Option is one answer option in the canonical data.
type Option struct {
	Text    map[string]string
	Correct bool
}

// Entry is one canonical question. Domain, VehicleCategory and TrainingRole
// are optional pool filters; empty means the question applies to any value.
type Entry struct {
	Role            models.UserRole
	Step            int
	Domain          string
	VehicleCategory string
	TrainingRole    string
	Text            map[string]string
	Options         []Option
	Difficulty      int
	Points          int
}

// All returns the full canonical bank.
func All() []Entry {
	var entries []Entry
	entries = append(entries, technicianQuestions()...)
	entries = append(entries, salesQuestions()...)
	entries = append(entries, workshopQuestions()...)
	return entries
}

// Validate checks the bank invariants: every entry belongs to a candidate
// role and step 1 or 2, carries an English text, and has exactly one correct
// option with texts for every locale the question itself declares.
func Validate(entries []Entry) error {
	for i, e := range entries {
		if !models.IsCandidateRole(e.Role) {
			return fmt.Errorf("entry %d: role %q is not a candidate role", i, e.Role)
		}
		if e.Step != 1 && e.Step != 2 {
			return fmt.Errorf("entry %d: step %d is outside the quiz stages", i, e.Step)
		}
		if e.Text["en"] == "" {
			return fmt.Errorf("entry %d: missing English question text", i)
		}
		if len(e.Options) < 2 {
			return fmt.Errorf("entry %d: needs at least two options", i)
		}

		correct := 0
		for j, opt := range e.Options {
			if opt.Correct {
				correct++
			}
			for locale := range e.Text {
				if opt.Text[locale] == "" {
					return fmt.Errorf("entry %d option %d: missing %q text", i, j, locale)
				}
			}
		}
		if correct != 1 {
			return fmt.Errorf("entry %d: expected exactly one correct option, got %d", i, correct)
		}
	}
	return nil
}
