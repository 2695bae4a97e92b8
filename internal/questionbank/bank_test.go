package questionbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evhire_backend/internal/models"
)

func TestBankIsValid(t *testing.T) {
	t.Parallel()

	entries := All()
	require.NotEmpty(t, entries)
	require.NoError(t, Validate(entries))
}

func TestBankCoversEveryRoleAndStep(t *testing.T) {
	t.Parallel()

	type pool struct {
		role models.UserRole
		step int
	}
	counts := make(map[pool]int)
	for _, e := range All() {
		counts[pool{e.Role, e.Step}]++
	}

	for _, role := range []models.UserRole{models.UserRoleTechnician, models.UserRoleSales, models.UserRoleWorkshop} {
		for _, step := range []int{1, 2} {
			assert.Greater(t, counts[pool{role, step}], 0, "role %s step %d has no questions", role, step)
		}
	}
}

func TestBankEntriesHaveOneCorrectOption(t *testing.T) {
	t.Parallel()

	for i, e := range All() {
		correct := 0
		for _, opt := range e.Options {
			if opt.Correct {
				correct++
			}
		}
		assert.Equal(t, 1, correct, "entry %d (%s step %d)", i, e.Role, e.Step)
		assert.GreaterOrEqual(t, len(e.Options), 2, "entry %d", i)
	}
}

func TestValidateRejectsBrokenEntries(t *testing.T) {
	t.Parallel()

	base := Entry{
		Role: models.UserRoleTechnician,
		Step: 1,
		Text: map[string]string{"en": "q"},
		Options: []Option{
			{Text: map[string]string{"en": "a"}, Correct: true},
			{Text: map[string]string{"en": "b"}},
		},
	}

	t.Run("non-candidate role", func(t *testing.T) {
		e := base
		e.Role = models.UserRoleAdmin
		assert.Error(t, Validate([]Entry{e}))
	})

	t.Run("step out of range", func(t *testing.T) {
		e := base
		e.Step = 3
		assert.Error(t, Validate([]Entry{e}))
	})

	t.Run("missing english text", func(t *testing.T) {
		e := base
		e.Text = map[string]string{"hi": "q"}
		assert.Error(t, Validate([]Entry{e}))
	})

	t.Run("two correct options", func(t *testing.T) {
		e := base
		e.Options = []Option{
			{Text: map[string]string{"en": "a"}, Correct: true},
			{Text: map[string]string{"en": "b"}, Correct: true},
		}
		assert.Error(t, Validate([]Entry{e}))
	})

	t.Run("valid entry passes", func(t *testing.T) {
		assert.NoError(t, Validate([]Entry{base}))
	})
}
