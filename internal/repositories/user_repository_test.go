package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// City search is a case-insensitive substring match, so "delhi" has to reach
// the database as an ILIKE pattern that matches "New Delhi".
func TestSearchCandidates_CitySubstring(t *testing.T) {
	var captured []capturedStmt
	db := newDryRunDB(t, &captured)
	repo := NewUserRepository()

	_, err := repo.SearchCandidates(db, CandidateFilter{City: "delhi"})
	require.NoError(t, err)
	require.Len(t, captured, 1)

	assert.Contains(t, captured[0].SQL, "city ILIKE")
	assert.Contains(t, captured[0].Vars, "%delhi%")
}

func TestSearchCandidates_Ordering(t *testing.T) {
	var captured []capturedStmt
	db := newDryRunDB(t, &captured)
	repo := NewUserRepository()

	_, err := repo.SearchCandidates(db, CandidateFilter{Domain: "2W"})
	require.NoError(t, err)
	require.Len(t, captured, 1)

	// Scored candidates first, unscored last, recent profiles before stale
	// ones within the same score.
	assert.Contains(t, captured[0].SQL, "quiz_score DESC NULLS LAST")
	assert.Contains(t, captured[0].SQL, "created_at DESC")
	assert.Contains(t, captured[0].Vars, "2W")
}
