package repository

import (
	"testing"

	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
	"github.com/PriyeshRaj231/online-voting-system/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateRepository(t *testing.T) {
	t.Run("create appends to the ballot", func(t *testing.T) {
		repos := NewRepositories(newTestDB(t))

		created, err := repos.Candidate().Create(model.Candidate{
			Name:      "New Candidate",
			PhotoPath: "static/candidates/new.jpg",
		})
		require.NoError(t, err)
		require.NotZero(t, created.ID)

		candidates, err := repos.Candidate().GetAll()
		require.NoError(t, err)
		assert.Len(t, candidates, 4)
		assert.Equal(t, "New Candidate", candidates[3].Name)
	})

	t.Run("delete removes only the candidate row", func(t *testing.T) {
		repos := NewRepositories(newTestDB(t))
		voterRow := createVoter(t, repos, "alice")

		candidates, err := repos.Candidate().GetAll()
		require.NoError(t, err)
		target := candidates[0]

		_, err = repos.Vote().Record(model.Vote{VoterID: voterRow.ID, CandidateID: target.ID})
		require.NoError(t, err)

		require.NoError(t, repos.Candidate().Delete(target.ID))

		_, err = repos.Candidate().GetByID(target.ID)
		assert.ErrorIs(t, err, dto.ErrNotFound)

		// The vote stays in the ledger; the voter does not regain a vote.
		total, err := repos.Vote().Total()
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)

		tallies, err := repos.Vote().TallyByCandidate()
		require.NoError(t, err)
		assert.Len(t, tallies, 2)
	})

	t.Run("deleting a missing candidate is not found", func(t *testing.T) {
		repos := NewRepositories(newTestDB(t))
		assert.ErrorIs(t, repos.Candidate().Delete(9999), dto.ErrNotFound)
	})
}
