package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	env := newTestEnv(t, markerExtractor{})
	voter, sessionID := openVerifiedSession(t, env)
	_, err := env.services.Voting().SubmitVote(context.Background(), sessionID, voter, 1)
	require.NoError(t, err)

	dashboard, err := env.services.Admin().Dashboard()
	require.NoError(t, err)
	assert.EqualValues(t, 1, dashboard.TotalVotes)
	assert.EqualValues(t, 1, dashboard.TotalVoters)
	assert.Len(t, dashboard.Tallies, 3)
}

func TestAddCandidate(t *testing.T) {
	t.Run("stores the photo and the row", func(t *testing.T) {
		env := newTestEnv(t, markerExtractor{})

		candidate, err := env.services.Admin().AddCandidate("New Person", "portrait.jpg", []byte("jpeg-bytes"))
		require.NoError(t, err)
		require.NotZero(t, candidate.ID)
		assert.True(t, strings.HasSuffix(candidate.PhotoPath, ".jpg"))

		stored, err := os.ReadFile(filepath.FromSlash(candidate.PhotoPath))
		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg-bytes"), stored)

		candidates, err := env.services.Voting().Candidates()
		require.NoError(t, err)
		assert.Len(t, candidates, 4)
	})

	t.Run("ignores a path-traversal upload name", func(t *testing.T) {
		env := newTestEnv(t, markerExtractor{})

		candidate, err := env.services.Admin().AddCandidate("Sneaky", "../../../../etc/passwd.png", []byte("x"))
		require.NoError(t, err)

		dir := filepath.Dir(filepath.FromSlash(candidate.PhotoPath))
		assert.Equal(t, filepath.Clean(env.cfg.CandidatePhotoDir), filepath.Clean(dir))
		assert.True(t, strings.HasSuffix(candidate.PhotoPath, ".png"))
	})
}

func TestDeleteCandidate(t *testing.T) {
	env := newTestEnv(t, markerExtractor{})

	candidates, err := env.services.Voting().Candidates()
	require.NoError(t, err)
	require.NoError(t, env.services.Admin().DeleteCandidate(candidates[0].ID))

	remaining, err := env.services.Voting().Candidates()
	require.NoError(t, err)
	assert.Len(t, remaining, 2)

	assert.ErrorIs(t, env.services.Admin().DeleteCandidate(9999), dto.ErrNotFound)
}

func TestClearVotes(t *testing.T) {
	env := newTestEnv(t, markerExtractor{})
	ctx := context.Background()

	voter, sessionID := openVerifiedSession(t, env)
	_, err := env.services.Voting().SubmitVote(ctx, sessionID, voter, 1)
	require.NoError(t, err)

	require.NoError(t, env.services.Admin().ClearVotes())

	dashboard, err := env.services.Admin().Dashboard()
	require.NoError(t, err)
	assert.Zero(t, dashboard.TotalVotes)
	for _, tally := range dashboard.Tallies {
		assert.Zero(t, tally.Votes)
	}

	// Voters are re-enabled: a fresh verified session can vote again.
	reloaded, newSession := openVerifiedSession(t, env)
	assert.False(t, reloaded.HasVoted)
	_, err = env.services.Voting().SubmitVote(ctx, newSession, reloaded, 2)
	assert.NoError(t, err)
}
