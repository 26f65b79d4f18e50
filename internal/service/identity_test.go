package service

import (
	"context"
	"testing"
	"time"

	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
	"github.com/PriyeshRaj231/online-voting-system/internal/face"
	"github.com/PriyeshRaj231/online-voting-system/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatedIdentity(t *testing.T, extractor face.Extractor, timeout time.Duration) IdentityService {
	t.Helper()
	return newIdentityService(markerQuality{}, extractor, dto.Config{ExtractionTimeout: timeout})
}

func enrolledVoter(t *testing.T, identity IdentityService, photo []byte) model.Voter {
	t.Helper()
	embedding, err := identity.Enroll(context.Background(), photo)
	require.NoError(t, err)
	return model.Voter{ID: 1, Username: "alice", FaceEmbedding: embedding.Encode()}
}

func TestVerifyVoter(t *testing.T) {
	ctx := context.Background()

	t.Run("matching capture accepts and arms the pass", func(t *testing.T) {
		identity := gatedIdentity(t, markerExtractor{}, time.Second)
		voter := enrolledVoter(t, identity, alicePhoto)

		identity.BeginSession("s1")
		require.NoError(t, identity.VerifyVoter(ctx, "s1", voter, alicePhoto))

		assert.Equal(t, face.GateAccepted, identity.GateState("s1"))
		assert.True(t, identity.ConsumeVotePass("s1"))
		assert.False(t, identity.ConsumeVotePass("s1"))
	})

	t.Run("different person is rejected", func(t *testing.T) {
		identity := gatedIdentity(t, markerExtractor{}, time.Second)
		voter := enrolledVoter(t, identity, alicePhoto)

		identity.BeginSession("s1")
		err := identity.VerifyVoter(ctx, "s1", voter, malloryPhoto)
		require.ErrorIs(t, err, dto.ErrFaceMismatch)

		assert.Equal(t, face.GateAwaitingCapture, identity.GateState("s1"))
		assert.False(t, identity.ConsumeVotePass("s1"))
	})

	t.Run("rejection allows an unlimited retry", func(t *testing.T) {
		identity := gatedIdentity(t, markerExtractor{}, time.Second)
		voter := enrolledVoter(t, identity, alicePhoto)

		identity.BeginSession("s1")
		require.ErrorIs(t, identity.VerifyVoter(ctx, "s1", voter, malloryPhoto), dto.ErrFaceMismatch)
		require.ErrorIs(t, identity.VerifyVoter(ctx, "s1", voter, []byte("noface:x")), dto.ErrNoFace)
		require.NoError(t, identity.VerifyVoter(ctx, "s1", voter, alicePhoto))

		assert.True(t, identity.ConsumeVotePass("s1"))
	})

	t.Run("voter without enrolled data is rejected", func(t *testing.T) {
		identity := gatedIdentity(t, markerExtractor{}, time.Second)
		voter := model.Voter{ID: 2, Username: "ghost"}

		identity.BeginSession("s1")
		err := identity.VerifyVoter(ctx, "s1", voter, alicePhoto)
		require.ErrorIs(t, err, dto.ErrNoEnrollment)
		assert.Equal(t, face.GateAwaitingCapture, identity.GateState("s1"))
	})

	t.Run("corrupt enrolled data is rejected", func(t *testing.T) {
		identity := gatedIdentity(t, markerExtractor{}, time.Second)
		voter := model.Voter{ID: 3, Username: "corrupt", FaceEmbedding: []byte{1, 2, 3}}

		identity.BeginSession("s1")
		err := identity.VerifyVoter(ctx, "s1", voter, alicePhoto)
		require.ErrorIs(t, err, dto.ErrNoEnrollment)
		assert.False(t, identity.ConsumeVotePass("s1"))
	})

	t.Run("slow extraction times out", func(t *testing.T) {
		identity := gatedIdentity(t, slowExtractor{delay: 200 * time.Millisecond}, 20*time.Millisecond)
		var enrolled face.Embedding
		voter := model.Voter{ID: 4, Username: "slow", FaceEmbedding: enrolled.Encode()}

		identity.BeginSession("s1")
		err := identity.VerifyVoter(ctx, "s1", voter, alicePhoto)
		require.ErrorIs(t, err, dto.ErrExtractionTimeout)
		assert.Equal(t, face.GateAwaitingCapture, identity.GateState("s1"))
	})

	t.Run("caller cancellation cuts extraction short", func(t *testing.T) {
		identity := gatedIdentity(t, slowExtractor{delay: 200 * time.Millisecond}, time.Second)
		var enrolled face.Embedding
		voter := model.Voter{ID: 5, Username: "gone", FaceEmbedding: enrolled.Encode()}

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		identity.BeginSession("s1")
		err := identity.VerifyVoter(cancelled, "s1", voter, alicePhoto)
		assert.ErrorIs(t, err, dto.ErrExtractionTimeout)
	})
}

func TestEnroll(t *testing.T) {
	ctx := context.Background()

	t.Run("quality filter runs before extraction", func(t *testing.T) {
		identity := gatedIdentity(t, markerExtractor{}, time.Second)

		// A blurry marker would also trip the no-face path if extraction
		// ran first; the blur error proves ordering.
		_, err := identity.Enroll(ctx, []byte("blurry:noface:x"))
		assert.ErrorIs(t, err, dto.ErrTooBlurry)
	})

	t.Run("embedding round-trips through storage encoding", func(t *testing.T) {
		identity := gatedIdentity(t, markerExtractor{}, time.Second)

		embedding, err := identity.Enroll(ctx, alicePhoto)
		require.NoError(t, err)

		decoded, err := face.DecodeEmbedding(embedding.Encode())
		require.NoError(t, err)
		assert.Zero(t, face.Distance(embedding, decoded))
	})

	t.Run("slow extraction times out", func(t *testing.T) {
		identity := gatedIdentity(t, slowExtractor{delay: 200 * time.Millisecond}, 20*time.Millisecond)

		_, err := identity.Enroll(ctx, alicePhoto)
		assert.ErrorIs(t, err, dto.ErrExtractionTimeout)
	})
}
