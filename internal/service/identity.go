package service

import (
	"context"
	"fmt"
	"time"

	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
	"github.com/PriyeshRaj231/online-voting-system/internal/face"
	"github.com/PriyeshRaj231/online-voting-system/internal/model"
	"github.com/sirupsen/logrus"
)

// IdentityService is the facial identity gate. Enroll produces the
// embedding stored at registration; VerifyVoter decides whether a fresh
// capture belongs to the logged-in voter and, on acceptance, arms the
// session's one-shot vote pass.
type IdentityService interface {
	Enroll(ctx context.Context, photo []byte) (face.Embedding, error)
	BeginSession(sessionID string)
	VerifyVoter(ctx context.Context, sessionID string, voter model.Voter, photo []byte) error
	GateState(sessionID string) face.GateState
	ConsumeVotePass(sessionID string) bool
	EndSession(sessionID string)
}

type identityService struct {
	quality   face.QualityChecker
	extractor face.Extractor
	verifier  face.Verifier
	gates     *face.GateStore
	timeout   time.Duration
}

func newIdentityService(quality face.QualityChecker, extractor face.Extractor, config dto.Config) IdentityService {
	return &identityService{
		quality:   quality,
		extractor: extractor,
		verifier:  face.NewVerifier(),
		gates:     face.NewGateStore(),
		timeout:   config.ExtractionTimeout,
	}
}

func (s *identityService) Enroll(ctx context.Context, photo []byte) (face.Embedding, error) {
	score, err := s.quality.Check(photo)
	if err != nil {
		return face.Embedding{}, err
	}
	logrus.Debugf("Enrollment capture sharpness %.2f", score)

	return s.extract(ctx, photo)
}

func (s *identityService) BeginSession(sessionID string) {
	s.gates.Begin(sessionID)
}

// VerifyVoter runs capture → extract → compare for one session. Any
// failure returns the gate to AwaitingCapture; the voter may retry
// without limit. The quality filter is not applied here: a blurry
// verification capture fails extraction or comparison on its own, and
// unlike at enrollment nothing durable is at stake.
func (s *identityService) VerifyVoter(ctx context.Context, sessionID string, voter model.Voter, photo []byte) error {
	s.gates.Advance(sessionID, face.GateExtracting)

	if len(voter.FaceEmbedding) == 0 {
		s.gates.Reject(sessionID)
		// Data-integrity gap, not a user error: registration should
		// have stored an embedding. Needs administrative remediation.
		logrus.Errorf("Voter %d has no enrolled face data", voter.ID)
		return fmt.Errorf("%w: voter %d", dto.ErrNoEnrollment, voter.ID)
	}

	stored, err := face.DecodeEmbedding(voter.FaceEmbedding)
	if err != nil {
		s.gates.Reject(sessionID)
		logrus.Errorf("Voter %d has a corrupt enrolled embedding: %v", voter.ID, err)
		return err
	}

	fresh, err := s.extract(ctx, photo)
	if err != nil {
		s.gates.Reject(sessionID)
		return err
	}

	s.gates.Advance(sessionID, face.GateComparing)
	distance, err := s.verifier.Verify(stored, fresh)
	if err != nil {
		s.gates.Reject(sessionID)
		logrus.Infof("Verification rejected for voter %d (distance %.3f)", voter.ID, distance)
		return err
	}

	s.gates.Accept(sessionID)
	logrus.Infof("Verification accepted for voter %d (distance %.3f)", voter.ID, distance)
	return nil
}

func (s *identityService) GateState(sessionID string) face.GateState {
	state, _ := s.gates.State(sessionID)
	return state
}

func (s *identityService) ConsumeVotePass(sessionID string) bool {
	return s.gates.ConsumeVotePass(sessionID)
}

func (s *identityService) EndSession(sessionID string) {
	s.gates.Drop(sessionID)
}

// extract bounds the extractor call with a deadline. dlib cannot be
// interrupted mid-inference, so on timeout the goroutine is left to
// finish and its result discarded.
func (s *identityService) extract(ctx context.Context, photo []byte) (face.Embedding, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type extraction struct {
		embedding face.Embedding
		err       error
	}
	done := make(chan extraction, 1)

	go func() {
		embedding, err := s.extractor.Extract(photo)
		done <- extraction{embedding: embedding, err: err}
	}()

	select {
	case result := <-done:
		return result.embedding, result.err
	case <-ctx.Done():
		return face.Embedding{}, fmt.Errorf("%w: %v", dto.ErrExtractionTimeout, ctx.Err())
	}
}
