package service

import (
	"context"
	"fmt"
	"time"

	"github.com/PriyeshRaj231/online-voting-system/internal/client"
	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
	"github.com/PriyeshRaj231/online-voting-system/internal/model"
	"github.com/PriyeshRaj231/online-voting-system/internal/repository"
	"github.com/sirupsen/logrus"
)

type VotingService interface {
	Candidates() ([]model.Candidate, error)
	HasVoted(voterID uint) (bool, error)
	SubmitVote(ctx context.Context, sessionID string, voter model.Voter, candidateID uint) (model.Vote, error)
	Results() (dto.Results, error)
}

type votingService struct {
	voteRepository      repository.VoteRepository
	candidateRepository repository.CandidateRepository
	identityService     IdentityService
	votePublisher       client.VotePublisher
}

func newVotingService(voteRepository repository.VoteRepository, candidateRepository repository.CandidateRepository, identityService IdentityService, votePublisher client.VotePublisher) VotingService {
	return &votingService{
		voteRepository:      voteRepository,
		candidateRepository: candidateRepository,
		identityService:     identityService,
		votePublisher:       votePublisher,
	}
}

func (s *votingService) Candidates() ([]model.Candidate, error) {
	return s.candidateRepository.GetAll()
}

func (s *votingService) HasVoted(voterID uint) (bool, error) {
	return s.voteRepository.HasVoted(voterID)
}

// SubmitVote spends the session's vote pass and records the vote. The
// pass is consumed whether or not the ledger accepts, so a session can
// never retry its way past the one-vote rule, and the ledger's unique
// constraint backstops concurrent submissions from separate sessions.
func (s *votingService) SubmitVote(ctx context.Context, sessionID string, voter model.Voter, candidateID uint) (model.Vote, error) {
	if !s.identityService.ConsumeVotePass(sessionID) {
		return model.Vote{}, fmt.Errorf("%w: facial verification required before voting", dto.ErrNotAuthorized)
	}

	if voter.HasVoted {
		return model.Vote{}, fmt.Errorf("%w: voter %d", dto.ErrAlreadyVoted, voter.ID)
	}

	if _, err := s.candidateRepository.GetByID(candidateID); err != nil {
		return model.Vote{}, err
	}

	vote, err := s.voteRepository.Record(model.Vote{
		VoterID:     voter.ID,
		CandidateID: candidateID,
	})
	if err != nil {
		return model.Vote{}, err
	}

	logrus.Infof("Voter %d voted for candidate %d", voter.ID, candidateID)
	s.publish(dto.VoteEvent{
		Type:        "vote_recorded",
		VoterID:     voter.ID,
		CandidateID: candidateID,
		Timestamp:   time.Now().UTC(),
	})

	return vote, nil
}

func (s *votingService) Results() (dto.Results, error) {
	tallies, err := s.voteRepository.TallyByCandidate()
	if err != nil {
		return dto.Results{}, err
	}

	total, err := s.voteRepository.Total()
	if err != nil {
		return dto.Results{}, err
	}

	return dto.Results{Tallies: tallies, TotalVotes: total}, nil
}

func (s *votingService) publish(event dto.VoteEvent) {
	if err := s.votePublisher.Publish(event); err != nil {
		logrus.Errorf("Error publishing vote event: %v", err)
	}
}
