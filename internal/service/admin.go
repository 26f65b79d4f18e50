package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/PriyeshRaj231/online-voting-system/internal/client"
	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
	"github.com/PriyeshRaj231/online-voting-system/internal/model"
	"github.com/PriyeshRaj231/online-voting-system/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AdminService interface {
	Dashboard() (dto.Dashboard, error)
	AddCandidate(name, photoFilename string, photo []byte) (model.Candidate, error)
	DeleteCandidate(id uint) error
	ClearVotes() error
}

type adminService struct {
	candidateRepository repository.CandidateRepository
	voteRepository      repository.VoteRepository
	voterRepository     repository.VoterRepository
	votePublisher       client.VotePublisher
	photoDir            string
}

func newAdminService(repositories repository.Repositories, votePublisher client.VotePublisher, config dto.Config) AdminService {
	return &adminService{
		candidateRepository: repositories.Candidate(),
		voteRepository:      repositories.Vote(),
		voterRepository:     repositories.Voter(),
		votePublisher:       votePublisher,
		photoDir:            config.CandidatePhotoDir,
	}
}

func (s *adminService) Dashboard() (dto.Dashboard, error) {
	tallies, err := s.voteRepository.TallyByCandidate()
	if err != nil {
		return dto.Dashboard{}, err
	}

	totalVotes, err := s.voteRepository.Total()
	if err != nil {
		return dto.Dashboard{}, err
	}

	totalVoters, err := s.voterRepository.Count()
	if err != nil {
		return dto.Dashboard{}, err
	}

	return dto.Dashboard{
		Tallies:     tallies,
		TotalVotes:  totalVotes,
		TotalVoters: totalVoters,
	}, nil
}

func (s *adminService) AddCandidate(name, photoFilename string, photo []byte) (model.Candidate, error) {
	if err := os.MkdirAll(s.photoDir, 0o755); err != nil {
		return model.Candidate{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	// Client-supplied names are untrusted; keep only the extension.
	filename := uuid.NewString() + filepath.Ext(filepath.Base(photoFilename))
	photoPath := filepath.Join(s.photoDir, filename)
	if err := os.WriteFile(photoPath, photo, 0o644); err != nil {
		return model.Candidate{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	candidate, err := s.candidateRepository.Create(model.Candidate{
		Name:      name,
		PhotoPath: filepath.ToSlash(photoPath),
	})
	if err != nil {
		return model.Candidate{}, err
	}

	logrus.Infof("Added candidate %q (id %d)", candidate.Name, candidate.ID)
	return candidate, nil
}

// DeleteCandidate removes the candidate but keeps any votes already
// referencing it, matching the ledger's append-only design.
func (s *adminService) DeleteCandidate(id uint) error {
	if err := s.candidateRepository.Delete(id); err != nil {
		return err
	}

	logrus.Infof("Deleted candidate %d", id)
	return nil
}

func (s *adminService) ClearVotes() error {
	if err := s.voteRepository.Clear(); err != nil {
		return err
	}

	logrus.Info("Vote ledger cleared, all has-voted flags reset")
	if err := s.votePublisher.Publish(dto.VoteEvent{
		Type:      "ledger_cleared",
		Timestamp: time.Now().UTC(),
	}); err != nil {
		logrus.Errorf("Error publishing ledger-cleared event: %v", err)
	}

	return nil
}
