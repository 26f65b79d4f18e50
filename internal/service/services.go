package service

import (
	"github.com/PriyeshRaj231/online-voting-system/internal/client"
	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
	"github.com/PriyeshRaj231/online-voting-system/internal/face"
	"github.com/PriyeshRaj231/online-voting-system/internal/repository"
)

type Services interface {
	Auth() AuthService
	Identity() IdentityService
	Voting() VotingService
	Admin() AdminService
}

type services struct {
	authService     AuthService
	identityService IdentityService
	votingService   VotingService
	adminService    AdminService
}

func NewServices(repositories repository.Repositories, config dto.Config, clients client.Clients, quality face.QualityChecker, extractor face.Extractor) Services {
	identityService := newIdentityService(quality, extractor, config)
	return &services{
		authService:     newAuthService(repositories.Voter(), repositories.Admin(), identityService, config),
		identityService: identityService,
		votingService:   newVotingService(repositories.Vote(), repositories.Candidate(), identityService, clients.VotePublisher()),
		adminService:    newAdminService(repositories, clients.VotePublisher(), config),
	}
}

func (s services) Auth() AuthService {
	return s.authService
}

func (s services) Identity() IdentityService {
	return s.identityService
}

func (s services) Voting() VotingService {
	return s.votingService
}

func (s services) Admin() AdminService {
	return s.adminService
}
