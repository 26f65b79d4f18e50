package repository

import (
	"github.com/PriyeshRaj231/online-voting-system/internal/model"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Repositories interface {
	Voter() VoterRepository
	Candidate() CandidateRepository
	Vote() VoteRepository
	Admin() AdminRepository
}

type repositories struct {
	voterRepository     VoterRepository
	candidateRepository CandidateRepository
	voteRepository      VoteRepository
	adminRepository     AdminRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	err := db.AutoMigrate(&model.Voter{}, &model.Candidate{}, &model.Vote{}, &model.Admin{})
	if err != nil {
		logrus.Panic(err)
	}

	adminRepository := newAdminRepository(db)
	candidateRepository := newCandidateRepository(db)
	seed(db)

	return &repositories{
		voterRepository:     newVoterRepository(db),
		candidateRepository: candidateRepository,
		voteRepository:      newVoteRepository(db),
		adminRepository:     adminRepository,
	}
}

// seed inserts the default admin account and sample candidates on the
// first start against an empty database.
func seed(db *gorm.DB) {
	var adminCount int64
	if err := db.Model(&model.Admin{}).Count(&adminCount).Error; err != nil {
		logrus.Panic(err)
	}
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			logrus.Panic(err)
		}
		if err := db.Create(&model.Admin{Username: "admin", PasswordHash: string(hash)}).Error; err != nil {
			logrus.Panic(err)
		}
		logrus.Info("Seeded default admin account")
	}

	var candidateCount int64
	if err := db.Model(&model.Candidate{}).Count(&candidateCount).Error; err != nil {
		logrus.Panic(err)
	}
	if candidateCount == 0 {
		candidates := []model.Candidate{
			{Name: "John Doe", PhotoPath: "static/candidates/john_doe.jpg"},
			{Name: "Jane Smith", PhotoPath: "static/candidates/jane_smith.jpg"},
			{Name: "Mike Johnson", PhotoPath: "static/candidates/mike_johnson.jpg"},
		}
		if err := db.Create(&candidates).Error; err != nil {
			logrus.Panic(err)
		}
		logrus.Infof("Seeded %d sample candidates", len(candidates))
	}
}

func (r repositories) Voter() VoterRepository {
	return r.voterRepository
}

func (r repositories) Candidate() CandidateRepository {
	return r.candidateRepository
}

func (r repositories) Vote() VoteRepository {
	return r.voteRepository
}

func (r repositories) Admin() AdminRepository {
	return r.adminRepository
}
