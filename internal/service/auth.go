package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
	"github.com/PriyeshRaj231/online-voting-system/internal/model"
	"github.com/PriyeshRaj231/online-voting-system/internal/repository"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const sessionLifetime = 24 * time.Hour

type RegisterVoterInput struct {
	Name     string
	Username string
	Password string
	Photo    []byte
}

type AuthService interface {
	RegisterVoter(ctx context.Context, input RegisterVoterInput) (model.Voter, error)
	LoginVoter(ctx context.Context, username, password string) (model.Voter, string, error)
	ValidateVoterToken(token string) (model.Voter, string, error)
	LoginAdmin(ctx context.Context, username, password string) (model.Admin, string, error)
	ValidateAdminToken(token string) (model.Admin, error)
	Logout(sessionID string)
}

type authService struct {
	voterRepository repository.VoterRepository
	adminRepository repository.AdminRepository
	identityService IdentityService
	secret          []byte
}

func newAuthService(voterRepository repository.VoterRepository, adminRepository repository.AdminRepository, identityService IdentityService, config dto.Config) AuthService {
	return &authService{
		voterRepository: voterRepository,
		adminRepository: adminRepository,
		identityService: identityService,
		secret:          []byte(config.SessionSecret),
	}
}

type voterClaims struct {
	VoterID   uint   `json:"voter_id"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type adminClaims struct {
	AdminID uint `json:"admin_id"`
	jwt.RegisteredClaims
}

// RegisterVoter runs the enrollment half of the identity gate before
// touching the database: quality filter, then embedding extraction.
// Nothing is persisted unless both pass, so a rejected capture leaves
// no voter row behind.
func (a *authService) RegisterVoter(ctx context.Context, input RegisterVoterInput) (model.Voter, error) {
	embedding, err := a.identityService.Enroll(ctx, input.Photo)
	if err != nil {
		return model.Voter{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.Voter{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	voter, err := a.voterRepository.Create(model.Voter{
		Name:          input.Name,
		Username:      input.Username,
		PasswordHash:  string(hash),
		FaceEmbedding: embedding.Encode(),
	})
	if err != nil {
		return model.Voter{}, err
	}

	logrus.Infof("Registered voter %q (id %d)", voter.Username, voter.ID)
	return voter, nil
}

// LoginVoter checks the password credential and opens a fresh session:
// a signed cookie token plus a verification gate in AwaitingCapture.
func (a *authService) LoginVoter(ctx context.Context, username, password string) (model.Voter, string, error) {
	voter, err := a.voterRepository.GetByUsername(username)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			return model.Voter{}, "", fmt.Errorf("%w: invalid username or password", dto.ErrNotAuthorized)
		}
		return model.Voter{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(voter.PasswordHash), []byte(password)); err != nil {
		return model.Voter{}, "", fmt.Errorf("%w: invalid username or password", dto.ErrNotAuthorized)
	}

	sessionID := uuid.NewString()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, voterClaims{
		VoterID:   voter.ID,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionLifetime)),
		},
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return model.Voter{}, "", fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	a.identityService.BeginSession(sessionID)
	logrus.Infof("Voter %q logged in, session %s", voter.Username, sessionID)

	return voter, signed, nil
}

// ValidateVoterToken returns the voter and session ID carried by a
// session token. The voter row is reloaded so the caller sees the
// current has-voted flag and embedding, not the state at login time.
func (a *authService) ValidateVoterToken(token string) (model.Voter, string, error) {
	var claims voterClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid {
		return model.Voter{}, "", fmt.Errorf("%w: invalid session token", dto.ErrNotAuthorized)
	}

	voter, err := a.voterRepository.GetByID(claims.VoterID)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			return model.Voter{}, "", fmt.Errorf("%w: voter no longer exists", dto.ErrNotAuthorized)
		}
		return model.Voter{}, "", err
	}

	return voter, claims.SessionID, nil
}

func (a *authService) LoginAdmin(ctx context.Context, username, password string) (model.Admin, string, error) {
	admin, err := a.adminRepository.GetByUsername(username)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			return model.Admin{}, "", fmt.Errorf("%w: invalid admin credentials", dto.ErrNotAuthorized)
		}
		return model.Admin{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return model.Admin{}, "", fmt.Errorf("%w: invalid admin credentials", dto.ErrNotAuthorized)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, adminClaims{
		AdminID: admin.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionLifetime)),
		},
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return model.Admin{}, "", fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	logrus.Infof("Admin %q logged in", admin.Username)
	return admin, signed, nil
}

func (a *authService) ValidateAdminToken(token string) (model.Admin, error) {
	var claims adminClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid {
		return model.Admin{}, fmt.Errorf("%w: invalid admin session token", dto.ErrNotAuthorized)
	}

	admin, err := a.adminRepository.GetByID(claims.AdminID)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			return model.Admin{}, fmt.Errorf("%w: admin no longer exists", dto.ErrNotAuthorized)
		}
		return model.Admin{}, err
	}

	return admin, nil
}

func (a *authService) Logout(sessionID string) {
	a.identityService.EndSession(sessionID)
}
