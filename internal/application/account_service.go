package application

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/stocknest/backend/internal/domain/entity"
	repo "github.com/stocknest/backend/internal/domain/repository"
	"github.com/stocknest/backend/pkg/helpers"
)

// ErrWrongPassword means the identifier exists but the password does not
// match. Callers must keep it distinct from repository.ErrNotFound: an
// unknown identifier is "please register", not "bad credentials".
var ErrWrongPassword = errors.New("wrong password")

// ErrInvalidToken means a refresh token failed verification or no longer
// matches a live session. Store failures are returned as-is so callers can
// report them as server errors rather than rejected credentials.
var ErrInvalidToken = errors.New("invalid token")

const sessionTTL = 24 * time.Hour

func sessionKey(userID int64) string {
	return "user:session:" + strconv.FormatInt(userID, 10)
}

// AccountService implements registration and authentication over the
// credential store.
type AccountService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewAccountService(r repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger) *AccountService {
	return &AccountService{Repo: r, JWT: jwt, Redis: rdb, Logger: logger}
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

// Register hashes the password and inserts a new credential record.
// repository.ErrConflict is passed through when username or email is taken.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Username: username, Email: email, Password: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user registered")
	}
	return u, nil
}

// Authenticate looks up the identifier (username or email) and verifies the
// password against the stored bcrypt hash.
func (s *AccountService) Authenticate(ctx context.Context, identifier, password string) (*entity.User, error) {
	u, err := s.Repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrWrongPassword
	}
	return u, nil
}

// IssueTokens generates an access/refresh pair and records a session in Redis.
func (s *AccountService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, sid)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, sid)
	if err != nil {
		return TokenPair{}, err
	}

	if s.Redis != nil {
		key := sessionKey(u.ID)
		fields := map[string]any{
			"user_id":    u.ID,
			"username":   u.Username,
			"email":      u.Email,
			"sid":        sid,
			"created_at": time.Now().UTC().Format(time.RFC3339Nano),
		}
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, sessionTTL)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis session write failed")
		}
	}

	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// Login authenticates and issues tokens in one step.
func (s *AccountService) Login(ctx context.Context, identifier, password string) (*entity.User, TokenPair, error) {
	u, err := s.Authenticate(ctx, identifier, password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// Refresh rotates the token pair when the refresh token matches the current
// session.
func (s *AccountService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidToken
	}
	uid, err := claims.UserID()
	if err != nil {
		return TokenPair{}, ErrInvalidToken
	}
	u, err := s.Repo.GetByID(ctx, uid)
	if errors.Is(err, repo.ErrNotFound) {
		return TokenPair{}, ErrInvalidToken
	}
	if err != nil {
		return TokenPair{}, err
	}
	if s.Redis != nil {
		data, rErr := s.Redis.HGetAll(ctx, sessionKey(u.ID)).Result()
		if rErr != nil {
			return TokenPair{}, rErr
		}
		if len(data) == 0 || data["sid"] != claims.SessionID {
			return TokenPair{}, ErrInvalidToken
		}
	}
	return s.IssueTokens(ctx, u)
}

// Logout drops the server-side session.
func (s *AccountService) Logout(ctx context.Context, userID int64) {
	if s.Redis != nil {
		_ = s.Redis.Del(ctx, sessionKey(userID)).Err()
	}
}

// GetUser returns the user record for a profile or user lookup.
func (s *AccountService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	return s.Repo.GetByID(ctx, id)
}
