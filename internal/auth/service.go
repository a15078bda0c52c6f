package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/asavelyev/campus-canteen/internal/storage"
	"github.com/asavelyev/campus-canteen/internal/types/session"
	"github.com/asavelyev/campus-canteen/internal/types/user"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	users      storage.UserRepository
	sessions   storage.SessionRepository
	sessionTTL time.Duration
}

func NewService(users storage.UserRepository, sessions storage.SessionRepository, sessionTTL time.Duration) *Service {
	return &Service{users: users, sessions: sessions, sessionTTL: sessionTTL}
}

// Register creates an account and immediately opens a session for it.
func (s *Service) Register(ctx context.Context, name, email, password, ip, userAgent string) (*user.User, *session.Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}
	now := time.Now().UTC()
	u := &user.User{
		ID:           "user_" + uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, err
	}

	sess, err := s.issueSession(ctx, u.ID, ip, userAgent)
	if err != nil {
		return nil, nil, err
	}
	return u, sess, nil
}

// Login verifies credentials and opens a fresh session. Lookup failures and
// password mismatches are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password, ip, userAgent string) (*user.User, *session.Session, error) {
	u, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	sess, err := s.issueSession(ctx, u.ID, ip, userAgent)
	if err != nil {
		return nil, nil, err
	}
	return u, sess, nil
}

func (s *Service) issueSession(ctx context.Context, userID, ip, userAgent string) (*session.Session, error) {
	now := time.Now().UTC()
	sess := &session.Session{
		ID:        "session_" + uuid.NewString(),
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if ip != "" {
		sess.IPAddress = &ip
	}
	if userAgent != "" {
		sess.UserAgent = &userAgent
	}
	if err := s.sessions.CreateSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}
