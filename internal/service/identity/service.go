package identity

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"

	"github.com/sanjeevani/coordination-api/internal/model"
	"github.com/sanjeevani/coordination-api/internal/repository"
	"github.com/sanjeevani/coordination-api/pkg/errors"
)

const (
	DefaultSessionTTL = 24 * time.Hour

	bcryptCost = 12
)

// IdentityService is the contract the transport layer depends on.
type IdentityService interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.Session, error)
	Register(ctx context.Context, req *model.RegisterRequest) (*model.Session, error)
	Logout(ctx context.Context)
	Current(ctx context.Context) *model.User
	Authenticate(token string) (*model.User, error)
}

// Service validates credentials against the directory and owns the single
// active session. Tokens are opaque and expire from the cache; a new login
// or registration replaces whatever session was active before.
type Service struct {
	directory  repository.UserDirectory
	policy     RegistrationPolicy
	sessions   *cache.Cache
	sessionTTL time.Duration

	mu          sync.Mutex
	activeToken string
}

func NewService(directory repository.UserDirectory, policy RegistrationPolicy, sessionTTL time.Duration) *Service {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &Service{
		directory:  directory,
		policy:     policy,
		sessions:   cache.New(sessionTTL, 2*sessionTTL),
		sessionTTL: sessionTTL,
	}
}

// Login checks email, password and role against the directory. All three
// must match; the caller is told only that credentials were invalid, never
// which part mismatched. On success the previous session, if any, is
// replaced.
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.Session, error) {
	entry, err := s.directory.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.Authentication(err)
	}

	if entry.Role != req.Role {
		return nil, errors.Authentication(nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(entry.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.Authentication(err)
	}

	return s.establishSession(entry.User), nil
}

// Register creates a directory entry after running the configured policy and
// logs the new user straight in.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.Session, error) {
	if err := s.policy.Validate(ctx, req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, errors.Internal(err)
	}

	entry := &model.DirectoryEntry{
		User: model.User{
			ID:         uuid.New(),
			Name:       req.Name,
			Email:      req.Email,
			Role:       req.Role,
			BloodGroup: req.BloodGroup,
			City:       req.City,
			Phone:      req.Phone,
		},
		PasswordHash: string(hash),
	}
	if err := s.directory.Create(ctx, entry); err != nil {
		return nil, err
	}

	return s.establishSession(entry.User), nil
}

// Logout clears the active session. Idempotent; logging out with no session
// is not an error.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeToken != "" {
		s.sessions.Delete(s.activeToken)
		s.activeToken = ""
	}
}

// Current returns the active session's user, or nil when nobody is logged in
// or the session has expired.
func (s *Service) Current(ctx context.Context) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeToken == "" {
		return nil
	}
	v, ok := s.sessions.Get(s.activeToken)
	if !ok {
		s.activeToken = ""
		return nil
	}
	user := v.(model.User)
	return &user
}

// Authenticate resolves a bearer token to its user. Only the active token is
// accepted; tokens from replaced sessions are gone from the cache.
func (s *Service) Authenticate(token string) (*model.User, error) {
	if token == "" {
		return nil, errors.Authentication(nil)
	}
	v, ok := s.sessions.Get(token)
	if !ok {
		return nil, errors.Authentication(nil)
	}
	user := v.(model.User)
	return &user, nil
}

func (s *Service) establishSession(user model.User) *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeToken != "" {
		s.sessions.Delete(s.activeToken)
	}

	token := uuid.New().String()
	s.sessions.Set(token, user, s.sessionTTL)
	s.activeToken = token

	return &model.Session{
		Token:     token,
		User:      user,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
}
