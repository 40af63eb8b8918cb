package services

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"cisoevents/internal/domain"
)

const (
	bcryptCost = 10
	adminRole  = "admin"
)

type authService struct {
	mu           sync.RWMutex
	session      *domain.Session
	username     string
	passwordHash []byte
	issuer       domain.TokenIssuer
	expiry       time.Duration
}

// NewAuthService creates an AuthService for the single configured admin
// identity. The password is hashed once up front so the plaintext is not
// held for the life of the process.
func NewAuthService(username, password string, issuer domain.TokenIssuer, expiry time.Duration) (domain.AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &authService{
		username:     username,
		passwordHash: hash,
		issuer:       issuer,
		expiry:       expiry,
	}, nil
}

func (s *authService) Login(username, password string) (string, *domain.Session, error) {
	if username != s.username {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{Username: username, Role: adminRole}
	token, err := s.issuer.Issue(username, adminRole, s.expiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	return token, session, nil
}

func (s *authService) Logout() {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
}

func (s *authService) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	c := *s.session
	return &c
}
