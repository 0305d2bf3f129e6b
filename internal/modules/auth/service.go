package auth

import (
	jwtsvc "yachtbooking/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

const adminRole = "admin"

// Service authenticates the single env-configured dashboard admin.
// The plaintext password from config is hashed once at construction so
// only the bcrypt digest is kept in memory.
type Service struct {
	adminEmail string
	adminHash  []byte
	jwt        *jwtsvc.Service
}

func NewService(adminEmail, adminPassword string, jwt *jwtsvc.Service) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Service{
		adminEmail: adminEmail,
		adminHash:  hash,
		jwt:        jwt,
	}, nil
}

func (s *Service) Login(email, password string) (*LoginResponse, error) {
	if email != s.adminEmail {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(email, adminRole)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		Email: email,
		Role:  adminRole,
	}, nil
}
