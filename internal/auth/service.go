package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	repo AdminRepository
}

func NewService(repo AdminRepository) *Service {
	return &Service{repo: repo}
}

// Bootstrap creates the initial admin account from deployment configuration
// if it does not exist yet.
func (s *Service) Bootstrap(email, password string) error {
	if email == "" || password == "" {
		return errors.New("missing admin credentials")
	}

	exists, _ := s.repo.ExistsByEmail(email)
	if exists {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return err
	}

	return s.repo.Save(&Admin{
		Email:    email,
		Password: string(hashedPassword),
	})
}

// LOGIN
func (s *Service) Login(email, password string) (*Admin, error) {
	admin, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(admin.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}
