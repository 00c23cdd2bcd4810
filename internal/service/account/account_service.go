package account

import (
	"context"

	"github.com/Domenick1991/vehiclerental/internal/domain"
	"github.com/Domenick1991/vehiclerental/internal/validation"
	"github.com/sirupsen/logrus"
)

// AccountUseCase checks the login and sign-up forms. It does not authenticate
// anyone or keep any account state.
type AccountUseCase interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.Acknowledgement, error)
	Signup(ctx context.Context, req domain.SignupRequest) (*domain.Acknowledgement, error)
}

type AccountService struct {
	log logrus.FieldLogger
}

func NewAccountService(log logrus.FieldLogger) *AccountService {
	return &AccountService{log: log}
}

func (s *AccountService) Login(ctx context.Context, req domain.LoginRequest) (*domain.Acknowledgement, error) {
	if err := validation.ValidateLogin(req).Err(); err != nil {
		return nil, err
	}
	s.log.WithField("email", req.Email).Info("login attempt")
	return &domain.Acknowledgement{
		Title:       "Login Attempt",
		Description: "Simulating login for " + req.Email,
	}, nil
}

func (s *AccountService) Signup(ctx context.Context, req domain.SignupRequest) (*domain.Acknowledgement, error) {
	if err := validation.ValidateSignup(req).Err(); err != nil {
		return nil, err
	}
	s.log.WithField("email", req.Email).Info("sign up attempt")
	return &domain.Acknowledgement{
		Title:       "Sign Up Attempt",
		Description: "Simulating sign up for " + req.Email,
	}, nil
}

var _ AccountUseCase = (*AccountService)(nil)
