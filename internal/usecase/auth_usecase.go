package usecase

import (
	"context"

	"profile-folio/internal/pkg/jwt"
	ucauth "profile-folio/internal/usecase/auth"
)

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) error
	Login(ctx context.Context, in ucauth.LoginInput) (string, error)
}

type Auth struct {
	authSvc *ucauth.Service
	jwt     jwt.Service
}

func NewAuthUsecase(authSvc *ucauth.Service, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: authSvc, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) error {
	return u.authSvc.Register(ctx, in)
}

// Login verifies the credential and mints a bearer token carrying the
// email as subject.
func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (string, error) {
	c, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return "", err
	}

	token, err := u.jwt.GenerateToken(c.Email)
	if err != nil {
		return "", ErrInternal
	}
	return token, nil
}
