package usecase

import (
	"context"
	"fmt"

	"cinema-client/internal/api"
	"cinema-client/internal/dto/request"
	"cinema-client/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Logout()
	Authenticated() bool
}

type authService struct {
	api *api.Client
	log *zap.Logger
}

func NewAuthService(client *api.Client, log *zap.Logger) AuthService {
	return &authService{
		api: client,
		log: log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, email, password string) error {
	req := &request.LoginRequest{Email: email, Password: password}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if _, err := s.api.User.Login(ctx, req); err != nil {
		s.log.Warn("Login failed", zap.String("email", email), zap.Error(err))
		return err
	}

	s.log.Info("Logged in", zap.String("email", email))
	return nil
}

func (s *authService) Logout() {
	s.api.User.Logout()
	s.log.Info("Logged out")
}

func (s *authService) Authenticated() bool {
	return s.api.Session().Authenticated()
}
