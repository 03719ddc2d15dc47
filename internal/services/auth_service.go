package services

import (
	"reclamos_backend/internal/auth"
	"reclamos_backend/internal/repositories"
	"reclamos_backend/internal/services/dto"
	"reclamos_backend/pkg/apperrors"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

// Login verifica credenciales y emite el access token. Email inexistente
// y contraseña incorrecta responden lo mismo: "Credenciales inválidas".
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrCredencialesInvalidas
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrCredencialesInvalidas
	}

	accessToken, err := auth.GenerateToken(user.Email, user.Name, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		User: dto.UserResponse{
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
	}, nil
}
