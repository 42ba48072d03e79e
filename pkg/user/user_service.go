package user

import (
	"context"
	"errors"

	"charity-admin-backend/domain"
	"charity-admin-backend/entities"
	"charity-admin-backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		AdminLogin(ctx context.Context, req domain.AdminLoginRequest) (domain.AdminLoginResponse, error)
		List(ctx context.Context) ([]domain.User, error)
		CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.User, error)
		UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.User, error)
		DeleteUser(ctx context.Context, id, actorID string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func toDomain(user *entities.User) domain.User {
	return domain.User{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

func (s *userService) AdminLogin(ctx context.Context, req domain.AdminLoginRequest) (domain.AdminLoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AdminLoginResponse{}, domain.ErrWrongCredentials
		}
		return domain.AdminLoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.AdminLoginResponse{}, domain.ErrWrongCredentials
	}

	if !user.IsActive {
		return domain.AdminLoginResponse{}, domain.ErrAccountInactive
	}
	if user.Role != domain.RoleAdmin {
		return domain.AdminLoginResponse{}, domain.ErrUnauthorizedRole
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return domain.AdminLoginResponse{
		Token: token,
		User:  toDomain(user),
	}, nil
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.User, 0, len(users))
	for _, user := range users {
		result = append(result, toDomain(user))
	}
	return result, nil
}

func (s *userService) CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.User, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.User{}, domain.ErrEmailAlreadyUsed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	user := &entities.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     req.Role,
		IsActive: req.IsActive,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.User{}, err
	}

	return toDomain(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return domain.User{}, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	if req.Email != nil && *req.Email != user.Email {
		if existing, err := s.userRepository.GetUserByEmail(ctx, *req.Email); err == nil && existing.ID != user.ID {
			return domain.User{}, domain.ErrEmailAlreadyUsed
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, err
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.User{}, err
		}
		user.Password = string(hash)
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.User{}, err
	}

	return toDomain(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, id, actorID string) error {
	if id == actorID {
		return domain.ErrDeleteOwnAccount
	}

	userID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	return s.userRepository.DeleteUser(ctx, userID)
}
