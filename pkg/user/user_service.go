package user

import (
	"CampusFind-Backend/domain"
	"CampusFind-Backend/entities"
	"CampusFind-Backend/internal/utils/mailing"
	"CampusFind-Backend/pkg/jwt"
	"CampusFind-Backend/pkg/telegram"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenDuration = 30 * time.Minute

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserProfile, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (*domain.UserProfile, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (*domain.UserProfile, error)
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		UpdateTelegramChatID(ctx context.Context, req domain.UpdateTelegramRequest, userID string) error
		TestTelegram(ctx context.Context, userID string) error
	}

	userService struct {
		userRepository  UserRepository
		jwtService      jwt.JWTService
		telegramService telegram.TelegramService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, telegramService telegram.TelegramService) UserService {
	return &userService{
		userRepository:  userRepository,
		jwtService:      jwtService,
		telegramService: telegramService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserProfile, error) {
	exists, err := s.userRepository.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return toProfile(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	role := domain.RoleUser
	if user.IsAdmin {
		role = domain.RoleAdmin
	}
	token := s.jwtService.GenerateTokenUser(user.ID.String(), role)

	return &domain.LoginResponse{
		Token: token,
		User:  toProfile(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.UserProfile, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return toProfile(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (*domain.UserProfile, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return toProfile(user), nil
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenForgetPassword(map[string]any{
		"user_id": user.ID.String(),
		"email":   user.Email,
	}, resetTokenDuration)
	if err != nil {
		return err
	}

	return mailing.SendResetPasswordMail(user.Email, user.Name, token)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(req.Token)
	if err != nil {
		return err
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return domain.ErrTokenInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepository.UpdatePassword(ctx, userID, string(hash))
}

func (s *userService) UpdateTelegramChatID(ctx context.Context, req domain.UpdateTelegramRequest, userID string) error {
	return s.userRepository.UpdateTelegramChatID(ctx, userID, req.ChatID)
}

func (s *userService) TestTelegram(ctx context.Context, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if user.TelegramChatID == "" {
		return domain.ErrTelegramNotLinked
	}

	sent := s.telegramService.SendMessage(user.TelegramChatID, fmt.Sprintf(
		"*Hello %s!*\n\nThis is a test notification from Campus Lost & Found.\n\nIntegration is working!",
		user.Name,
	))
	if !sent {
		return domain.ErrTelegramSendFailed
	}
	return nil
}

func toProfile(user *entities.User) *domain.UserProfile {
	return &domain.UserProfile{
		ID:             user.ID.String(),
		Name:           user.Name,
		Email:          user.Email,
		Phone:          user.Phone,
		TelegramChatID: user.TelegramChatID,
		IsAdmin:        user.IsAdmin,
		FinderPoints:   user.FinderPoints,
	}
}
