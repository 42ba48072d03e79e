package settings

import (
	"context"
	"errors"

	"charity-admin-backend/domain"
	"charity-admin-backend/entities"
	"charity-admin-backend/pkg/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	SettingsService interface {
		GetAccount(ctx context.Context, userID string) (domain.User, error)
		UpdateAccount(ctx context.Context, userID string, req domain.UpdateAccountRequest) (domain.User, error)
		GetNotifications(ctx context.Context, userID string) (domain.NotificationPreferences, error)
		UpdateNotifications(ctx context.Context, userID string, prefs domain.NotificationPreferences) (domain.NotificationPreferences, error)
	}

	settingsService struct {
		userRepository user.UserRepository
	}
)

func NewSettingsService(userRepository user.UserRepository) SettingsService {
	return &settingsService{userRepository: userRepository}
}

func (s *settingsService) GetAccount(ctx context.Context, userID string) (domain.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return domain.User{}, domain.ErrParseUUID
	}

	account, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return domain.User{
		ID:        account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		Role:      account.Role,
		IsActive:  account.IsActive,
		CreatedAt: account.CreatedAt,
	}, nil
}

func (s *settingsService) UpdateAccount(ctx context.Context, userID string, req domain.UpdateAccountRequest) (domain.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return domain.User{}, domain.ErrParseUUID
	}

	account, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	account.Name = req.FullName

	if req.NewPassword != "" {
		if req.ConfirmPassword != req.NewPassword {
			return domain.User{}, domain.ErrPasswordMismatch
		}
		if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.CurrentPassword)); err != nil {
			return domain.User{}, domain.ErrWrongCurrentPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return domain.User{}, err
		}
		account.Password = string(hash)
	}

	if err := s.userRepository.UpdateUser(ctx, account); err != nil {
		return domain.User{}, err
	}

	return domain.User{
		ID:        account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		Role:      account.Role,
		IsActive:  account.IsActive,
		CreatedAt: account.CreatedAt,
	}, nil
}

func (s *settingsService) GetNotifications(ctx context.Context, userID string) (domain.NotificationPreferences, error) {
	setting, err := s.getOrCreateSetting(ctx, userID)
	if err != nil {
		return domain.NotificationPreferences{}, err
	}
	return toPreferences(setting), nil
}

func (s *settingsService) UpdateNotifications(ctx context.Context, userID string, prefs domain.NotificationPreferences) (domain.NotificationPreferences, error) {
	setting, err := s.getOrCreateSetting(ctx, userID)
	if err != nil {
		return domain.NotificationPreferences{}, err
	}

	setting.EmailEnabled = prefs.EmailEnabled
	setting.InappEnabled = prefs.InappEnabled
	setting.VolunteerRegistered = prefs.VolunteerRegistered
	setting.TransactionSent = prefs.TransactionSent
	setting.CharityPublished = prefs.CharityPublished
	setting.DonationReceived = prefs.DonationReceived
	setting.ContactMessage = prefs.ContactMessage

	if err := s.userRepository.SaveNotificationSetting(ctx, setting); err != nil {
		return domain.NotificationPreferences{}, err
	}

	return toPreferences(setting), nil
}

func (s *settingsService) getOrCreateSetting(ctx context.Context, userID string) (*entities.NotificationSetting, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	setting, err := s.userRepository.GetNotificationSetting(ctx, id)
	if err == nil {
		return setting, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	setting = &entities.NotificationSetting{
		UserID:              id,
		EmailEnabled:        true,
		InappEnabled:        true,
		VolunteerRegistered: true,
		TransactionSent:     true,
		CharityPublished:    true,
		DonationReceived:    true,
		ContactMessage:      true,
	}
	if err := s.userRepository.SaveNotificationSetting(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}

func toPreferences(setting *entities.NotificationSetting) domain.NotificationPreferences {
	return domain.NotificationPreferences{
		EmailEnabled:        setting.EmailEnabled,
		InappEnabled:        setting.InappEnabled,
		VolunteerRegistered: setting.VolunteerRegistered,
		TransactionSent:     setting.TransactionSent,
		CharityPublished:    setting.CharityPublished,
		DonationReceived:    setting.DonationReceived,
		ContactMessage:      setting.ContactMessage,
	}
}
