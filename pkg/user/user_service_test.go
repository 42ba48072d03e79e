package user

import (
	"context"
	"testing"

	"charity-admin-backend/domain"
	"charity-admin-backend/entities"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users    map[uuid.UUID]*entities.User
	settings map[uuid.UUID]*entities.NotificationSetting
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users:    map[uuid.UUID]*entities.User{},
		settings: map[uuid.UUID]*entities.NotificationSetting{},
	}
}

func (f *fakeUserRepository) List(ctx context.Context) ([]*entities.User, error) {
	var result []*entities.User
	for _, u := range f.users {
		result = append(result, u)
	}
	return result, nil
}

func (f *fakeUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	user.ID = uuid.New()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepository) GetNotificationSetting(ctx context.Context, userID uuid.UUID) (*entities.NotificationSetting, error) {
	s, ok := f.settings[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeUserRepository) SaveNotificationSetting(ctx context.Context, setting *entities.NotificationSetting) error {
	f.settings[setting.UserID] = setting
	return nil
}

type fakeJWTService struct{}

func (f *fakeJWTService) GenerateTokenUser(userID string, role string) string {
	return "token-" + userID
}

func (f *fakeJWTService) ValidateTokenUser(token string) (*jwtlib.Token, error) {
	return nil, nil
}

func (f *fakeJWTService) GetUserIDByToken(token string) (string, string, error) {
	return "", "", nil
}

func seedUser(t *testing.T, repo *fakeUserRepository, email, password, role string, active bool) *entities.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	u := &entities.User{
		Name:     "Seeded User",
		Email:    email,
		Password: string(hash),
		Role:     role,
		IsActive: active,
	}
	assert.NoError(t, repo.CreateUser(context.Background(), u))
	return u
}

func TestAdminLogin(t *testing.T) {
	repo := newFakeUserRepository()
	u := seedUser(t, repo, "admin@example.com", "secret123", domain.RoleAdmin, true)
	service := NewUserService(repo, &fakeJWTService{})

	result, err := service.AdminLogin(context.Background(), domain.AdminLoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-"+u.ID.String(), result.Token)
	assert.Equal(t, domain.RoleAdmin, result.User.Role)
}

func TestAdminLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(t, repo, "admin@example.com", "secret123", domain.RoleAdmin, true)
	service := NewUserService(repo, &fakeJWTService{})

	_, err := service.AdminLogin(context.Background(), domain.AdminLoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domain.ErrWrongCredentials)
}

func TestAdminLoginUnknownEmail(t *testing.T) {
	service := NewUserService(newFakeUserRepository(), &fakeJWTService{})

	_, err := service.AdminLogin(context.Background(), domain.AdminLoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domain.ErrWrongCredentials)
}

func TestAdminLoginInactiveAccount(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(t, repo, "admin@example.com", "secret123", domain.RoleAdmin, false)
	service := NewUserService(repo, &fakeJWTService{})

	_, err := service.AdminLogin(context.Background(), domain.AdminLoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, domain.ErrAccountInactive)
}

func TestAdminLoginRequiresAdminRole(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(t, repo, "viewer@example.com", "secret123", domain.RoleViewer, true)
	service := NewUserService(repo, &fakeJWTService{})

	_, err := service.AdminLogin(context.Background(), domain.AdminLoginRequest{
		Email:    "viewer@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, domain.ErrUnauthorizedRole)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	seedUser(t, repo, "taken@example.com", "secret123", domain.RoleAdmin, true)
	service := NewUserService(repo, &fakeJWTService{})

	_, err := service.CreateUser(context.Background(), domain.CreateUserRequest{
		Name:            "New Admin",
		Email:           "taken@example.com",
		Role:            domain.RoleAdmin,
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyUsed)
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, &fakeJWTService{})

	result, err := service.CreateUser(context.Background(), domain.CreateUserRequest{
		Name:            "New Moderator",
		Email:           "mod@example.com",
		Role:            domain.RoleModerator,
		IsActive:        true,
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})

	assert.NoError(t, err)

	stored, err := repo.GetUserByEmail(context.Background(), "mod@example.com")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
	assert.Equal(t, domain.RoleModerator, result.Role)
}

func TestDeleteOwnAccount(t *testing.T) {
	repo := newFakeUserRepository()
	u := seedUser(t, repo, "admin@example.com", "secret123", domain.RoleAdmin, true)
	service := NewUserService(repo, &fakeJWTService{})

	err := service.DeleteUser(context.Background(), u.ID.String(), u.ID.String())

	assert.ErrorIs(t, err, domain.ErrDeleteOwnAccount)
}
