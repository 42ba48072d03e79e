package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"charity-admin-backend/domain"
	"charity-admin-backend/internal/api/presenters"
	"charity-admin-backend/internal/middleware"
	"charity-admin-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

type fakeCharityService struct {
	lastQuery domain.CharityListQuery
}

func (f *fakeCharityService) AdminList(ctx context.Context, query domain.CharityListQuery) ([]*domain.Charity, domain.Pagination, error) {
	f.lastQuery = query
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 50
	}
	items := []*domain.Charity{
		{ID: "c1", Title: "Clean Water", Progress: 25, Status: "Published"},
	}
	return items, domain.NewPagination(query.Page, query.Limit, int64(len(items))), nil
}

func (f *fakeCharityService) CreateCharity(ctx context.Context, req domain.CharityRequest) (*domain.Charity, error) {
	return &domain.Charity{ID: "c1", Title: req.Title}, nil
}

func (f *fakeCharityService) UpdateCharity(ctx context.Context, id string, req domain.UpdateCharityRequest) (*domain.Charity, error) {
	return nil, domain.ErrCharityNotFound
}

func (f *fakeCharityService) DeleteCharity(ctx context.Context, id string) error {
	return nil
}

func (f *fakeCharityService) DonationLinkQR(ctx context.Context, id string, size int) ([]byte, error) {
	return nil, domain.ErrCharityNotFound
}

type fakeJWTService struct{}

func (f *fakeJWTService) GenerateTokenUser(userID string, role string) string {
	return "signed-" + userID
}

func (f *fakeJWTService) ValidateTokenUser(token string) (*jwtlib.Token, error) {
	return nil, nil
}

func (f *fakeJWTService) GetUserIDByToken(token string) (string, string, error) {
	if token != "valid-token" {
		return "", "", domain.ErrTokenInvalid
	}
	return "u1", domain.RoleAdmin, nil
}

func newCharityTestApp(service *fakeCharityService) *fiber.App {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		BodyLimit:    1024,
		ErrorHandler: presenters.AppErrorHandler,
	})

	handler := NewCharityHandler(service, utils.Validate)
	mw := middleware.NewMiddleware()
	group := app.Group("/api/charities", mw.AuthMiddleware(&fakeJWTService{}))
	group.Get("/admin/list", handler.AdminList)
	group.Post("", handler.CreateCharity)
	return app
}

func decodeBody(t *testing.T, res *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(res.Body)
	assert.NoError(t, err)
	var body map[string]any
	assert.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestAdminListEnvelope(t *testing.T) {
	app := newCharityTestApp(&fakeCharityService{})

	req := httptest.NewRequest(http.MethodGet, "/api/charities/admin/list?q=water", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	data := body["data"].(map[string]any)
	assert.Contains(t, data, "items")
	pagination := data["pagination"].(map[string]any)
	assert.Equal(t, float64(1), pagination["page"])
	assert.Equal(t, float64(50), pagination["limit"])
	assert.Contains(t, pagination, "total_pages")
}

func TestAdminListZeroLimit(t *testing.T) {
	service := &fakeCharityService{}
	app := newCharityTestApp(service)

	req := httptest.NewRequest(http.MethodGet, "/api/charities/admin/list?limit=0&page=0", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	res, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 0, service.lastQuery.Limit)

	body := decodeBody(t, res)
	pagination := body["data"].(map[string]any)["pagination"].(map[string]any)
	assert.Equal(t, float64(50), pagination["limit"])
}

func TestAdminListMissingToken(t *testing.T) {
	app := newCharityTestApp(&fakeCharityService{})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/charities/admin/list", nil))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestAdminListInvalidToken(t *testing.T) {
	app := newCharityTestApp(&fakeCharityService{})

	req := httptest.NewRequest(http.MethodGet, "/api/charities/admin/list", nil)
	req.Header.Set("Authorization", "Bearer forged")
	res, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestCreateCharityValidation(t *testing.T) {
	app := newCharityTestApp(&fakeCharityService{})

	req := httptest.NewRequest(http.MethodPost, "/api/charities", strings.NewReader(`{"title":""}`))
	req.Header.Set("Authorization", "Bearer valid-token")
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestOversizedBodyFriendlyMessage(t *testing.T) {
	app := newCharityTestApp(&fakeCharityService{})

	req := httptest.NewRequest(http.MethodPost, "/api/charities", bytes.NewReader(make([]byte, 4096)))
	req.Header.Set("Authorization", "Bearer valid-token")
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusRequestEntityTooLarge, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, domain.MessageFailedUploadTooLarge, body["message"])
}
