package charity

import (
	"context"
	"testing"
	"time"

	"charity-admin-backend/domain"
	"charity-admin-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeCharityRepository struct {
	charities map[string]*entities.Charity
	listed    []*entities.Charity
}

func newFakeCharityRepository() *fakeCharityRepository {
	return &fakeCharityRepository{charities: map[string]*entities.Charity{}}
}

func (f *fakeCharityRepository) AdminList(ctx context.Context, q, status string, page, limit int) ([]*entities.Charity, int64, error) {
	return f.listed, int64(len(f.listed)), nil
}

func (f *fakeCharityRepository) GetCharityByID(ctx context.Context, id string) (*entities.Charity, error) {
	c, ok := f.charities[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCharityRepository) CreateCharity(ctx context.Context, charity *entities.Charity) error {
	charity.ID = uuid.New()
	f.charities[charity.ID.String()] = charity
	return nil
}

func (f *fakeCharityRepository) UpdateCharity(ctx context.Context, charity *entities.Charity) error {
	f.charities[charity.ID.String()] = charity
	return nil
}

func (f *fakeCharityRepository) DeleteCharity(ctx context.Context, id string) error {
	delete(f.charities, id)
	return nil
}

func (f *fakeCharityRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return 0, nil
}

func (f *fakeCharityRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(f.charities)), nil
}

func (f *fakeCharityRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*entities.Charity, error) {
	return f.listed, nil
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 25, Progress(250, 1000))
	assert.Equal(t, 100, Progress(1200, 1000))
	assert.Equal(t, 0, Progress(500, 0))
	assert.Equal(t, 0, Progress(-10, 1000))
	assert.Equal(t, 33, Progress(1, 3))
}

func TestCreateCharity(t *testing.T) {
	repo := newFakeCharityRepository()
	service := NewCharityService(repo)

	result, err := service.CreateCharity(context.Background(), domain.CharityRequest{
		Title:    "Clean Water for Baidoa",
		Category: "Water",
		Location: "Baidoa",
		Goal:     1000,
		Raised:   250,
		Status:   "Draft",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Clean Water for Baidoa", result.Title)
	assert.Equal(t, 25, result.Progress)
	assert.Len(t, repo.charities, 1)
}

func TestUpdateCharityPartial(t *testing.T) {
	repo := newFakeCharityRepository()
	service := NewCharityService(repo)

	created, err := service.CreateCharity(context.Background(), domain.CharityRequest{
		Title:    "School Kits",
		Category: "Education",
		Goal:     500,
		Status:   "Draft",
	})
	assert.NoError(t, err)

	status := "Published"
	updated, err := service.UpdateCharity(context.Background(), created.ID, domain.UpdateCharityRequest{
		Status: &status,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Published", updated.Status)
	assert.Equal(t, "School Kits", updated.Title)
}

func TestAdminListClampsPagination(t *testing.T) {
	repo := newFakeCharityRepository()
	repo.listed = []*entities.Charity{
		{ID: uuid.New(), Title: "Clean Water", Goal: 1000, Raised: 250, Status: "Published"},
		{ID: uuid.New(), Title: "School Kits", Goal: 500, Status: "Draft"},
	}
	service := NewCharityService(repo)

	items, pagination, err := service.AdminList(context.Background(), domain.CharityListQuery{
		Page:  0,
		Limit: 0,
	})

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 50, pagination.Limit)
	assert.Equal(t, int64(1), pagination.TotalPages)
}

func TestUpdateCharityBadID(t *testing.T) {
	service := NewCharityService(newFakeCharityRepository())

	title := "anything"
	_, err := service.UpdateCharity(context.Background(), "not-a-uuid", domain.UpdateCharityRequest{
		Title: &title,
	})

	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestDeleteCharityBadID(t *testing.T) {
	service := NewCharityService(newFakeCharityRepository())

	assert.ErrorIs(t, service.DeleteCharity(context.Background(), "42"), domain.ErrParseUUID)
}

func TestUpdateCharityNotFound(t *testing.T) {
	service := NewCharityService(newFakeCharityRepository())

	title := "anything"
	_, err := service.UpdateCharity(context.Background(), uuid.New().String(), domain.UpdateCharityRequest{
		Title: &title,
	})

	assert.ErrorIs(t, err, domain.ErrCharityNotFound)
}

func TestDeleteCharityNotFound(t *testing.T) {
	service := NewCharityService(newFakeCharityRepository())

	err := service.DeleteCharity(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrCharityNotFound)
}

func TestDonationLinkQR(t *testing.T) {
	repo := newFakeCharityRepository()
	service := NewCharityService(repo)

	created, err := service.CreateCharity(context.Background(), domain.CharityRequest{
		Title:        "Emergency Relief",
		Category:     "Health",
		Goal:         2000,
		Status:       "Published",
		DonationLink: "https://donate.example.org/emergency-relief",
	})
	assert.NoError(t, err)

	png, err := service.DonationLinkQR(context.Background(), created.ID, 0)
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestDonationLinkQRNoLink(t *testing.T) {
	repo := newFakeCharityRepository()
	service := NewCharityService(repo)

	created, err := service.CreateCharity(context.Background(), domain.CharityRequest{
		Title:    "No Link Yet",
		Category: "Food",
		Goal:     100,
		Status:   "Draft",
	})
	assert.NoError(t, err)

	_, err = service.DonationLinkQR(context.Background(), created.ID, 256)
	assert.ErrorIs(t, err, domain.ErrCharityNoDonationLink)
}
