package charity

import (
	"context"
	"errors"
	"math"

	"charity-admin-backend/domain"
	"charity-admin-backend/entities"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

type (
	CharityService interface {
		AdminList(ctx context.Context, query domain.CharityListQuery) ([]*domain.Charity, domain.Pagination, error)
		CreateCharity(ctx context.Context, req domain.CharityRequest) (*domain.Charity, error)
		UpdateCharity(ctx context.Context, id string, req domain.UpdateCharityRequest) (*domain.Charity, error)
		DeleteCharity(ctx context.Context, id string) error
		DonationLinkQR(ctx context.Context, id string, size int) ([]byte, error)
	}

	charityService struct {
		charityRepository CharityRepository
	}
)

func NewCharityService(charityRepository CharityRepository) CharityService {
	return &charityService{charityRepository: charityRepository}
}

// Progress returns the funding percentage shown next to each charity,
// rounded and clamped to [0, 100]. A goal of zero reads as no progress.
func Progress(raised, goal float64) int {
	if goal <= 0 {
		return 0
	}
	pct := int(math.Round(raised / goal * 100))
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

func toDomain(c *entities.Charity) *domain.Charity {
	return &domain.Charity{
		ID:           c.ID.String(),
		Title:        c.Title,
		Excerpt:      c.Excerpt,
		Category:     c.Category,
		Location:     c.Location,
		Goal:         c.Goal,
		Raised:       c.Raised,
		Progress:     Progress(c.Raised, c.Goal),
		Status:       c.Status,
		Cover:        c.Cover,
		DonationLink: c.DonationLink,
		Featured:     c.Featured,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (s *charityService) AdminList(ctx context.Context, query domain.CharityListQuery) ([]*domain.Charity, domain.Pagination, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 50
	}

	charities, count, err := s.charityRepository.AdminList(ctx, query.Q, query.Status, query.Page, query.Limit)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	result := make([]*domain.Charity, 0, len(charities))
	for _, c := range charities {
		result = append(result, toDomain(c))
	}
	return result, domain.NewPagination(query.Page, query.Limit, count), nil
}

func (s *charityService) CreateCharity(ctx context.Context, req domain.CharityRequest) (*domain.Charity, error) {
	charity := &entities.Charity{
		Title:        req.Title,
		Excerpt:      req.Excerpt,
		Category:     req.Category,
		Location:     req.Location,
		Goal:         req.Goal,
		Raised:       req.Raised,
		Status:       req.Status,
		Cover:        req.Cover,
		DonationLink: req.DonationLink,
		Featured:     req.Featured,
	}

	if err := s.charityRepository.CreateCharity(ctx, charity); err != nil {
		return nil, err
	}
	return toDomain(charity), nil
}

func (s *charityService) UpdateCharity(ctx context.Context, id string, req domain.UpdateCharityRequest) (*domain.Charity, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}

	charity, err := s.charityRepository.GetCharityByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCharityNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		charity.Title = *req.Title
	}
	if req.Excerpt != nil {
		charity.Excerpt = *req.Excerpt
	}
	if req.Category != nil {
		charity.Category = *req.Category
	}
	if req.Location != nil {
		charity.Location = *req.Location
	}
	if req.Goal != nil {
		charity.Goal = *req.Goal
	}
	if req.Raised != nil {
		charity.Raised = *req.Raised
	}
	if req.Status != nil {
		charity.Status = *req.Status
	}
	if req.Cover != nil {
		charity.Cover = *req.Cover
	}
	if req.DonationLink != nil {
		charity.DonationLink = *req.DonationLink
	}
	if req.Featured != nil {
		charity.Featured = *req.Featured
	}

	if err := s.charityRepository.UpdateCharity(ctx, charity); err != nil {
		return nil, err
	}
	return toDomain(charity), nil
}

func (s *charityService) DeleteCharity(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.charityRepository.GetCharityByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCharityNotFound
		}
		return err
	}
	return s.charityRepository.DeleteCharity(ctx, id)
}

func (s *charityService) DonationLinkQR(ctx context.Context, id string, size int) ([]byte, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}

	charity, err := s.charityRepository.GetCharityByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCharityNotFound
		}
		return nil, err
	}
	if charity.DonationLink == "" {
		return nil, domain.ErrCharityNoDonationLink
	}

	if size < 128 || size > 1024 {
		size = 256
	}
	return qrcode.Encode(charity.DonationLink, qrcode.Medium, size)
}
