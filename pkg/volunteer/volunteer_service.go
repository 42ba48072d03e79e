package volunteer

import (
	"context"
	"errors"
	"fmt"
	"log"

	"charity-admin-backend/domain"
	"charity-admin-backend/entities"
	"charity-admin-backend/internal/utils/mailing"
	"charity-admin-backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	VolunteerService interface {
		List(ctx context.Context, query domain.VolunteerListQuery) ([]domain.Volunteer, domain.VolunteerTotals, error)
		Apply(ctx context.Context, req domain.VolunteerApplicationRequest) (domain.Volunteer, error)
		Delete(ctx context.Context, id string) error
		UpdateStatus(ctx context.Context, id string, req domain.UpdateVolunteerStatusRequest) (domain.Volunteer, error)
		SendEmail(ctx context.Context, req domain.SendVolunteerEmailRequest) error
		Totals(ctx context.Context) (domain.VolunteerTotals, error)
	}

	volunteerService struct {
		volunteerRepository VolunteerRepository
		mailer              mailing.Mailer
		s3                  storage.AwsS3
	}
)

const (
	statusPending  = "pending"
	statusApproved = "approved"
	statusRejected = "rejected"
)

func NewVolunteerService(volunteerRepository VolunteerRepository, mailer mailing.Mailer, s3 storage.AwsS3) VolunteerService {
	return &volunteerService{
		volunteerRepository: volunteerRepository,
		mailer:              mailer,
		s3:                  s3,
	}
}

func toDomain(volunteer *entities.Volunteer) domain.Volunteer {
	return domain.Volunteer{
		ID:           volunteer.ID.String(),
		FullName:     volunteer.FullName,
		Email:        volunteer.Email,
		Phone:        volunteer.Phone,
		City:         volunteer.City,
		District:     volunteer.District,
		Availability: volunteer.Availability,
		Role:         volunteer.Role,
		Interests:    volunteer.Interests,
		Skills:       volunteer.Skills,
		Message:      volunteer.Message,
		Status:       volunteer.Status,
		CVFile:       volunteer.CVFile,
		CreatedAt:    volunteer.CreatedAt,
	}
}

func (s *volunteerService) List(ctx context.Context, query domain.VolunteerListQuery) ([]domain.Volunteer, domain.VolunteerTotals, error) {
	volunteers, err := s.volunteerRepository.List(ctx, query.Q, query.Status)
	if err != nil {
		return nil, domain.VolunteerTotals{}, err
	}

	totals, err := s.Totals(ctx)
	if err != nil {
		return nil, domain.VolunteerTotals{}, err
	}

	result := make([]domain.Volunteer, 0, len(volunteers))
	for _, volunteer := range volunteers {
		result = append(result, toDomain(volunteer))
	}

	return result, totals, nil
}

func (s *volunteerService) Apply(ctx context.Context, req domain.VolunteerApplicationRequest) (domain.Volunteer, error) {
	volunteer := &entities.Volunteer{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		City:         req.City,
		District:     req.District,
		Availability: req.Availability,
		Role:         req.Role,
		Interests:    req.Interests,
		Skills:       req.Skills,
		Message:      req.Message,
		Status:       statusPending,
	}

	if req.CVFile != nil {
		key, err := s.s3.UploadFile(uuid.New().String(), req.CVFile, "cv", storage.AllowFile...)
		if err != nil {
			return domain.Volunteer{}, err
		}
		volunteer.CVFile = s.s3.GetPublicLinkKey(key)
	}

	if err := s.volunteerRepository.CreateVolunteer(ctx, volunteer); err != nil {
		return domain.Volunteer{}, err
	}

	return toDomain(volunteer), nil
}

func (s *volunteerService) Delete(ctx context.Context, id string) error {
	volunteerID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.volunteerRepository.GetVolunteerByID(ctx, volunteerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrVolunteerNotFound
		}
		return err
	}

	return s.volunteerRepository.DeleteVolunteer(ctx, volunteerID)
}

func (s *volunteerService) UpdateStatus(ctx context.Context, id string, req domain.UpdateVolunteerStatusRequest) (domain.Volunteer, error) {
	volunteerID, err := uuid.Parse(id)
	if err != nil {
		return domain.Volunteer{}, domain.ErrParseUUID
	}

	if req.Status != statusApproved && req.Status != statusRejected {
		return domain.Volunteer{}, domain.ErrInvalidVolunteerStatus
	}

	volunteer, err := s.volunteerRepository.GetVolunteerByID(ctx, volunteerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Volunteer{}, domain.ErrVolunteerNotFound
		}
		return domain.Volunteer{}, err
	}

	volunteer.Status = req.Status
	if err := s.volunteerRepository.UpdateVolunteer(ctx, volunteer); err != nil {
		return domain.Volunteer{}, err
	}

	// mail failure must not roll back the status change
	if err := s.mailer.SendMail(volunteer.Email, decisionSubject(req.Status), decisionBody(volunteer.FullName, req.Status)); err != nil {
		log.Printf("failed to send volunteer decision email to %s: %v", volunteer.Email, err)
	}

	return toDomain(volunteer), nil
}

func (s *volunteerService) SendEmail(ctx context.Context, req domain.SendVolunteerEmailRequest) error {
	volunteerID, err := uuid.Parse(req.VolunteerID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.volunteerRepository.GetVolunteerByID(ctx, volunteerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrVolunteerNotFound
		}
		return err
	}

	body := fmt.Sprintf("<p>%s</p>", req.Message)
	return s.mailer.SendMail(req.Email, req.Subject, body)
}

func (s *volunteerService) Totals(ctx context.Context) (domain.VolunteerTotals, error) {
	total, err := s.volunteerRepository.Count(ctx)
	if err != nil {
		return domain.VolunteerTotals{}, err
	}
	pending, err := s.volunteerRepository.CountByStatus(ctx, statusPending)
	if err != nil {
		return domain.VolunteerTotals{}, err
	}
	approved, err := s.volunteerRepository.CountByStatus(ctx, statusApproved)
	if err != nil {
		return domain.VolunteerTotals{}, err
	}
	rejected, err := s.volunteerRepository.CountByStatus(ctx, statusRejected)
	if err != nil {
		return domain.VolunteerTotals{}, err
	}

	return domain.VolunteerTotals{
		Total:    total,
		Pending:  pending,
		Approved: approved,
		Rejected: rejected,
	}, nil
}

func decisionSubject(status string) string {
	if status == statusApproved {
		return "Your volunteer application has been approved"
	}
	return "Update on your volunteer application"
}

func decisionBody(name, status string) string {
	if status == statusApproved {
		return fmt.Sprintf(`
		<h3>Dear %s,</h3>
		<p>Congratulations! Your volunteer application has been <b>approved</b>.</p>
		<p>Our team will reach out to you shortly with the next steps.</p>
		<p>Thank you for choosing to make a difference.</p>
		`, name)
	}
	return fmt.Sprintf(`
	<h3>Dear %s,</h3>
	<p>Thank you for your interest in volunteering with us.</p>
	<p>After careful review, we are unable to accept your application at this time.</p>
	<p>We encourage you to apply again in the future.</p>
	`, name)
}
