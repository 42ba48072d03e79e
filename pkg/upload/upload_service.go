package upload

import (
	"bytes"
	"context"
	"errors"
	"image"
	"mime/multipart"
	"path/filepath"
	"strings"

	"charity-admin-backend/domain"
	"charity-admin-backend/internal/utils/storage"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	// uploads allow webp but imaging registers no decoder for it
	_ "golang.org/x/image/webp"
)

type (
	UploadService interface {
		UploadFile(ctx context.Context, file *multipart.FileHeader) (domain.UploadResponse, error)
		UploadImage(ctx context.Context, file *multipart.FileHeader) (domain.UploadResponse, error)
		Variant(ctx context.Context, query domain.VariantQuery) ([]byte, string, error)
	}

	uploadService struct {
		s3 storage.AwsS3
	}
)

func NewUploadService(s3 storage.AwsS3) UploadService {
	return &uploadService{s3: s3}
}

func (s *uploadService) UploadFile(ctx context.Context, file *multipart.FileHeader) (domain.UploadResponse, error) {
	if file == nil {
		return domain.UploadResponse{}, domain.ErrFileNotProvided
	}

	key, err := s.s3.UploadFile(uuid.New().String(), file, "uploads", storage.AllowFile...)
	if err != nil {
		if errors.Is(err, storage.ErrContentTypeNotAllowed) {
			return domain.UploadResponse{}, domain.ErrFileTypeNotAllowed
		}
		return domain.UploadResponse{}, err
	}

	return domain.UploadResponse{URL: s.s3.GetPublicLinkKey(key)}, nil
}

func (s *uploadService) UploadImage(ctx context.Context, file *multipart.FileHeader) (domain.UploadResponse, error) {
	if file == nil {
		return domain.UploadResponse{}, domain.ErrFileNotProvided
	}

	key, err := s.s3.UploadFile(uuid.New().String(), file, "images", storage.AllowImage...)
	if err != nil {
		if errors.Is(err, storage.ErrContentTypeNotAllowed) {
			return domain.UploadResponse{}, domain.ErrFileTypeNotAllowed
		}
		return domain.UploadResponse{}, err
	}

	return domain.UploadResponse{URL: s.s3.GetPublicLinkKey(key)}, nil
}

func (s *uploadService) Variant(ctx context.Context, query domain.VariantQuery) ([]byte, string, error) {
	key := "images/" + query.Filename

	raw, err := s.s3.DownloadFile(ctx, key)
	if err != nil {
		return nil, "", domain.ErrVariantNotFound
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", err
	}

	resized := resize(img, query.Width, query.Height)

	format, contentType := variantFormat(query.Filename)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), contentType, nil
}

// width or height of 0 keeps the aspect ratio on that axis
func resize(img image.Image, width, height int) image.Image {
	if width <= 0 && height <= 0 {
		return img
	}
	if width > 0 && height > 0 {
		return imaging.Fit(img, width, height, imaging.Lanczos)
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

func variantFormat(filename string) (imaging.Format, string) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return imaging.PNG, "image/png"
	case ".gif":
		return imaging.GIF, "image/gif"
	default:
		return imaging.JPEG, "image/jpeg"
	}
}
