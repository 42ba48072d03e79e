package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"mime/multipart"
	"testing"

	"charity-admin-backend/domain"
	"charity-admin-backend/internal/utils/storage"

	"github.com/stretchr/testify/assert"
)

type fakeAwsS3 struct {
	objects map[string][]byte
}

func newFakeAwsS3() *fakeAwsS3 {
	return &fakeAwsS3{objects: map[string][]byte{}}
}

func (f *fakeAwsS3) UploadFile(name string, file *multipart.FileHeader, dir string, allowed ...string) (string, error) {
	contentType := file.Header.Get("Content-Type")
	for _, a := range allowed {
		if a == contentType {
			key := dir + "/" + name
			f.objects[key] = nil
			return key, nil
		}
	}
	return "", storage.ErrContentTypeNotAllowed
}

func (f *fakeAwsS3) DownloadFile(ctx context.Context, objectKey string) ([]byte, error) {
	data, ok := f.objects[objectKey]
	if !ok {
		return nil, storage.ErrContentTypeNotAllowed
	}
	return data, nil
}

func (f *fakeAwsS3) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.example.org/" + objectKey
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func fileHeader(contentType string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "photo.png",
		Header:   map[string][]string{"Content-Type": {contentType}},
	}
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	service := NewUploadService(newFakeAwsS3())

	_, err := service.UploadImage(context.Background(), fileHeader("application/pdf"))

	assert.ErrorIs(t, err, domain.ErrFileTypeNotAllowed)
}

func TestVariantResizesImage(t *testing.T) {
	s3 := newFakeAwsS3()
	s3.objects["images/photo.png"] = pngBytes(t, 400, 200)
	service := NewUploadService(s3)

	data, contentType, err := service.Variant(context.Background(), domain.VariantQuery{
		Filename: "photo.png",
		Width:    100,
	})

	assert.NoError(t, err)
	assert.Equal(t, "image/png", contentType)

	resized, format, err := image.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 100, resized.Bounds().Dx())
	assert.Equal(t, 50, resized.Bounds().Dy())
}

func TestVariantWithoutDimensionsReturnsOriginalSize(t *testing.T) {
	s3 := newFakeAwsS3()
	s3.objects["images/photo.png"] = pngBytes(t, 40, 30)
	service := NewUploadService(s3)

	data, _, err := service.Variant(context.Background(), domain.VariantQuery{Filename: "photo.png"})

	assert.NoError(t, err)
	img, _, err := image.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
}

func TestVariantMissingObject(t *testing.T) {
	service := NewUploadService(newFakeAwsS3())

	_, _, err := service.Variant(context.Background(), domain.VariantQuery{Filename: "gone.png"})

	assert.ErrorIs(t, err, domain.ErrVariantNotFound)
}

func TestVariantDecodesWebp(t *testing.T) {
	// a 1x1 lossy webp; the decoder is registered by this package's blank import
	webp, err := base64.StdEncoding.DecodeString("UklGRiQAAABXRUJQVlA4IBgAAAAwAQCdASoBAAEAAwA0JaQAA3AA/vuUAAA=")
	assert.NoError(t, err)
	s3 := newFakeAwsS3()
	s3.objects["images/tiny.webp"] = webp
	service := NewUploadService(s3)

	data, contentType, err := service.Variant(context.Background(), domain.VariantQuery{Filename: "tiny.webp"})

	assert.NoError(t, err)
	// webp variants come back re-encoded as jpeg
	assert.Equal(t, "image/jpeg", contentType)
	assert.NotEmpty(t, data)
}
