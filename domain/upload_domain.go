package domain

import "errors"

var (
	MessageSuccessUploadFile = "file uploaded successfully"

	MessageFailedUploadFile  = "failed to upload file"
	MessageFailedGetVariant  = "failed to retrieve image variant"
	MessageFailedMissingFile = "no file provided"

	ErrFileNotProvided    = errors.New("no file provided")
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrVariantNotFound    = errors.New("image not found")
)

type (
	UploadResponse struct {
		URL string `json:"url"`
	}

	VariantQuery struct {
		Filename string
		Width    int
		Height   int
	}
)
