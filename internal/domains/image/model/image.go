package model

import (
	"mime/multipart"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Image là metadata của một ảnh đã upload lên media host
type Image struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateImageRequest - POST /upload (multipart/form-data)
type CreateImageRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	File        *multipart.FileHeader `json:"image"`
}

func (r CreateImageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.File, validation.NotNil.Error("image file is required")),
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
	)
}
