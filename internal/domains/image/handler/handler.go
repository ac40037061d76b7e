package handler

import (
	"net/http"

	"gallery-backend/internal/domains/image/model"
	"gallery-backend/internal/domains/image/service"
	"gallery-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// FormFileField là tên field multipart chứa file ảnh
const FormFileField = "image"

type ImageHandler struct {
	imageService service.ServiceInterface
}

func NewImageHandler(imageService service.ServiceInterface) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
	}
}

// Upload creates an image record
// POST /upload
func (h *ImageHandler) Upload(c *gin.Context) {
	req := model.CreateImageRequest{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}

	// Thiếu file không phải lỗi ở đây, service sẽ trả ValidationError
	if file, err := c.FormFile(FormFileField); err == nil {
		req.File = file
	}

	img, err := h.imageService.CreateImage(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.WithMessage(c, http.StatusCreated, response.MsgImageUploaded, "image", img)
}

// List returns every image record
// GET /uploads
func (h *ImageHandler) List(c *gin.Context) {
	images, err := h.imageService.ListImages(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Collection(c, http.StatusOK, "images", images)
}
