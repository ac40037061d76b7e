package handler

import (
	"net/http"

	"gallery-backend/internal/domains/admin/model"
	"gallery-backend/internal/domains/admin/service"
	"gallery-backend/internal/shared/apperr"
	"gallery-backend/internal/shared/middleware"
	"gallery-backend/internal/shared/response"
	"gallery-backend/internal/shared/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AdminHandler struct {
	adminService service.ServiceInterface
}

func NewAdminHandler(adminService service.ServiceInterface) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// Login verifies admin credentials, không cấp token hay session
// POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperr.NewValidation(apperr.MsgCredentialsRequired, nil))
		return
	}

	if err := h.adminService.Login(c.Request.Context(), req); err != nil {
		if apperr.IsKind(err, apperr.KindAuth) {
			ip := middleware.ClientIPFromContext(c.Request.Context())
			log.Warn().
				Str("username", req.Username).
				Str("ip", ip).
				Bool("private_ip", utils.IsPrivateIP(ip)).
				Msg("Admin login rejected")
		}
		response.FromError(c, err)
		return
	}

	response.Message(c, http.StatusOK, response.MsgLoginSucceeded)
}
