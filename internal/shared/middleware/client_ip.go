package middleware

import (
	"context"

	"gallery-backend/internal/shared/utils"

	"github.com/gin-gonic/gin"
)

const ClientIPKey = "client_ip"

type clientIPCtxKey struct{}

// ClientIP gắn IP của client vào gin context và request context
// Đăng ký sớm trong chain để Logger và handlers đều dùng được
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := utils.ExtractClientIP(c.Request)

		c.Set(ClientIPKey, ip)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), clientIPCtxKey{}, ip))

		c.Next()
	}
}

// ClientIPFromContext trả về "" nếu middleware chưa chạy
func ClientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPCtxKey{}).(string)
	return ip
}
