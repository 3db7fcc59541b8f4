package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const AdminTokenHeader = "X-Admin-Token"

// AdminAuth guards admin routes with a shared token. An empty token
// disables the admin API entirely.
func AdminAuth(token string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "admin api is disabled"})
			return
		}

		got := c.GetHeader(AdminTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid admin token"})
			return
		}

		c.Next()
	}
}
