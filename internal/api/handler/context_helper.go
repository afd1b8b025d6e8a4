package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/luizndev/unime-pdr/pkg/response"
)

// MustGetUserID extracts the user_id the JWT middleware injected.
// When ok is false a 401 was already written and the caller should return.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, "Acesso negado")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "Acesso negado")
		return "", false
	}
	return s, true
}
