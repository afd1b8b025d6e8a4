package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luizndev/unime-pdr/pkg/jwt"
	"github.com/luizndev/unime-pdr/pkg/redis"
	"github.com/luizndev/unime-pdr/pkg/response"
)

// JWTAuth extracts and verifies the bearer token from
// Authorization: Bearer <token>. A header without a second field is a
// 401; a present token that fails verification is a 400 — the status
// split the API has always had. The scheme word itself is ignored, only
// the second field matters. On success the user id claim is placed in
// the context; handlers keep reading identity from path parameters, the
// claim is available for logging and future tightening.
//
// rdb may be nil; the blacklist check degrades open without Redis.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Acesso negado")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[1] == "" {
			response.Unauthorized(c, "Acesso negado")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.BadRequest(c, "Token inválido!")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blacklisted {
				response.BadRequest(c, "Token inválido!")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("token_jti", claims.ID)
		var exp time.Time
		if claims.ExpiresAt != nil {
			exp = claims.ExpiresAt.Time
		}
		c.Set("token_exp", exp)

		c.Next()
	}
}
