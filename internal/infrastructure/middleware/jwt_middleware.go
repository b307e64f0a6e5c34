package middleware

import (
	"net/http"
	"strings"

	"eduquest_server/pkg/errorx"
	"eduquest_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

// JWTAuth JWT 认证中间件
// 验证 Access Token 并将用户名存入上下文
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 从 Header 获取 Token
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":  errorx.CodeUnauthorized,
				"error": "authentication required",
			})
			return
		}

		// 2. 解析 Bearer Token
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":  errorx.CodeUnauthorized,
				"error": "malformed authorization header, expected Bearer token",
			})
			return
		}

		// 3. 验证 Token
		claims, err := jwt.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":  errorx.CodeUnauthorized,
				"error": "token expired or invalid",
			})
			return
		}

		// 4. 验证是否为 Access Token
		if claims.Subject != "access_token" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":  errorx.CodeUnauthorized,
				"error": "an access token is required",
			})
			return
		}

		// 5. 将用户名存入上下文，供后续 Handler 使用
		c.Set("username", claims.Username)
		c.Next()
	}
}
