package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

// SecureHeaders 安全响应头中间件
// 原系统使用 helmet，这里用 unrolled/secure 提供同等的默认防护
func SecureHeaders() gin.HandlerFunc {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'self'",
	})

	return func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			// 绝对不要在中间件里用 Fatal，否则服务会挂掉
			zap.L().Error("secure headers middleware failed", zap.Error(err))
			c.Abort()
			return
		}
		c.Next()
	}
}
