// Package https_server 提供 HTTP 服务器的初始化和配置
// 负责创建 Gin 引擎实例并配置中间件和路由
package https_server

import (
	"eduquest_server/internal/handler"
	"eduquest_server/internal/infrastructure/logger"
	"eduquest_server/internal/infrastructure/middleware"
	"eduquest_server/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Init 初始化 HTTP 服务器并返回 Gin 引擎实例
// 配置顺序：
//  1. 创建 Gin 引擎（空白，不含默认中间件）
//  2. 注册日志和恢复中间件
//  3. 配置 CORS 跨域规则和安全响应头
//  4. 注册业务路由
//
// 返回: 配置完成的 Gin 引擎实例
func Init() *gin.Engine {
	// 初始化参数校验错误翻译器
	if err := handler.InitTrans(); err != nil {
		zap.L().Fatal("init validator translator failed", zap.Error(err))
	}

	// 创建空白 Gin 引擎（不使用 gin.Default() 以便完全控制中间件）
	engine := gin.New()

	// 注册自定义 Zap 日志中间件，替代 Gin 默认的日志
	engine.Use(logger.GinLogger())

	// 注册 Panic 恢复中间件，捕获 panic 并记录堆栈
	// 参数 true 表示在日志中包含堆栈信息
	engine.Use(logger.GinRecovery(true))

	// 配置 CORS 跨域规则
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"} // 允许所有来源（生产环境应指定具体域名）
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	// 安全响应头
	engine.Use(middleware.SecureHeaders())

	// 注册所有业务路由
	router.RegisterRoutes(engine)

	return engine
}
