package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"eduquest_server/internal/config"
	"eduquest_server/internal/dao/mysql"
	myredis "eduquest_server/internal/dao/redis"
	"eduquest_server/internal/https_server"
	"eduquest_server/internal/infrastructure/logger"
	"eduquest_server/internal/infrastructure/mq"
	"eduquest_server/internal/service"
	"eduquest_server/pkg/util/jwt"
	"eduquest_server/pkg/util/snowflake"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化数据库和 Repository 层
	repos := mysql.Init()
	zap.L().Info("数据库初始化成功")

	// 4. 初始化 Redis
	myredis.Init()
	zap.L().Info("Redis 初始化成功")

	// 5. 初始化 JWT 和雪花 ID
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	snowflake.Init(conf.SnowflakeConfig.MachineID)
	zap.L().Info("JWT/雪花ID 初始化成功")

	// 6. 初始化 Kafka 领域事件生产者（禁用时为 no-op）
	producer := mq.NewProducer(&conf.KafkaConfig)
	zap.L().Info("Kafka 生产者初始化成功")

	// 7. 初始化 Service 层 (依赖注入)
	service.InitServices(repos, producer)
	zap.L().Info("Service 层初始化成功")

	// 8. 初始化 HTTP 服务器
	engine := https_server.Init()
	zap.L().Info("HTTP 服务器初始化成功")

	// 9. 启动服务
	host := conf.MainConfig.Host
	port := conf.MainConfig.Port
	go func() {
		if err := engine.Run(fmt.Sprintf("%s:%d", host, port)); err != nil {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()
	zap.L().Info("服务已启动", zap.String("host", host), zap.Int("port", port))

	// 设置信号监听，等待退出
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")
	producer.Close()
	if err := myredis.Close(); err != nil {
		zap.L().Warn("close redis error", zap.Error(err))
	}
	zap.L().Info("服务器已关闭")
}
