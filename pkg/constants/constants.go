package constants

const (
	// REDIS_TIMEOUT 缓存默认过期时间（分钟）
	REDIS_TIMEOUT = 30

	// DEFAULT_THEME 每个用户默认拥有并默认启用的主题
	DEFAULT_THEME = "space"

	// AUTO_PROVISION_PASSWORD 宽松模式下自动注册用户的初始密码
	AUTO_PROVISION_PASSWORD = "password"
)
