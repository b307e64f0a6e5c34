package snowflake

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

var (
	node     *snowflake.Node
	nodeOnce sync.Once
)

// Init 初始化雪花算法节点
// 应在程序启动时调用一次，machineID 取自配置
func Init(machineID int64) {
	nodeOnce.Do(func() {
		if machineID < 0 || machineID > 1023 {
			machineID = 1 // 默认节点 ID
			zap.L().Warn("Invalid MachineID in config, using default value 1")
		}
		var err error
		node, err = snowflake.NewNode(machineID)
		if err != nil {
			zap.L().Fatal("Failed to initialize snowflake node", zap.Error(err))
		}
	})
}

// GenerateID 生成雪花 ID (int64)
// 未显式 Init 时退化为节点 1
func GenerateID() int64 {
	if node == nil {
		Init(1)
	}
	return node.Generate().Int64()
}

// GenerateIDString 生成雪花 ID (string)
// 用于 JSON 序列化，避免 JavaScript 精度丢失
func GenerateIDString() string {
	if node == nil {
		Init(1)
	}
	return node.Generate().String()
}
