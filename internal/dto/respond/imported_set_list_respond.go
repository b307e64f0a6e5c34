package respond

// ImportedSetListRespond 导入学习集列表响应
// 使用位置:
//   - internal/service/economy/service.go: GetImportedSets
type ImportedSetListRespond struct {
	Sets []string `json:"sets"`
}
