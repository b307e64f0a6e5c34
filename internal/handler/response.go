package handler

import (
	"errors"
	"net/http"

	"eduquest_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// HandleSuccess 返回成功响应
// 响应体即业务数据本身（如 {"ok":true} / {"friends":[...]}），不额外包信封
func HandleSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// HandleError 通用错误处理方法
// 业务错误码经 errorx.HTTPStatus 映射为 HTTP 状态
// 使用示例：
//
//	if err := service.Svc.Relationship.Block(owner, req); err != nil {
//	    HandleError(c, err)
//	    return
//	}
func HandleError(c *gin.Context, err error) {
	// 1. 尝试断言为 *errorx.CodeError 类型
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		c.JSON(errorx.HTTPStatus(codeErr.Code), gin.H{
			"error": codeErr.Msg,
		})
		return
	}

	// 2. 系统错误或未知错误：记录日志并返回服务繁忙
	zap.L().Error("system error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": errorx.ErrServerBusy.Msg,
	})
}

// HandleParamError 处理参数绑定错误（带 validator 翻译支持）
// 自动识别 validator.ValidationErrors 类型并进行翻译
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		// 翻译后去除结构体名前缀
		translatedErrs := RemoveTopStruct(validationErrs.Translate(Trans))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": translatedErrs,
		})
		return
	}

	// 非 validator 错误（如 JSON 格式错误）
	zap.L().Error("param bind error", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{
		"error": errorx.ErrInvalidParam.Msg,
	})
}
