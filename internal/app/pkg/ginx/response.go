package ginx

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// 统一响应辅助。本 API 的对外格式是扁平 JSON：
// 成功直接返回数据体，失败返回 {"error": ...} 或 {"message": ...}

// Error 错误响应，payload 为 {"error": <message>}
func Error(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, gin.H{"error": message})
}

// ErrorWithDetails 错误响应，附带底层错误细节
func ErrorWithDetails(c *gin.Context, httpCode int, message string, err error) {
	c.JSON(httpCode, gin.H{"error": message, "details": err.Error()})
}

// Message 提示响应，payload 为 {"message": <message>}
func Message(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, gin.H{"message": message})
}

// BadRequestValidation 参数绑定失败时的 400 响应
// validator 错误取第一条转成可读提示，其余错误原样透出
func BadRequestValidation(c *gin.Context, err error) {
	if validationErrs, ok := err.(validator.ValidationErrors); ok && len(validationErrs) > 0 {
		Message(c, 400, validationMessage(validationErrs[0]))
		return
	}
	Message(c, 400, err.Error())
}

// validationMessage 根据验证错误类型返回友好的错误消息
func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "email":
		return fieldErr.Field() + " must be a valid email address"
	case "min":
		return fieldErr.Field() + " must be at least " + fieldErr.Param()
	case "max":
		return fieldErr.Field() + " must be at most " + fieldErr.Param()
	default:
		return fieldErr.Field() + " is invalid"
	}
}
