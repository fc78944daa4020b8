package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// parseID 解析路径参数id，非正整数返回422
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, apperrors.ErrInvalidID)
		return 0, false
	}
	return uint(id), true
}

// bindJSON 绑定并校验请求体，失败时写出422
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, bindError(err))
		return false
	}
	return true
}

// bindList 绑定分页参数
func bindList(c *gin.Context) (dto.ListQuery, bool) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return q, false
	}
	return q, true
}

func bindError(err error) error {
	return &apperrors.AppError{
		Kind:    apperrors.KindValidation,
		Code:    apperrors.ErrCodeBindError,
		Message: "参数错误: " + err.Error(),
		Err:     err,
	}
}
