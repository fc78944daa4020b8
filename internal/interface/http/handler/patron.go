package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/patron"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/pkg/response"
	"github.com/xiebiao/library/pkg/textutil"
)

// PatronHandler 读者HTTP处理器
type PatronHandler struct {
	patrons patron.Service
}

// NewPatronHandler 创建读者处理器
func NewPatronHandler(patrons patron.Service) *PatronHandler {
	return &PatronHandler{patrons: patrons}
}

// List 读者列表
// @Summary      读者列表
// @Tags         读者
// @Produce      json
// @Param        skip  query int false "跳过条数" minimum(0)
// @Param        limit query int false "返回条数" minimum(0) maximum(500)
// @Success      200 {object} response.Response{data=response.ListData{list=[]dto.PatronResponse}}
// @Failure      422 {object} response.Response "参数错误"
// @Router       /patrons [get]
func (h *PatronHandler) List(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}
	params := q.Params()
	items, err := h.patrons.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithList(c, dto.NewPatronList(items), params.Skip, params.Limit)
}

// Get 读者详情
// @Summary      读者详情
// @Tags         读者
// @Produce      json
// @Param        id path int true "读者ID"
// @Success      200 {object} response.Response{data=dto.PatronResponse}
// @Failure      404 {object} response.Response "读者不存在"
// @Failure      422 {object} response.Response "ID格式错误"
// @Router       /patrons/{id} [get]
func (h *PatronHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.patrons.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewPatronResponse(item))
}

// Create 创建读者
// @Summary      创建读者
// @Tags         读者
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePatronRequest true "读者信息"
// @Success      201 {object} response.Response{data=dto.PatronResponse}
// @Failure      409 {object} response.Response "邮箱已存在"
// @Failure      422 {object} response.Response "参数错误"
// @Router       /patrons [post]
func (h *PatronHandler) Create(c *gin.Context) {
	var req dto.CreatePatronRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.patrons.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	// 邮箱脱敏后再记录
	zap.L().Info("patron registered",
		zap.Uint("patron_id", item.ID),
		zap.String("email", textutil.MaskEmail(item.Email)),
		zap.String("request_id", c.GetString("request_id")),
	)
	response.Created(c, dto.NewPatronResponse(item))
}

// Update 部分更新读者
// @Summary      更新读者
// @Tags         读者
// @Accept       json
// @Produce      json
// @Param        id      path int                    true "读者ID"
// @Param        request body dto.UpdatePatronRequest true "要修改的字段"
// @Success      200 {object} response.Response{data=dto.PatronResponse}
// @Failure      404 {object} response.Response "读者不存在"
// @Failure      409 {object} response.Response "邮箱已存在"
// @Failure      422 {object} response.Response "参数错误"
// @Router       /patrons/{id} [patch]
func (h *PatronHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdatePatronRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.patrons.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewPatronResponse(item))
}

// Delete 删除读者，级联删除其借阅
// @Summary      删除读者
// @Tags         读者
// @Param        id path int true "读者ID"
// @Success      204
// @Failure      404 {object} response.Response "读者不存在"
// @Router       /patrons/{id} [delete]
func (h *PatronHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.patrons.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
