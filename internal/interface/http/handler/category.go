package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/library/internal/domain/category"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/pkg/response"
)

// CategoryHandler 分类HTTP处理器
type CategoryHandler struct {
	categories category.Service
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(categories category.Service) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List 分类列表
// @Summary      分类列表
// @Tags         分类
// @Produce      json
// @Param        skip  query int false "跳过条数" minimum(0)
// @Param        limit query int false "返回条数" minimum(0) maximum(500)
// @Success      200 {object} response.Response{data=response.ListData{list=[]dto.CategoryResponse}}
// @Failure      422 {object} response.Response "参数错误"
// @Router       /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}
	params := q.Params()
	items, err := h.categories.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithList(c, dto.NewCategoryList(items), params.Skip, params.Limit)
}

// Get 分类详情
// @Summary      分类详情
// @Tags         分类
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      404 {object} response.Response "分类不存在"
// @Failure      422 {object} response.Response "ID格式错误"
// @Router       /categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewCategoryResponse(item))
}

// Create 创建分类
// @Summary      创建分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCategoryRequest true "分类信息"
// @Success      201 {object} response.Response{data=dto.CategoryResponse}
// @Failure      409 {object} response.Response "分类名称已存在"
// @Failure      422 {object} response.Response "参数错误"
// @Router       /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.categories.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewCategoryResponse(item))
}

// Update 部分更新分类
// @Summary      更新分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Param        id      path int                    true "分类ID"
// @Param        request body dto.UpdateCategoryRequest true "要修改的字段"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      404 {object} response.Response "分类不存在"
// @Failure      409 {object} response.Response "分类名称已存在"
// @Failure      422 {object} response.Response "参数错误"
// @Router       /categories/{id} [patch]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.categories.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewCategoryResponse(item))
}

// Delete 删除分类，其图书的分类被置空
// @Summary      删除分类
// @Tags         分类
// @Param        id path int true "分类ID"
// @Success      204
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
