package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/library/internal/application/author"
	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	authors author.Service
	detail  *appauthor.GetAuthorDetailUseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(authors author.Service, detail *appauthor.GetAuthorDetailUseCase) *AuthorHandler {
	return &AuthorHandler{authors: authors, detail: detail}
}

// List 作者列表
// @Summary      作者列表
// @Tags         作者
// @Produce      json
// @Param        skip  query int false "跳过条数" minimum(0)
// @Param        limit query int false "返回条数" minimum(0) maximum(500)
// @Success      200 {object} response.Response{data=response.ListData{list=[]dto.AuthorResponse}}
// @Failure      422 {object} response.Response "参数错误"
// @Router       /authors [get]
func (h *AuthorHandler) List(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}
	params := q.Params()
	items, err := h.authors.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithList(c, dto.NewAuthorList(items), params.Skip, params.Limit)
}

// Get 作者详情（含图书）
// @Summary      作者详情
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=dto.AuthorDetailResponse}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /authors/{id} [get]
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	detail, err := h.detail.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewAuthorDetailResponse(detail.Author, detail.Books))
}

// Create 创建作者
// @Summary      创建作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      201 {object} response.Response{data=dto.AuthorResponse}
// @Failure      422 {object} response.Response "参数错误"
// @Router       /authors [post]
func (h *AuthorHandler) Create(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.authors.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewAuthorResponse(a))
}

// Update 部分更新作者
// @Summary      更新作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        id      path int                     true "作者ID"
// @Param        request body dto.UpdateAuthorRequest true "要修改的字段，biography传null清空"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      404 {object} response.Response "作者不存在"
// @Failure      422 {object} response.Response "参数错误"
// @Router       /authors/{id} [patch]
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateAuthorRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.authors.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewAuthorResponse(a))
}

// Delete 删除作者，级联删除其图书及借阅
// @Summary      删除作者
// @Tags         作者
// @Param        id path int true "作者ID"
// @Success      204
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /authors/{id} [delete]
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.authors.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
