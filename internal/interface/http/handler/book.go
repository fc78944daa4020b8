package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/pkg/response"
	"github.com/xiebiao/library/pkg/textutil"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	books book.Service
}

// NewBookHandler 创建图书处理器
func NewBookHandler(books book.Service) *BookHandler {
	return &BookHandler{books: books}
}

// List 图书列表
// @Summary      图书列表
// @Tags         图书
// @Produce      json
// @Param        skip  query int false "跳过条数" minimum(0)
// @Param        limit query int false "返回条数" minimum(0) maximum(500)
// @Success      200 {object} response.Response{data=response.ListData{list=[]dto.BookResponse}}
// @Failure      422 {object} response.Response "参数错误"
// @Router       /books [get]
func (h *BookHandler) List(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}
	params := q.Params()
	items, err := h.books.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithList(c, dto.NewBookList(items), params.Skip, params.Limit)
}

// Get 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      422 {object} response.Response "ID格式错误"
// @Router       /books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.books.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(item))
}

// Create 创建图书
// @Summary      创建图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=dto.BookResponse}
// @Failure      409 {object} response.Response "ISBN已存在"
// @Failure      422 {object} response.Response "参数错误"
// @Router       /books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.books.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	if !textutil.ValidISBN13(item.ISBN) {
		zap.L().Debug("isbn checksum mismatch", zap.Uint("book_id", item.ID), zap.String("isbn", item.ISBN))
	}
	response.Created(c, dto.NewBookResponse(item))
}

// Update 部分更新图书
// @Summary      更新图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id      path int                    true "图书ID"
// @Param        request body dto.UpdateBookRequest true "要修改的字段"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      409 {object} response.Response "ISBN已存在"
// @Failure      422 {object} response.Response "参数错误"
// @Router       /books/{id} [patch]
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateBookRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.books.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(item))
}

// Delete 删除图书，级联删除其借阅
// @Summary      删除图书
// @Tags         图书
// @Param        id path int true "图书ID"
// @Success      204
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.books.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
