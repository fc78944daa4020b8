package handler

import (
	"github.com/gin-gonic/gin"

	apploan "github.com/xiebiao/library/internal/application/loan"
	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/pkg/response"
)

// LoanHandler 借阅HTTP处理器
// 借出和更新走应用层用例（事件、指标），其余直接调用领域服务
type LoanHandler struct {
	loans    loan.Service
	checkout *apploan.CheckoutUseCase
	update   *apploan.UpdateLoanUseCase
}

// NewLoanHandler 创建借阅处理器
func NewLoanHandler(loans loan.Service, checkout *apploan.CheckoutUseCase, update *apploan.UpdateLoanUseCase) *LoanHandler {
	return &LoanHandler{loans: loans, checkout: checkout, update: update}
}

// List 借阅列表
// @Summary      借阅列表
// @Tags         借阅
// @Produce      json
// @Param        skip  query int false "跳过条数" minimum(0)
// @Param        limit query int false "返回条数" minimum(0) maximum(500)
// @Success      200 {object} response.Response{data=response.ListData{list=[]dto.LoanResponse}}
// @Failure      422 {object} response.Response "参数错误"
// @Router       /loans [get]
func (h *LoanHandler) List(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}
	params := q.Params()
	items, err := h.loans.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithList(c, dto.NewLoanList(items), params.Skip, params.Limit)
}

// Get 借阅详情
// @Summary      借阅详情
// @Tags         借阅
// @Produce      json
// @Param        id path int true "借阅ID"
// @Success      200 {object} response.Response{data=dto.LoanResponse}
// @Failure      404 {object} response.Response "借阅记录不存在"
// @Router       /loans/{id} [get]
func (h *LoanHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	l, err := h.loans.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewLoanResponse(l))
}

// Create 借出图书
// @Summary      借出图书
// @Description  同一本书同一时刻只能有一条未归还的借阅
// @Tags         借阅
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateLoanRequest true "借阅信息"
// @Success      201 {object} response.Response{data=dto.LoanResponse}
// @Failure      400 {object} response.Response "图书已借出"
// @Failure      422 {object} response.Response "参数错误、日期顺序错误或引用不存在"
// @Router       /loans [post]
func (h *LoanHandler) Create(c *gin.Context) {
	var req dto.CreateLoanRequest
	if !bindJSON(c, &req) {
		return
	}
	l, err := h.checkout.Execute(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewLoanResponse(l))
}

// Update 部分更新借阅（登记归还）
// @Summary      更新借阅
// @Description  return_date传日期表示归还，传null表示重新借出
// @Tags         借阅
// @Accept       json
// @Produce      json
// @Param        id      path int                   true "借阅ID"
// @Param        request body dto.UpdateLoanRequest true "要修改的字段"
// @Success      200 {object} response.Response{data=dto.LoanResponse}
// @Failure      400 {object} response.Response "图书已借出"
// @Failure      404 {object} response.Response "借阅记录不存在"
// @Failure      422 {object} response.Response "参数错误或日期顺序错误"
// @Router       /loans/{id} [patch]
func (h *LoanHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateLoanRequest
	if !bindJSON(c, &req) {
		return
	}
	l, err := h.update.Execute(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewLoanResponse(l))
}

// Delete 删除借阅记录
// @Summary      删除借阅
// @Tags         借阅
// @Param        id path int true "借阅ID"
// @Success      204
// @Failure      404 {object} response.Response "借阅记录不存在"
// @Router       /loans/{id} [delete]
func (h *LoanHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.loans.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
