package dto

import "github.com/xiebiao/library/internal/domain/category"

// CreateCategoryRequest 创建分类
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100" example:"Bilim Kurgu"`
}

// ToEntity 转为领域实体
func (r CreateCategoryRequest) ToEntity() *category.Category {
	return category.NewCategory(r.Name)
}

// UpdateCategoryRequest 分类部分更新
type UpdateCategoryRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
}

// ToPatch 转为领域补丁
func (r UpdateCategoryRequest) ToPatch() category.Patch {
	return category.Patch{Name: r.Name}
}

// CategoryResponse 分类
type CategoryResponse struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Bilim Kurgu"`
}

// NewCategoryResponse 转换
func NewCategoryResponse(c *category.Category) *CategoryResponse {
	return &CategoryResponse{ID: c.ID, Name: c.Name}
}

// NewCategoryList 转换列表
func NewCategoryList(items []*category.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(items))
	for _, c := range items {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}
