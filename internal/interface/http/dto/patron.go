package dto

import "github.com/xiebiao/library/internal/domain/patron"

// CreatePatronRequest 创建读者，active缺省为true
type CreatePatronRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100" example:"Ahmet"`
	LastName  string `json:"last_name" binding:"required,max=100" example:"Yılmaz"`
	Email     string `json:"email" binding:"required,max=255" example:"ahmet.yilmaz@example.com"`
	Active    *bool  `json:"active" example:"true"`
}

// ToEntity 转为领域实体
func (r CreatePatronRequest) ToEntity() *patron.Patron {
	return patron.NewPatron(r.FirstName, r.LastName, r.Email, r.Active)
}

// UpdatePatronRequest 读者部分更新
type UpdatePatronRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	Email     *string `json:"email" binding:"omitempty,max=255"`
	Active    *bool   `json:"active"`
}

// ToPatch 转为领域补丁
func (r UpdatePatronRequest) ToPatch() patron.Patch {
	return patron.Patch{FirstName: r.FirstName, LastName: r.LastName, Email: r.Email, Active: r.Active}
}

// PatronResponse 读者
type PatronResponse struct {
	ID        uint   `json:"id" example:"1"`
	FirstName string `json:"first_name" example:"Ahmet"`
	LastName  string `json:"last_name" example:"Yılmaz"`
	Email     string `json:"email" example:"ahmet.yilmaz@example.com"`
	Active    bool   `json:"active" example:"true"`
}

// NewPatronResponse 转换
func NewPatronResponse(p *patron.Patron) *PatronResponse {
	return &PatronResponse{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName, Email: p.Email, Active: p.Active}
}

// NewPatronList 转换列表
func NewPatronList(items []*patron.Patron) []*PatronResponse {
	out := make([]*PatronResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewPatronResponse(p))
	}
	return out
}
