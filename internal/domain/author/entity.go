package author

import (
	"github.com/xiebiao/library/internal/domain/shared"
	"github.com/xiebiao/library/pkg/optional"
)

// Author 作者实体
// 删除作者会级联删除其图书及图书的借阅记录
type Author struct {
	ID        uint
	FirstName string
	LastName  string
	Biography *string // 可选
}

// NewAuthor 创建作者
func NewAuthor(firstName, lastName string, biography *string) *Author {
	return &Author{
		FirstName: firstName,
		LastName:  lastName,
		Biography: biography,
	}
}

// FullName 名 + 姓
func (a *Author) FullName() string {
	return a.FirstName + " " + a.LastName
}

// Validate 名和姓必填
func (a *Author) Validate() error {
	return shared.FirstError(
		shared.Required("first_name", a.FirstName),
		shared.Required("last_name", a.LastName),
	)
}

// Apply 合并补丁并校验合并结果
func (a *Author) Apply(p Patch) error {
	if p.FirstName != nil {
		a.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		a.LastName = *p.LastName
	}
	p.Biography.ApplyTo(&a.Biography)
	return a.Validate()
}

// Patch 作者部分更新，nil表示不修改
type Patch struct {
	FirstName *string
	LastName  *string
	Biography optional.Nullable[string] // null清空简介
}

// Validate 出现的必填字段不能为空
func (p Patch) Validate() error {
	return shared.FirstError(
		shared.RequiredIfSet("first_name", p.FirstName),
		shared.RequiredIfSet("last_name", p.LastName),
	)
}
