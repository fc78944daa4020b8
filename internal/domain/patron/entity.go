package patron

import (
	"strings"

	"github.com/xiebiao/library/internal/domain/shared"
)

// Patron 读者实体
// 邮箱去除首尾空白后全局唯一，不校验格式；删除读者会级联删除其借阅记录
type Patron struct {
	ID        uint
	FirstName string
	LastName  string
	Email     string
	Active    bool
}

// NewPatron 创建读者，active为nil时默认启用
func NewPatron(firstName, lastName, email string, active *bool) *Patron {
	p := &Patron{
		FirstName: firstName,
		LastName:  lastName,
		Email:     strings.TrimSpace(email),
		Active:    true,
	}
	if active != nil {
		p.Active = *active
	}
	return p
}

// Validate 姓名、邮箱必填
func (p *Patron) Validate() error {
	return shared.FirstError(
		shared.Required("first_name", p.FirstName),
		shared.Required("last_name", p.LastName),
		shared.Required("email", p.Email),
	)
}

// Apply 合并补丁并校验
func (p *Patron) Apply(patch Patch) error {
	if patch.FirstName != nil {
		p.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		p.LastName = *patch.LastName
	}
	if patch.Email != nil {
		p.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Active != nil {
		p.Active = *patch.Active
	}
	return p.Validate()
}

// Patch 读者部分更新
type Patch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Active    *bool
}

// Validate 出现的字段需合法
func (p Patch) Validate() error {
	return shared.FirstError(
		shared.RequiredIfSet("first_name", p.FirstName),
		shared.RequiredIfSet("last_name", p.LastName),
		shared.RequiredIfSet("email", p.Email),
	)
}
