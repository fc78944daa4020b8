package category

import "github.com/xiebiao/library/internal/domain/shared"

// Category 图书分类，名称全局唯一
// 删除分类时，引用它的图书的category_id被置空
type Category struct {
	ID   uint
	Name string
}

// NewCategory 创建分类
func NewCategory(name string) *Category {
	return &Category{Name: name}
}

// Validate 名称必填
func (c *Category) Validate() error {
	return shared.Required("name", c.Name)
}

// Apply 合并补丁并校验
func (c *Category) Apply(p Patch) error {
	if p.Name != nil {
		c.Name = *p.Name
	}
	return c.Validate()
}

// Patch 分类部分更新
type Patch struct {
	Name *string
}

// Validate 出现的name不能为空
func (p Patch) Validate() error {
	return shared.RequiredIfSet("name", p.Name)
}
