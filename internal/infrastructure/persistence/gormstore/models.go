package gormstore

import "time"

// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain层实体不依赖GORM，Repository负责两者之间的转换
// 3. 不使用软删除，级联删除由仓储在事务内显式执行

// AuthorModel 作者表
type AuthorModel struct {
	ID        uint      `gorm:"primaryKey"`
	FirstName string    `gorm:"size:100;not null;comment:名"`
	LastName  string    `gorm:"size:100;not null;comment:姓"`
	Biography *string   `gorm:"type:text;comment:简介"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// CategoryModel 分类表
type CategoryModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:100;not null;comment:分类名称"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// BookModel 图书表
type BookModel struct {
	ID              uint      `gorm:"primaryKey"`
	Title           string    `gorm:"size:255;not null;comment:书名"`
	ISBN            string    `gorm:"column:isbn;uniqueIndex;size:20;not null;comment:ISBN号"`
	PublicationYear *int      `gorm:"comment:出版年份"`
	AuthorID        uint      `gorm:"index;not null;comment:作者ID"`
	CategoryID      *uint     `gorm:"index;comment:分类ID"`
	CreatedAt       time.Time `gorm:"comment:创建时间"`
	UpdatedAt       time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// PatronModel 读者表
type PatronModel struct {
	ID        uint      `gorm:"primaryKey"`
	FirstName string    `gorm:"size:100;not null;comment:名"`
	LastName  string    `gorm:"size:100;not null;comment:姓"`
	Email     string    `gorm:"uniqueIndex;size:255;not null;comment:邮箱"`
	Active    bool      `gorm:"not null;comment:是否启用"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (PatronModel) TableName() string {
	return "patrons"
}

// LoanModel 借阅表
// OpenBookID在未归还时等于BookID，归还后为NULL
// 唯一索引允许多个NULL，因此等价于"每本书最多一条未结借阅"的部分唯一约束
type LoanModel struct {
	ID           uint       `gorm:"primaryKey"`
	PatronID     uint       `gorm:"index;not null;comment:读者ID"`
	BookID       uint       `gorm:"index;not null;comment:图书ID"`
	CheckoutDate time.Time  `gorm:"type:date;not null;comment:借出日期"`
	ReturnDate   *time.Time `gorm:"type:date;comment:归还日期"`
	OpenBookID   *uint      `gorm:"uniqueIndex:uk_loans_open_book;comment:未归还时的图书ID"`
	CreatedAt    time.Time  `gorm:"comment:创建时间"`
	UpdatedAt    time.Time  `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (LoanModel) TableName() string {
	return "loans"
}
