// Package optional 提供PATCH语义下的可空字段
//
// JSON中字段缺失、显式null、有值三种状态需要区分：
//   - 缺失：Set=false，不修改原值
//   - null：Set=true, Valid=false，清空原值
//   - 有值：Set=true, Valid=true
package optional

import (
	"bytes"
	"encoding/json"
)

// Nullable 可区分"未提供"与"显式null"的字段
type Nullable[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// Of 有值
func Of[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Valid: true, Value: v}
}

// Null 显式清空
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// FromPtr nil视为显式清空
func FromPtr[T any](p *T) Nullable[T] {
	if p == nil {
		return Null[T]()
	}
	return Of(*p)
}

// Ptr 转换为指针，未提供或null时返回nil
func (n Nullable[T]) Ptr() *T {
	if !n.Set || !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// ApplyTo 字段已提供时覆盖目标指针
func (n Nullable[T]) ApplyTo(dst **T) {
	if n.Set {
		*dst = n.Ptr()
	}
}

// UnmarshalJSON 只有字段出现在JSON中时才会被调用，因此出现即Set
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Valid = false
		var zero T
		n.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// MarshalJSON 未提供和null都输出null
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Set || !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
