// Package filter 提供基于内存列表的多条件过滤 / 搜索
package filter

import (
	"strings"

	"github.com/samber/lo"
)

// All 哨兵值，表示不过滤
const All = "all"

// Predicate 过滤条件
type Predicate[T any] func(item T) bool

// Apply 返回满足全部条件的元素，保持原有顺序（不排序）
func Apply[S ~[]T, T any](items S, preds ...Predicate[T]) S {
	return S(lo.Filter(items, func(item T, _ int) bool {
		for _, pred := range preds {
			if !pred(item) {
				return false
			}
		}
		return true
	}))
}

// Search 大小写不敏感的子串匹配，任一字段包含即命中；空白搜索词匹配全部
func Search[T any](term string, fields func(item T) []string) Predicate[T] {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return matchAll[T]
	}
	return func(item T) bool {
		return lo.ContainsBy(fields(item), func(field string) bool {
			return strings.Contains(strings.ToLower(field), term)
		})
	}
}

// Equal 精确匹配，value 为空或 All 时不过滤
func Equal[T any](value string, field func(item T) string) Predicate[T] {
	if disabled(value) {
		return matchAll[T]
	}
	return func(item T) bool {
		return field(item) == value
	}
}

// EqualFold 大小写不敏感匹配，value 为空或 All 时不过滤
func EqualFold[T any](value string, field func(item T) string) Predicate[T] {
	if disabled(value) {
		return matchAll[T]
	}
	return func(item T) bool {
		return strings.EqualFold(field(item), value)
	}
}

func disabled(value string) bool {
	return value == "" || value == All
}

func matchAll[T any](T) bool {
	return true
}
