package wizard

// Guide 使用指引步骤，Next / Prev 在首尾处停止（不循环）
type Guide struct {
	index int
	total int
}

// NewGuide 创建指引，index 从 0 开始，超出范围时取边界
func NewGuide(total, index int) Guide {
	g := Guide{total: max(total, 0)}
	return g.GoTo(index)
}

// Index 当前步骤下标
func (g Guide) Index() int { return g.index }

// Total 步骤总数
func (g Guide) Total() int { return g.total }

// IsFirst ...
func (g Guide) IsFirst() bool { return g.index == 0 }

// IsLast ...
func (g Guide) IsLast() bool { return g.total == 0 || g.index == g.total-1 }

// Next ...
func (g Guide) Next() Guide {
	if g.IsLast() {
		return g
	}
	g.index++
	return g
}

// Prev ...
func (g Guide) Prev() Guide {
	if g.IsFirst() {
		return g
	}
	g.index--
	return g
}

// GoTo 跳转到指定步骤（点击步骤指示器）
func (g Guide) GoTo(index int) Guide {
	g.index = min(max(index, 0), max(g.total-1, 0))
	return g
}
