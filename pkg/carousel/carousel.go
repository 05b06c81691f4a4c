// Package carousel 实现循环轮播：手动切换、暂停以及由 ticker 驱动的自动切换
package carousel

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// 切换方向，仅用于前端动画
const (
	DirectionBackward = -1
	DirectionNone     = 0
	DirectionForward  = 1
)

// ErrInvalidInterval 自动切换间隔必须为正数
var ErrInvalidInterval = errors.New("carousel interval must be positive")

// State 轮播当前状态
type State struct {
	Index     int  `json:"index"`
	Direction int  `json:"direction"`
	Paused    bool `json:"paused"`
	Count     int  `json:"count"`
}

// Carousel 循环轮播，index 始终位于 [0, count)；count 为 0 时 index 固定为 0
type Carousel struct {
	mu        sync.Mutex
	count     int
	index     int
	direction int
	paused    bool
}

// New ...
func New(count int) *Carousel {
	return &Carousel{count: max(count, 0)}
}

// State 获取当前状态
func (c *Carousel) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state()
}

// Tick 自动切换：未暂停时前进一页
func (c *Carousel) Tick() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.paused {
		c.move(DirectionForward)
	}
	return c.state()
}

// Next 下一页
func (c *Carousel) Next() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.move(DirectionForward)
	return c.state()
}

// Prev 上一页
func (c *Carousel) Prev() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.move(DirectionBackward)
	return c.state()
}

// GoTo 跳转到指定页（超出范围时取模），方向为变化的符号
func (c *Carousel) GoTo(index int) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	target := normalize(index, c.count)
	switch {
	case target > c.index:
		c.direction = DirectionForward
	case target < c.index:
		c.direction = DirectionBackward
	default:
		c.direction = DirectionNone
	}
	c.index = target
	return c.state()
}

// Reset 回到第一页
func (c *Carousel) Reset() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.index, c.direction = 0, DirectionNone
	return c.state()
}

// Pause 暂停自动切换（如鼠标悬停）
func (c *Carousel) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
}

// Resume 恢复自动切换
func (c *Carousel) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = false
}

// Run 按固定间隔自动切换，每次切换后回调 onChange；
// ticker 在 Run 开始时创建，ctx 结束或回调返回错误时释放
func (c *Carousel) Run(ctx context.Context, interval time.Duration, onChange func(State) error) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			before := c.State()
			after := c.Tick()
			if after.Index == before.Index {
				continue
			}
			if err := onChange(after); err != nil {
				return err
			}
		}
	}
}

func (c *Carousel) move(direction int) {
	if c.count == 0 {
		return
	}
	c.index = normalize(c.index+direction, c.count)
	c.direction = direction
}

func (c *Carousel) state() State {
	return State{Index: c.index, Direction: c.direction, Paused: c.paused, Count: c.count}
}

// Neighbors 给定页码的上一页与下一页，用于服务端渲染的翻页链接
func Neighbors(index, count int) (prev, next int) {
	index = normalize(index, count)
	return normalize(index-1, count), normalize(index+1, count)
}

// Normalize 将任意页码映射到 [0, count)
func Normalize(index, count int) int {
	return normalize(index, count)
}

func normalize(index, count int) int {
	if count <= 0 {
		return 0
	}
	return ((index % count) + count) % count
}
