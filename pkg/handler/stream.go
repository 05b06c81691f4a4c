package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/kheobs/labsite/pkg/carousel"
	"github.com/kheobs/labsite/pkg/common/errcode"
	"github.com/kheobs/labsite/pkg/dashboard"
	"github.com/kheobs/labsite/pkg/utils/ginx"
)

// SSE 事件名
const (
	eventSlide   = "slide"
	eventReading = "reading"
)

func setStreamHeaders(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
}

func sendEvent(c *gin.Context, name string, data any) error {
	c.SSEvent(name, data)
	c.Writer.Flush()
	return c.Request.Context().Err()
}

// 客户端断开属于正常结束
func streamClosed(err error) bool {
	return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// StreamCarousel 轮播自动切换推送：每个连接独立从第 0 页开始，断开时释放定时器
func (h *Handler) StreamCarousel(c *gin.Context) {
	cs := h.Content.Snapshot().Carousels.GetByName(c.Param("name"))
	if cs == nil {
		ginx.SetErrResp(c, http.StatusNotFound, errcode.NotFound, "carousel not found")
		return
	}
	if cs.IntervalSeconds <= 0 || len(cs.Slides) == 0 {
		ginx.SetErrResp(c, http.StatusServiceUnavailable, errcode.Unavailable, "carousel has no auto-advance")
		return
	}

	slides := carousel.New(len(cs.Slides))
	if c.Query("paused") == "1" {
		slides.Pause()
	}

	setStreamHeaders(c)
	if err := sendEvent(c, eventSlide, slides.State()); err != nil {
		return
	}
	interval := time.Duration(cs.IntervalSeconds) * time.Second
	err := slides.Run(c.Request.Context(), interval, func(state carousel.State) error {
		return sendEvent(c, eventSlide, state)
	})
	if !streamClosed(err) {
		logError(c, err, "carousel stream aborted")
	}
}

// StreamDashboard 气候仪表盘实时读数推送
func (h *Handler) StreamDashboard(c *gin.Context) {
	station, _ := dashboard.FindStation(h.Content.Snapshot().Stations, c.Query("station"))

	setStreamHeaders(c)
	now := h.Now()
	first := dashboard.Reading{StationID: station.ID, Point: h.Generator.Point(now), ServerNow: now}
	if err := sendEvent(c, eventReading, first); err != nil {
		return
	}
	err := h.Generator.Stream(c.Request.Context(), h.DashboardRefresh, station.ID, func(r dashboard.Reading) error {
		return sendEvent(c, eventReading, r)
	})
	if !streamClosed(err) {
		logError(c, err, "dashboard stream aborted")
	}
}
