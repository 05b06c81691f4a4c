// Package dashboard 生成气候仪表盘的演示数据（随机读数，无真实数据源）
package dashboard

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/kheobs/labsite/pkg/model"
)

// 时间范围
const (
	Range24Hours = "24h"
	Range7Days   = "7d"
	Range30Days  = "30d"
)

var rangeHours = map[string]int{
	Range24Hours: 24,
	Range7Days:   24 * 7,
	Range30Days:  24 * 30,
}

// Ranges 可选时间范围（页面展示顺序）
var Ranges = []string{Range24Hours, Range7Days, Range30Days}

// 读数范围：[min, min+span)
const (
	temperatureMin  = 28.0
	temperatureSpan = 8.0
	humidityMin     = 60.0
	humiditySpan    = 20.0
	pressureMin     = 1010.0
	pressureSpan    = 10.0
)

// Point 某一时刻的读数
type Point struct {
	Time        time.Time `json:"time"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Pressure    float64   `json:"pressure"`
}

// Summary 一段时间内读数的统计
type Summary struct {
	AvgTemperature float64 `json:"avgTemperature"`
	MaxTemperature float64 `json:"maxTemperature"`
	MinTemperature float64 `json:"minTemperature"`
	AvgHumidity    float64 `json:"avgHumidity"`
	AvgPressure    float64 `json:"avgPressure"`
}

// Reading 推送给前端的实时读数
type Reading struct {
	StationID string    `json:"stationID"`
	Point     Point     `json:"point"`
	ServerNow time.Time `json:"serverNow"`
}

// Generator 随机读数生成器，可并发使用
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator ...
func NewGenerator(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// RangeHours 时间范围对应的小时数，未知范围按 24h 处理
func RangeHours(r string) int {
	if hours, ok := rangeHours[r]; ok {
		return hours
	}
	return rangeHours[Range24Hours]
}

// Point 生成指定时刻的一个随机读数
func (g *Generator) Point(at time.Time) Point {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Point{
		Time:        at,
		Temperature: temperatureMin + g.rnd.Float64()*temperatureSpan,
		Humidity:    humidityMin + g.rnd.Float64()*humiditySpan,
		Pressure:    pressureMin + g.rnd.Float64()*pressureSpan,
	}
}

// Readings 生成 hours+1 个逐小时读数，最后一个为 now
func (g *Generator) Readings(now time.Time, hours int) []Point {
	hours = max(hours, 0)
	points := make([]Point, 0, hours+1)
	for i := hours; i >= 0; i-- {
		points = append(points, g.Point(now.Add(-time.Duration(i)*time.Hour)))
	}
	return points
}

// Stream 每隔 interval 推送一次指定气象站的随机读数，ctx 结束或 emit 返回错误时退出
func (g *Generator) Stream(ctx context.Context, interval time.Duration, stationID string, emit func(Reading) error) error {
	if interval <= 0 {
		return errors.New("dashboard refresh interval must be positive")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if err := emit(Reading{StationID: stationID, Point: g.Point(now), ServerNow: now}); err != nil {
				return err
			}
		}
	}
}

// Summarize 统计读数
func Summarize(points []Point) Summary {
	if len(points) == 0 {
		return Summary{}
	}
	n := float64(len(points))
	temperatures := lo.Map(points, func(p Point, _ int) float64 { return p.Temperature })
	return Summary{
		AvgTemperature: lo.Sum(temperatures) / n,
		MaxTemperature: lo.Max(temperatures),
		MinTemperature: lo.Min(temperatures),
		AvgHumidity:    lo.SumBy(points, func(p Point) float64 { return p.Humidity }) / n,
		AvgPressure:    lo.SumBy(points, func(p Point) float64 { return p.Pressure }) / n,
	}
}

// FindStation 根据 ID 查找气象站，找不到时返回第一个
func FindStation(stations []model.Station, id string) (model.Station, bool) {
	if station, ok := lo.Find(stations, func(s model.Station) bool { return s.ID == id }); ok {
		return station, true
	}
	if len(stations) != 0 {
		return stations[0], false
	}
	return model.Station{}, false
}
