package model

// Milestone 实验室大事记
type Milestone struct {
	Year  string `json:"year"`
	Event string `json:"event"`
}

// Event 活动
type Event struct {
	Title            string `json:"title"`
	Date             string `json:"date"`
	Location         string `json:"location"`
	Type             string `json:"type"`
	Description      string `json:"description"`
	RegistrationOpen bool   `json:"registrationOpen"`
}

// Slide 轮播页
type Slide struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Meta        string `json:"meta,omitempty"`
	Link        string `json:"link,omitempty"`
	// Extras 同一页中的附属卡片（如最新新闻轮播的侧栏）
	Extras []Slide `json:"extras,omitempty"`
}

// Carousel 轮播
type Carousel struct {
	Name string `json:"name"`
	// IntervalSeconds 自动切换间隔（秒）
	IntervalSeconds int     `json:"intervalSeconds"`
	Slides          []Slide `json:"slides"`
}

// Carousels 轮播列表
type Carousels []Carousel

// GetByName 根据名称获取轮播
func (cs Carousels) GetByName(name string) *Carousel {
	for _, c := range cs {
		if c.Name == name {
			return &c
		}
	}
	return nil
}

// Station 气象站
type Station struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	WindSpeed     float64 `json:"windSpeed"`
	WindDirection string  `json:"windDirection"`
	Pressure      float64 `json:"pressure"`
	Visibility    float64 `json:"visibility"`
	LastUpdate    string  `json:"lastUpdate"`
	// Trend up / down / stable
	Trend string `json:"trend"`
}

// GuideStep 工具使用指引步骤
type GuideStep struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	LaunchURL   string `json:"launchUrl,omitempty"`
	LaunchLabel string `json:"launchLabel,omitempty"`
}
