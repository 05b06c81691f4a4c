package model

import "time"

// BaseModel 访客行为记录的公共字段，Creator 为访客标识（浏览器 Cookie 中的 client id）
type BaseModel struct {
	Creator   string    `json:"creator" gorm:"type:varchar(64);index"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}
