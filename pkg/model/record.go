package model

import "time"

// ViewRecord 新闻阅读记录
type ViewRecord struct {
	BaseModel
	ID        int64  `json:"id" gorm:"primaryKey"`
	IP        string `json:"ip" gorm:"type:varchar(64);not null"`
	ArticleID int    `json:"articleID" gorm:"not null;index"`
}

// LikeRecord 新闻点赞记录
type LikeRecord struct {
	BaseModel
	ID        int64  `json:"id" gorm:"primaryKey"`
	IP        string `json:"ip" gorm:"type:varchar(64);not null;index:idx_like_ip_article"`
	ArticleID int    `json:"articleID" gorm:"not null;index:idx_like_ip_article"`
}

// ContactMessage 联系表单留言
type ContactMessage struct {
	BaseModel
	ID           int64  `json:"id" gorm:"primaryKey"`
	FirstName    string `json:"firstName" gorm:"type:varchar(64);not null"`
	LastName     string `json:"lastName" gorm:"type:varchar(64);not null"`
	Email        string `json:"email" gorm:"type:varchar(128);not null"`
	Organization string `json:"organization" gorm:"type:varchar(128)"`
	Reason       string `json:"reason" gorm:"type:varchar(64);not null"`
	Message      string `json:"message" gorm:"type:text;not null"`
	ClientIP     string `json:"clientIP" gorm:"type:varchar(64)"`
}

// AccessGrant 工具访问授权记录（访问向导完成时写入）
type AccessGrant struct {
	BaseModel
	ID       int64     `json:"id" gorm:"primaryKey"`
	ToolID   int       `json:"toolID" gorm:"not null;index"`
	Email    string    `json:"email" gorm:"type:varchar(128);not null"`
	UserType string    `json:"userType" gorm:"type:varchar(32);not null"`
	GrantAt  time.Time `json:"grantAt"`
}
