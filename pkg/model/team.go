package model

import "github.com/samber/lo"

// ContactInfo 成员联系方式（均可选）
type ContactInfo struct {
	Facebook string `json:"facebook,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
	Email    string `json:"email,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
}

// TeamMember 团队成员
type TeamMember struct {
	Name        string       `json:"name"`
	Role        string       `json:"role"`
	Bio         string       `json:"bio"`
	Experience  string       `json:"experience"`
	Nationality string       `json:"nationality"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Contacts    *ContactInfo `json:"contacts,omitempty"`
}

// TeamGroup 团队分组，成员保持声明顺序
type TeamGroup struct {
	Name    string       `json:"name"`
	Members []TeamMember `json:"members"`
}

// Team 团队（分组列表）
type Team []TeamGroup

// MemberCount 成员总数
func (t Team) MemberCount() int {
	return lo.SumBy(t, func(g TeamGroup) int { return len(g.Members) })
}

// Members 按分组顺序展开的全部成员
func (t Team) Members() []TeamMember {
	return lo.Flatten(lo.Map(t, func(g TeamGroup, _ int) []TeamMember { return g.Members }))
}
