package funcs

import (
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/Masterminds/sprig/v3"

	"github.com/kheobs/labsite/pkg/filter"
	"github.com/kheobs/labsite/pkg/i18n"
)

// NewFuncMap 模板方法：sprig + 站点自定义方法
func NewFuncMap() template.FuncMap {
	funcMap := sprig.FuncMap()
	// 获取当前年份
	funcMap["curYear"] = func() int {
		return time.Now().Year()
	}
	// 多语言文案
	funcMap["t"] = i18n.T
	// 已渲染的新闻正文
	funcMap["safeHTML"] = func(s string) template.HTML {
		return template.HTML(s)
	}
	funcMap["link"] = Link
	funcMap["initials"] = Initials
	return funcMap
}

// Link 构造带查询参数的链接，kv 为 key, value 交替出现，空值与 all 会被忽略
func Link(path string, kv ...string) string {
	values := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		if v := strings.TrimSpace(kv[i+1]); v != "" && v != filter.All {
			values.Set(kv[i], v)
		}
	}
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

// Initials 姓名首字母（团队表格头像占位）
func Initials(name string) string {
	var sb strings.Builder
	for _, word := range strings.Fields(name) {
		if r := []rune(word); len(r) != 0 {
			sb.WriteString(strings.ToUpper(string(r[0])))
		}
		if sb.Len() >= 2 {
			break
		}
	}
	return sb.String()
}
