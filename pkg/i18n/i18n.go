// Package i18n 站点语言：进程级默认语言 + 访客偏好 + 文案表
package i18n

import (
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

const (
	// EN 英语
	EN = "en"
	// KM 高棉语
	KM = "km"
)

// CookieName 访客语言偏好 Cookie
const CookieName = "locale"

// Locales 支持的语言（顺序即匹配优先级）
var Locales = []string{EN, KM}

// ErrUnsupportedLocale ...
var ErrUnsupportedLocale = errors.New("unsupported locale")

var (
	matcher = language.NewMatcher([]language.Tag{language.MustParse(EN), language.MustParse(KM)})

	mu            sync.RWMutex
	defaultLocale = EN
	initOnce      sync.Once
)

// Init 启动时设置默认语言，仅首次调用生效
func Init(locale string) (err error) {
	initOnce.Do(func() {
		err = SetDefault(locale)
	})
	return err
}

// SetDefault 修改默认语言（唯一的修改入口）
func SetDefault(locale string) error {
	if !Supported(locale) {
		return errors.Wrapf(ErrUnsupportedLocale, "set default %q", locale)
	}
	mu.Lock()
	defer mu.Unlock()

	defaultLocale = locale
	return nil
}

// Default 当前默认语言
func Default() string {
	mu.RLock()
	defer mu.RUnlock()

	return defaultLocale
}

// Supported ...
func Supported(locale string) bool {
	for _, l := range Locales {
		if l == locale {
			return true
		}
	}
	return false
}

// Match 根据 Accept-Language 头匹配语言，无法匹配时返回默认语言
func Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default()
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default()
	}
	return Locales[idx]
}

// Resolve 按 访客偏好 -> Accept-Language -> 默认语言 的顺序确定语言
func Resolve(preferred, acceptLanguage string) string {
	if Supported(preferred) {
		return preferred
	}
	if acceptLanguage != "" {
		return Match(acceptLanguage)
	}
	return Default()
}
