package markdownx

import (
	"regexp"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// ToHTML 将新闻正文 Markdown 渲染为带 tailwind 样式的 HTML
func ToHTML(content []byte) string {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse(content)

	htmlFlags := html.CommonFlags | html.HrefTargetBlank | html.LazyLoadImages
	opts := html.RendererOptions{Flags: htmlFlags}
	renderer := html.NewRenderer(opts)

	return wrapTailwindClass(string(markdown.Render(doc, renderer)))
}

// FullMatchHtmlTagClassMap 无属性标签，整体替换
var FullMatchHtmlTagClassMap = map[string]string{
	"p":          "my-4 leading-relaxed text-gray-700",
	"ol":         "pl-1 list-decimal list-inside",
	"ul":         "pl-4 list-disc",
	"li":         "ml-4 my-1",
	"table":      "my-6 w-full text-sm border border-gray-200",
	"th":         "px-3 py-2 bg-gray-50 text-left font-semibold",
	"td":         "px-3 py-2 border-t border-gray-200",
	"code":       "bg-gray-100 text-emerald-700",
	"blockquote": "pl-3 py-1 border-l-4 border-emerald-300 bg-emerald-50 italic",
}

// PrefixMatchHtmlTagClassMap 可能带属性的标签，按前缀补充 class
var PrefixMatchHtmlTagClassMap = map[string]string{
	"h1":  "mt-8 mb-4 font-bold text-3xl text-gray-900",
	"h2":  "mt-8 mb-4 font-bold text-2xl text-gray-900",
	"h3":  "mt-6 mb-3 font-semibold text-xl text-gray-900",
	"h4":  "mt-6 mb-3 font-semibold text-lg",
	"img": "my-6 rounded-xl shadow",
	"a":   "text-emerald-700 underline",
}

var codeBlockRegexp = regexp.MustCompile(`<code class="language-[a-zA-Z0-9]+`)

// wrapTailwindClass 为 markdown 转换成的 html 中的标签添加 tailwind css 类
func wrapTailwindClass(htmlContent string) string {
	for tagName, class := range FullMatchHtmlTagClassMap {
		htmlContent = strings.ReplaceAll(htmlContent, "<"+tagName+">", "<"+tagName+" class=\""+class+"\">")
	}
	for tagName, class := range PrefixMatchHtmlTagClassMap {
		htmlContent = strings.ReplaceAll(htmlContent, "<"+tagName+" ", "<"+tagName+" class=\""+class+"\" ")
		htmlContent = strings.ReplaceAll(htmlContent, "<"+tagName+">", "<"+tagName+" class=\""+class+"\">")
	}
	// 代码块自带 class="language-xxx"，只能补充
	return codeBlockRegexp.ReplaceAllString(htmlContent, "$0 p-4 rounded-xl block overflow-x-auto")
}
