package markdownx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTML(t *testing.T) {
	html := ToHTML([]byte("## Findings\n\nPM2.5 levels fell by **12%**.\n\n- Siem Reap\n- Phnom Penh\n"))

	assert.Contains(t, html, `<h2 class="mt-8 mb-4 font-bold text-2xl text-gray-900" id="findings">Findings</h2>`)
	assert.Contains(t, html, `<p class="my-4 leading-relaxed text-gray-700">PM2.5 levels fell by <strong>12%</strong>.</p>`)
	assert.Contains(t, html, `<ul class="pl-4 list-disc">`)
}

func TestToHTMLLinkAndCode(t *testing.T) {
	html := ToHTML([]byte("[data](https://kheobs.org)\n\n```go\nfmt.Println(1)\n```\n"))

	assert.Contains(t, html, `<a class="text-emerald-700 underline" href="https://kheobs.org"`)
	assert.Contains(t, html, `target="_blank"`)
	assert.Contains(t, html, `<code class="language-go p-4 rounded-xl block overflow-x-auto">`)
}
