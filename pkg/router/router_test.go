package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kheobs/labsite/pkg/auth"
	"github.com/kheobs/labsite/pkg/envs"
	"github.com/kheobs/labsite/pkg/handler"
	"github.com/kheobs/labsite/pkg/i18n"
	"github.com/kheobs/labsite/pkg/model"
	"github.com/kheobs/labsite/pkg/storage"
	"github.com/kheobs/labsite/pkg/wizard"
)

type fakeGrants struct {
	grants []model.AccessGrant
}

func (f *fakeGrants) RecordGrant(_ context.Context, grant model.AccessGrant) error {
	f.grants = append(f.grants, grant)
	return nil
}

type failingSubmitter struct{}

func (failingSubmitter) Submit(context.Context, model.ContactMessage) error {
	return errors.New("queue unavailable")
}

// 带 Cookie 的测试客户端
type client struct {
	t       *testing.T
	router  http.Handler
	cookies map[string]*http.Cookie
}

func (c *client) do(method, target string, form url.Values, headers map[string]string) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		c.cookies[ck.Name] = ck
	}
	return w
}

func (c *client) get(target string) *httptest.ResponseRecorder {
	return c.do(http.MethodGet, target, nil, nil)
}

func (c *client) post(target string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	return c.do(http.MethodPost, target, form, nil)
}

func newTestHandler(t *testing.T) (*handler.Handler, *storage.Store) {
	store, err := storage.Load(envs.ContentBaseDir)
	require.NoError(t, err)

	h := handler.New(store, auth.NewStaticAuthenticator("admin", "s3cret", ""))
	h.Identity = wizard.DelayedProvider{}
	h.DashboardRefresh = 10 * time.Millisecond
	h.LaunchDelay = 250 * time.Millisecond
	return h, store
}

func newClient(t *testing.T, h *handler.Handler) *client {
	return &client{t: t, router: New(h), cookies: map[string]*http.Cookie{}}
}

func TestPages(t *testing.T) {
	h, _ := newTestHandler(t)
	c := newClient(t, h)

	pages := map[string]string{
		"/":                 "Climate Research for Cambodia",
		"/about":            "contact-section",
		"/research":         "Research Projects",
		"/publications":     "Total Citations",
		"/news":             "Upcoming Events",
		"/news/1":           "New Air Quality Monitoring Station Launched in Siem Reap",
		"/tools":            "Story Maps",
		"/tools/dashboard":  "Recent readings",
		"/tools/guidelines": "Access &amp; Registration",
		"/admin":            "Admin Panel",
	}
	for path, expected := range pages {
		w := c.get(path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), expected, path)
	}
}

func TestNotFound(t *testing.T) {
	h, _ := newTestHandler(t)
	c := newClient(t, h)

	for _, path := range []string{"/no-such-page", "/news/999", "/news/abc", "/tools/999/access/open"} {
		w := c.get(path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Contains(t, w.Body.String(), "404", path)
	}
}

func TestResearchFilter(t *testing.T) {
	h, store := newTestHandler(t)
	c := newClient(t, h)

	ongoing := store.ListProjects(model.ProjectQuery{Status: model.ProjectStatusOngoing})
	require.NotEmpty(t, ongoing)

	// 状态筛选大小写不敏感
	body := c.get("/research?status=ongoing").Body.String()
	assert.Equal(t, len(ongoing), strings.Count(body, "project-card"))

	body = c.get("/research?search=no-such-project").Body.String()
	assert.Zero(t, strings.Count(body, "project-card"))
	assert.Contains(t, body, "no-results")

	// 详情弹窗
	body = c.get("/research?project=1").Body.String()
	assert.Contains(t, body, `role="dialog"`)
}

func TestPublicationsYearFilter(t *testing.T) {
	h, store := newTestHandler(t)
	c := newClient(t, h)

	expected := store.ListPublications(model.PublicationQuery{Year: "2023"})
	require.NotEmpty(t, expected)

	body := c.get("/publications?year=2023&search=").Body.String()
	assert.Equal(t, len(expected), strings.Count(body, `class="publication `))
	for _, p := range expected {
		assert.Contains(t, body, p.Title)
	}
}

func TestNewsCategory(t *testing.T) {
	h, store := newTestHandler(t)
	c := newClient(t, h)

	health := store.ListNews(model.NewsQuery{Category: "Health"})
	body := c.get("/news?category=Health").Body.String()
	assert.Equal(t, len(health), strings.Count(body, "news-card"))
	// 筛选时不展示头条
	assert.NotContains(t, body, "featured-news")

	body = c.get("/news").Body.String()
	assert.Contains(t, body, "featured-news")
}

func TestAdminLogin(t *testing.T) {
	h, _ := newTestHandler(t)
	c := newClient(t, h)

	w := c.post("/admin/login", url.Values{"username": {"admin"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password.")

	w = c.post("/admin/login", url.Values{"username": {"admin"}, "password": {"s3cret"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	w = c.get("/admin?tab=team")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Signed in as admin")
	assert.Contains(t, w.Body.String(), "team-row")
	// 页面不会渲染配置中的密码
	assert.NotContains(t, w.Body.String(), "s3cret")

	c.post("/admin/logout", nil)
	w = c.get("/admin")
	assert.NotContains(t, w.Body.String(), "Signed in as admin")
	assert.Contains(t, w.Body.String(), `name="password"`)
}

func TestAdminLoginDisabled(t *testing.T) {
	h, _ := newTestHandler(t)
	h.Auth = auth.NewStaticAuthenticator("admin", "", "")
	c := newClient(t, h)

	w := c.post("/admin/login", url.Values{"username": {"admin"}, "password": {""}})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admin login is disabled")
}

func TestToolActions(t *testing.T) {
	h, _ := newTestHandler(t)
	c := newClient(t, h)

	cases := map[string]string{
		"/tools/1/access/open": "/tools/dashboard",
		"/tools/4/access/open": "/tools",
		"/tools/5/access/open": "/tools?notice=5",
		"/tools/7/access/open": "https://atlas.kheobs.org",
	}
	for path, location := range cases {
		w := c.get(path)
		assert.Equal(t, http.StatusSeeOther, w.Code, path)
		assert.Equal(t, location, w.Header().Get("Location"), path)
	}

	body := c.get("/tools?notice=5").Body.String()
	assert.Contains(t, body, "This tool is coming soon")
}

func TestSupportResources(t *testing.T) {
	h, store := newTestHandler(t)
	c := newClient(t, h)

	body := c.get("/tools").Body.String()
	assert.Contains(t, body, `href="/tools?support=1"`)
	assert.NotContains(t, body, `id="support-resources"`)

	body = c.get("/tools?support=1").Body.String()
	assert.Contains(t, body, `id="support-resources"`)
	assert.Equal(t, len(store.Snapshot().Profile.SupportResources), strings.Count(body, `class="support-resource `))
	assert.Contains(t, body, `href="mailto:support@kheobs.org"`)
	// pdf 下载，外部链接新窗口打开
	assert.Contains(t, body, "download>")
	assert.Contains(t, body, `data-type="link"
         target="_blank" rel="noopener noreferrer">`)
}

func TestToolAccessWizard(t *testing.T) {
	h, store := newTestHandler(t)
	grants := &fakeGrants{}
	h.Grants = grants
	c := newClient(t, h)

	tool := store.Snapshot().Tools.GetByID(2)
	require.NotNil(t, tool)
	require.Equal(t, model.ToolActionWizard, tool.Action())

	w := c.get("/tools/2/access/open")
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, c.get("/tools").Body.String(), "Step 1 of 4")

	// 跳步被拒绝，状态不变
	w = c.post("/tools/2/access/usertype", url.Values{"userType": {"researcher"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Step 1 of 4")

	w = c.post("/tools/2/access/login", url.Values{"email": {"dara@example.org"}, "password": {"pw"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = c.post("/tools/2/access/usertype", url.Values{"userType": {"researcher"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	// 未勾选同意条款时停留在第 3 步
	w = c.post("/tools/2/access/agree", url.Values{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "You must agree to the terms of use to continue.")
	assert.Contains(t, w.Body.String(), "Step 3 of 4")

	w = c.post("/tools/2/access/agree", url.Values{"agreeToTerms": {"true"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	// 当前页回到工具页，工具在新窗口中延迟打开
	w = c.post("/tools/2/access/launch", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/tools", w.Header().Get("Location"))

	require.Len(t, grants.grants, 1)
	assert.Equal(t, "dara@example.org", grants.grants[0].Email)
	assert.Equal(t, wizard.UserTypeResearcher, grants.grants[0].UserType)

	body := c.get("/tools").Body.String()
	assert.NotContains(t, body, "access-wizard")
	assert.Contains(t, body, `id="tool-launch"`)
	assert.Contains(t, body, `data-launch-delay="250"`)
	assert.Contains(t, body, `href="https://storymaps.kheobs.org/environment?tool=2&amp;access=researcher" target="_blank" rel="noopener noreferrer"`)

	// 只提示一次
	assert.NotContains(t, c.get("/tools").Body.String(), "tool-launch")
}

func TestToolAccessLaunchOtherTool(t *testing.T) {
	h, _ := newTestHandler(t)
	c := newClient(t, h)

	c.get("/tools/2/access/open")
	w := c.post("/tools/3/access/launch", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "The access wizard was opened for another tool.")
}

func TestToolAccessWizardClose(t *testing.T) {
	h, _ := newTestHandler(t)
	c := newClient(t, h)

	c.get("/tools/3/access/open")
	c.post("/tools/3/access/register", url.Values{
		"firstName": {"Dara"}, "lastName": {"Sok"}, "email": {"dara@example.org"},
	})
	assert.Contains(t, c.get("/tools").Body.String(), "Step 2 of 4")

	w := c.get("/tools/3/access/close")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.NotContains(t, c.get("/tools").Body.String(), "access-wizard")

	// 重新打开总是从第 1 步开始
	c.get("/tools/3/access/open")
	assert.Contains(t, c.get("/tools").Body.String(), "Step 1 of 4")

	// 向导属于另一个工具
	w = c.post("/tools/2/access/login", url.Values{"email": {"a@b.org"}, "password": {"pw"}})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestContactForm(t *testing.T) {
	h, _ := newTestHandler(t)
	c := newClient(t, h)

	w := c.post("/about/contact", url.Values{"email": {"not-an-email"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "First name is required")
	assert.Contains(t, w.Body.String(), "Please enter a valid email address")

	valid := url.Values{
		"firstName": {"Dara"},
		"lastName":  {"Sok"},
		"email":     {"dara@example.org"},
		"reason":    {"General Inquiry"},
		"message":   {"Hello"},
	}
	w = c.post("/about/contact", valid)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/about?sent=1#contact-section", w.Header().Get("Location"))
	assert.Contains(t, c.get("/about?sent=1").Body.String(), "Your message has been sent")

	h.Contact = failingSubmitter{}
	c = newClient(t, h)
	w = c.post("/about/contact", valid)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "could not be sent")
}

func TestLikeNews(t *testing.T) {
	h, _ := newTestHandler(t)
	c := newClient(t, h)

	type likeResp struct {
		Code int `json:"code"`
		Data struct {
			Counted bool  `json:"counted"`
			Likes   int64 `json:"likes"`
		} `json:"data"`
	}

	var resp likeResp
	w := c.post("/apis/news/1/like", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Counted)
	assert.Equal(t, int64(1), resp.Data.Likes)

	w = c.post("/apis/news/1/like", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Counted)
	assert.Equal(t, int64(1), resp.Data.Likes)

	w = c.post("/apis/news/999/like", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAPIs(t *testing.T) {
	h, store := newTestHandler(t)
	c := newClient(t, h)

	var resp struct {
		Data struct {
			Count   int               `json:"count"`
			Results []json.RawMessage `json:"results"`
		} `json:"data"`
	}

	w := c.get("/apis/publications?year=2023")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, len(store.ListPublications(model.PublicationQuery{Year: "2023"})), resp.Data.Count)

	w = c.get("/apis/tools?category=all&search=dashboard")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, len(store.ListTools(model.ToolQuery{Search: "dashboard"})), resp.Data.Count)

	w = c.get("/apis/projects?status=ONGOING")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, store.Snapshot().Projects.CountByStatus(model.ProjectStatusOngoing), resp.Data.Count)
}

// 在 timeout 后断开的流式请求
func stream(t *testing.T, r http.Handler, target string, timeout time.Duration) *httptest.ResponseRecorder {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, target, nil).WithContext(ctx)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCarouselStream(t *testing.T) {
	h, _ := newTestHandler(t)
	r := New(h)

	w := stream(t, r, "/apis/carousels/home/stream", 50*time.Millisecond)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "event:slide")
	assert.Contains(t, w.Body.String(), `"index":0`)

	w = stream(t, r, "/apis/carousels/no-such/stream", 50*time.Millisecond)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardStream(t *testing.T) {
	h, _ := newTestHandler(t)
	r := New(h)

	w := stream(t, r, "/apis/dashboard/stream?station=siem-reap", 100*time.Millisecond)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.GreaterOrEqual(t, strings.Count(w.Body.String(), "event:reading"), 2)
	assert.Contains(t, w.Body.String(), `"stationID":"siem-reap"`)
}

func TestSetLocale(t *testing.T) {
	h, _ := newTestHandler(t)
	c := newClient(t, h)

	w := c.do(http.MethodGet, "/lang/km", nil, map[string]string{"Referer": "http://localhost/news?category=Health"})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/news?category=Health", w.Header().Get("Location"))
	assert.Equal(t, i18n.KM, c.cookies[i18n.CookieName].Value)

	assert.Contains(t, c.get("/").Body.String(), i18n.T(i18n.KM, "nav.home"))

	// 不允许借助 Referer 跳转到站外
	for _, referer := range []string{"http://localhost//evil.com", "http://localhost/\\evil.com", "http://localhost/a\\b"} {
		w = c.do(http.MethodGet, "/lang/en", nil, map[string]string{"Referer": referer})
		assert.Equal(t, http.StatusSeeOther, w.Code, referer)
		assert.Equal(t, "/", w.Header().Get("Location"), referer)
	}

	w = c.get("/lang/fr")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMiscRoutes(t *testing.T) {
	h, _ := newTestHandler(t)
	c := newClient(t, h)

	w := c.get("/rss")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<feed")
	assert.Contains(t, w.Body.String(), "/news/1")

	w = c.get("/robots.txt")
	assert.Contains(t, w.Body.String(), "Disallow: /admin")

	w = c.get("/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
