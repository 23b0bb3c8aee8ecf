package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	err  error
	sent []string
}

func (m *fakeMailer) SendContact(name, email, message string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, name+"|"+email+"|"+message)
	return nil
}

type testClient struct {
	t       *testing.T
	handler http.Handler
	cookies []*http.Cookie
}

func newTestServer(t *testing.T, mailer contactSender) (*server, *testClient) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := openDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := Config{ViewerSessionTTL: time.Minute}
	s := newServer(cfg, db, mailer)
	return s, &testClient{t: t, handler: s.routes()}
}

func (c *testClient) do(req *http.Request) *httptest.ResponseRecorder {
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	if set := w.Result().Cookies(); len(set) > 0 {
		c.cookies = set
	}
	return w
}

func (c *testClient) post(path string, form url.Values) string {
	c.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := c.do(req)
	require.Equal(c.t, http.StatusOK, w.Code)
	return w.Body.String()
}

func (c *testClient) get(path string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	return c.do(req)
}

const openOverlay = `inline-fullscreen active`

func TestViewerGalleryFlow(t *testing.T) {
	_, c := newTestServer(t, &fakeMailer{})

	body := c.post("/viewer/open", url.Values{"project": {"machine-stranger"}, "gallery": {"1"}})
	require.Contains(t, body, openOverlay)
	require.Contains(t, body, "2 / 5")
	require.Contains(t, body, "Calibrating the proximity sensors")
	require.Contains(t, body, `data-scroll-locked="true"`)
	require.NotEmpty(t, c.cookies)

	body = c.post("/viewer/next", url.Values{"project": {"machine-stranger"}})
	require.Contains(t, body, "3 / 5")
	require.Contains(t, body, "inline-fullscreen-video")
	require.Contains(t, body, "autoplay")

	body = c.post("/viewer/key", url.Values{"key": {"ArrowLeft"}, "project": {"machine-stranger"}})
	require.Contains(t, body, "2 / 5")

	body = c.post("/viewer/key", url.Values{"key": {"Escape"}})
	require.NotContains(t, body, openOverlay)
	require.Contains(t, body, `data-scroll-locked="false"`)

	body = c.post("/viewer/close", nil)
	require.NotContains(t, body, openOverlay)
}

func TestViewerBoundaryButtons(t *testing.T) {
	_, c := newTestServer(t, &fakeMailer{})

	body := c.post("/viewer/open", url.Values{"project": {"fleeting-states"}, "gallery": {"2"}})
	require.Contains(t, body, "3 / 3")
	require.Regexp(t, `inline-fullscreen-next"[^>]*disabled`, body)
	require.NotRegexp(t, `inline-fullscreen-prev"[^>]*disabled`, body)

	body = c.post("/viewer/next", nil)
	require.Contains(t, body, "3 / 3")
}

func TestViewerStandaloneHidesNavigation(t *testing.T) {
	_, c := newTestServer(t, &fakeMailer{})

	body := c.post("/viewer/open", url.Values{"project": {"machine-stranger"}, "media": {"0"}})
	require.Contains(t, body, openOverlay)
	require.NotContains(t, body, "inline-fullscreen-next")
	require.Contains(t, body, "The installation before visitors arrive")

	body = c.post("/viewer/key", url.Values{"key": {"ArrowRight"}})
	require.Contains(t, body, "The installation before visitors arrive")

	body = c.post("/viewer/overlay", url.Values{"target": {"backdrop"}})
	require.NotContains(t, body, openOverlay)
}

func TestViewerIgnoresScrollGestures(t *testing.T) {
	_, c := newTestServer(t, &fakeMailer{})

	body := c.post("/viewer/open", url.Values{
		"project": {"machine-stranger"}, "gallery": {"0"},
		"source": {"touch"}, "duration_ms": {"500"}, "dx": {"0"}, "dy": {"0"},
	})
	require.NotContains(t, body, openOverlay)

	body = c.post("/viewer/open", url.Values{
		"project": {"machine-stranger"}, "gallery": {"0"},
		"source": {"touch"}, "duration_ms": {"120"}, "dx": {"0"}, "dy": {"40"},
	})
	require.NotContains(t, body, openOverlay)

	body = c.post("/viewer/open", url.Values{
		"project": {"machine-stranger"}, "gallery": {"0"},
		"source": {"touch"}, "duration_ms": {"120"}, "dx": {"3"}, "dy": {"0"},
	})
	require.Contains(t, body, openOverlay)
}

func TestViewerOpensOncePerGesture(t *testing.T) {
	_, c := newTestServer(t, &fakeMailer{})

	tap := url.Values{
		"project": {"machine-stranger"}, "gallery": {"0"}, "gesture": {"g7"},
		"source": {"touch"}, "duration_ms": {"80"}, "dx": {"1"}, "dy": {"1"},
	}
	require.Contains(t, c.post("/viewer/open", tap), openOverlay)
	require.NotContains(t, c.post("/viewer/close", nil), openOverlay)

	click := url.Values{"project": {"machine-stranger"}, "gallery": {"0"}, "gesture": {"g7"}, "source": {"click"}}
	require.NotContains(t, c.post("/viewer/open", click), openOverlay)
}

func TestViewerIgnoresVideoControlClicks(t *testing.T) {
	_, c := newTestServer(t, &fakeMailer{})

	strip := url.Values{
		"project": {"machine-stranger"}, "media": {"1"},
		"source": {"click"}, "offset_y": {"390"}, "height": {"400"},
	}
	require.NotContains(t, c.post("/viewer/open", strip), openOverlay)

	strip.Set("offset_y", "100")
	body := c.post("/viewer/open", strip)
	require.Contains(t, body, openOverlay)
	require.Contains(t, body, "machine-stranger-walkthrough.mp4")
}

func TestViewerInlineMediaIgnoresTouch(t *testing.T) {
	_, c := newTestServer(t, &fakeMailer{})

	tap := url.Values{
		"project": {"machine-stranger"}, "media": {"0"}, "gesture": {"g9"},
		"source": {"touch"}, "duration_ms": {"80"}, "dx": {"1"}, "dy": {"1"},
	}
	require.NotContains(t, c.post("/viewer/open", tap), openOverlay)

	click := url.Values{"project": {"machine-stranger"}, "media": {"0"}, "gesture": {"g9"}, "source": {"click"}}
	body := c.post("/viewer/open", click)
	require.Contains(t, body, openOverlay)
	require.Contains(t, body, "The installation before visitors arrive")
}

func TestViewerRejectsBadSelections(t *testing.T) {
	_, c := newTestServer(t, &fakeMailer{})

	for _, form := range []url.Values{
		{"project": {"nope"}, "gallery": {"0"}},
		{"project": {"machine-stranger"}, "gallery": {"99"}},
		{"project": {"machine-stranger"}},
		{"project": {"machine-stranger"}, "gallery": {"0"}, "media": {"0"}},
		{"gallery": {"0"}},
	} {
		require.NotContains(t, c.post("/viewer/open", form), openOverlay, form.Encode())
	}
}

func TestProjectsFilter(t *testing.T) {
	_, c := newTestServer(t, &fakeMailer{})

	w := c.get("/projects?category=narrative", "HX-Request", "true")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Computerized Memories")
	require.NotContains(t, w.Body.String(), "Move a Bit")
	require.NotContains(t, w.Body.String(), "<nav")

	w = c.get("/projects")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Move a Bit")
	require.Contains(t, w.Body.String(), "All Projects")
}

func TestPages(t *testing.T) {
	_, c := newTestServer(t, &fakeMailer{})

	w := c.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "This Machine is a Stranger")

	w = c.get("/featured/granny-bytes")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `id="main-featured-image"`)
	require.Contains(t, w.Body.String(), "grannybytes.gif")

	require.Equal(t, http.StatusNotFound, c.get("/featured/firefly-symphony").Code)

	w = c.get("/projects/machine-stranger")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `id="mz-gallery"`)
	require.Contains(t, w.Body.String(), `class="inline-fullscreen"`)

	require.Equal(t, http.StatusNotFound, c.get("/projects/nope").Code)
	require.Equal(t, http.StatusOK, c.get("/about").Code)
}

func TestCarouselEndpoint(t *testing.T) {
	_, c := newTestServer(t, &fakeMailer{})

	w := c.get("/carousel/machine-stranger?slide=2&action=next")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `data-slide="0"`)

	w = c.get("/carousel/machine-stranger?slide=0&action=swipe&start_x=100&end_x=300")
	require.Contains(t, w.Body.String(), `data-slide="2"`)

	w = c.get("/carousel/machine-stranger?slide=0&action=show&to=1")
	require.Contains(t, w.Body.String(), `data-slide="1"`)

	require.Equal(t, http.StatusNotFound, c.get("/carousel/firefly-symphony").Code)
}

func TestCarouselResumeDelay(t *testing.T) {
	_, c := newTestServer(t, &fakeMailer{})

	w := c.get("/carousel/machine-stranger?slide=1&action=swipe&start_x=300&end_x=100")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `data-slide="2"`)
	require.Contains(t, w.Body.String(), "every 4000ms")

	w = c.get("/carousel/machine-stranger?slide=0&action=show&to=2")
	require.Contains(t, w.Body.String(), "every 2000ms")

	w = c.get("/carousel/machine-stranger?slide=0&action=next")
	require.Contains(t, w.Body.String(), "every 2000ms")

	w = c.get("/projects/machine-stranger")
	require.Contains(t, w.Body.String(), "every 2000ms")
}

func TestContactForm(t *testing.T) {
	mailer := &fakeMailer{}
	_, c := newTestServer(t, mailer)

	body := c.post("/contact", url.Values{"fullName": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hi"}})
	require.Contains(t, body, "contact-success")
	require.Equal(t, []string{"Ada|ada@example.com|Hi"}, mailer.sent)

	body = c.post("/contact", url.Values{"fullName": {"Ada"}})
	require.Contains(t, body, "contact-error")

	mailer.err = errors.New("smtp down")
	body = c.post("/contact", url.Values{"fullName": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hi"}})
	require.Contains(t, body, "Sorry, there was an error")
}

func TestSMTPMailerRequiresCredentials(t *testing.T) {
	m := newSMTPMailer(Config{SMTPHost: "localhost", SMTPPort: 25, ToEmail: "me@example.com"})
	require.ErrorIs(t, m.SendContact("a", "a@example.com", "hi"), errSMTPNotConfigured)
}

func TestAdminStatsCountMediaViews(t *testing.T) {
	s, c := newTestServer(t, &fakeMailer{})
	ctx := context.Background()

	require.NoError(t, recordMediaView(ctx, s.db, mediaView{ProjectID: "a", SourceURL: "/x.jpg", Kind: "image", Index: 0}))
	require.NoError(t, recordMediaView(ctx, s.db, mediaView{ProjectID: "a", SourceURL: "/x.jpg", Kind: "image", Index: 0}))
	require.NoError(t, recordMediaView(ctx, s.db, mediaView{ProjectID: "a", SourceURL: "/y.mp4", Kind: "video", Index: -1}))

	stats, err := s.getAdminStats()
	require.NoError(t, err)
	require.EqualValues(t, 3, stats.TotalMediaViews)
	require.EqualValues(t, 1, stats.VideoViews)
	require.NotEmpty(t, stats.TopMedia)
	require.Equal(t, "/x.jpg", stats.TopMedia[0].SourceURL)
	require.Equal(t, 2, stats.TopMedia[0].Views)

	w := c.get("/admin/dashboard")
	require.Equal(t, http.StatusFound, w.Code)

	c.cookies = []*http.Cookie{{Name: "admin_token", Value: s.adminToken}}
	w = c.get("/admin/api/stats")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"total_media_views"`)
	require.Empty(t, w.Header().Get("Content-Disposition"))

	w = c.get("/admin/export/stats")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"), "admin-stats.json")
	require.Contains(t, w.Body.String(), `"video_views":1`)
}
