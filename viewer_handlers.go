package main

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Paridhii27/portfolio/internal/carousel"
	"github.com/Paridhii27/portfolio/internal/portfolio"
	"github.com/Paridhii27/portfolio/internal/viewer"
)

const viewerCookie = "viewer_session"

// viewerSession returns the visitor's overlay session, issuing a cookie
// for new visitors.
func (s *server) viewerSession(c *gin.Context) *viewer.Session {
	id, _ := c.Cookie(viewerCookie)
	sess := s.viewers.Session(id)
	if sess.ID != id {
		c.SetCookie(viewerCookie, sess.ID, int(s.viewers.TTL/time.Second), "/", "", false, true)
	}
	return sess
}

// openRequest is a selection from the trigger layer.
type openRequest struct {
	Project string `form:"project" binding:"required"`
	// Gallery is the index within the project's gallery grid; Media the
	// index of a standalone inline item. Exactly one is set.
	Gallery *int `form:"gallery"`
	Media   *int `form:"media"`

	Gesture string `form:"gesture"`
	Source  string `form:"source"`

	// Touch selections report how long and how far the finger moved.
	DurationMS float64 `form:"duration_ms"`
	DX         float64 `form:"dx"`
	DY         float64 `form:"dy"`

	// Clicks on a video report where on the element they landed.
	OffsetY float64 `form:"offset_y"`
	Height  float64 `form:"height"`
}

func (r openRequest) gesture(now time.Time) viewer.Gesture {
	start := now.Add(-time.Duration(r.DurationMS * float64(time.Millisecond)))
	return viewer.Gesture{
		Start: viewer.PointerSample{At: start},
		End:   viewer.PointerSample{X: r.DX, Y: r.DY, At: now},
	}
}

// resolve finds the item the request points at and, for gallery items,
// the gallery and index to open it with.
func (s *server) resolve(req openRequest) (*portfolio.Project, *viewer.Item, viewer.Gallery, int, bool) {
	p, ok := s.catalog.Project(req.Project)
	if !ok {
		return nil, nil, nil, -1, false
	}
	switch {
	case req.Gallery != nil && req.Media == nil:
		i := *req.Gallery
		if i < 0 || i >= len(p.Gallery) {
			return nil, nil, nil, -1, false
		}
		return p, p.Gallery[i], p.Gallery, i, true
	case req.Media != nil && req.Gallery == nil:
		item := p.InlineItem(*req.Media)
		if item == nil {
			return nil, nil, nil, -1, false
		}
		return p, item, nil, -1, true
	}
	return nil, nil, nil, -1, false
}

func (s *server) setupViewerRoutes(r *gin.Engine) {
	g := r.Group("/viewer")

	g.GET("", func(c *gin.Context) {
		s.renderViewer(c, s.viewerSession(c).Do(nil))
	})

	g.POST("/open", func(c *gin.Context) {
		sess := s.viewerSession(c)

		var req openRequest
		if err := c.ShouldBind(&req); err != nil {
			log.Printf("Viewer: bad open request: %v", err)
			s.renderViewer(c, sess.Do(nil))
			return
		}
		p, item, gallery, index, ok := s.resolve(req)
		if !ok {
			log.Printf("Viewer: no media for project=%s", req.Project)
			s.renderViewer(c, sess.Do(nil))
			return
		}

		now := time.Now()
		src := viewer.Source(req.Source)
		if src == "" {
			src = viewer.SourceClick
		}
		// Inline media open from their click; only gallery figures take taps.
		if src == viewer.SourceTouch && (gallery == nil || !viewer.IsTap(req.gesture(now))) {
			s.renderViewer(c, sess.Do(nil))
			return
		}
		if src == viewer.SourceClick && item.Kind == viewer.Video && viewer.InControlStrip(req.OffsetY, req.Height) {
			s.renderViewer(c, sess.Do(nil))
			return
		}

		var opened bool
		view := sess.Do(func(v *viewer.Viewer, d *viewer.Deduper) {
			if !d.Allow(req.Gesture, src, now) {
				return
			}
			var err error
			if gallery != nil {
				err = v.Open(item, item.Caption, gallery, index)
			} else {
				err = v.OpenSingle(item, item.Caption)
			}
			if err != nil {
				log.Printf("Viewer: open %s: %v", item.SourceURL, err)
				return
			}
			opened = true
		})
		if opened {
			s.trackMediaView(p.ID, item, index)
		}
		s.renderViewer(c, view)
	})

	g.POST("/next", s.navigate((*viewer.Viewer).Next))
	g.POST("/prev", s.navigate((*viewer.Viewer).Prev))

	g.POST("/close", func(c *gin.Context) {
		s.renderViewer(c, s.viewerSession(c).Do(func(v *viewer.Viewer, _ *viewer.Deduper) {
			v.Close()
		}))
	})

	g.POST("/key", func(c *gin.Context) {
		key := viewer.Key(c.PostForm("key"))
		var before *viewer.Item
		var after *viewer.Item
		var index int
		view := s.viewerSession(c).Do(func(v *viewer.Viewer, _ *viewer.Deduper) {
			before = v.Current()
			viewer.HandleKey(v, key)
			after = v.Current()
			index, _ = v.Index()
		})
		if after != nil && after != before {
			s.trackMediaView(c.PostForm("project"), after, index)
		}
		s.renderViewer(c, view)
	})

	g.POST("/overlay", func(c *gin.Context) {
		target := viewer.OverlayTarget(c.PostForm("target"))
		s.renderViewer(c, s.viewerSession(c).Do(func(v *viewer.Viewer, _ *viewer.Deduper) {
			viewer.HandleOverlayClick(v, target)
		}))
	})
}

// navigate wraps a gallery step, recording the newly shown item.
func (s *server) navigate(step func(*viewer.Viewer)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var before, after *viewer.Item
		var index int
		view := s.viewerSession(c).Do(func(v *viewer.Viewer, _ *viewer.Deduper) {
			before = v.Current()
			step(v)
			after = v.Current()
			index, _ = v.Index()
		})
		if after != nil && after != before {
			s.trackMediaView(c.PostForm("project"), after, index)
		}
		s.renderViewer(c, view)
	}
}

func (s *server) renderViewer(c *gin.Context, view viewer.View) {
	c.HTML(http.StatusOK, "viewer.html", gin.H{
		"viewer":    view,
		"projectID": c.PostForm("project"),
	})
}

// trackMediaView records a viewer impression in the background.
func (s *server) trackMediaView(projectID string, item *viewer.Item, index int) {
	if s.db == nil || projectID == "" {
		return
	}
	mv := mediaView{ProjectID: projectID, SourceURL: item.SourceURL, Kind: item.Kind.String(), Index: index}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := recordMediaView(ctx, s.db, mv); err != nil {
			log.Printf("Error recording media view: %v", err)
		}
	}()
}

type carouselSlide struct {
	Index  int
	Src    string
	Active bool
}

func carouselData(p *portfolio.Project, st carousel.State, action carousel.Action) gin.H {
	slides := make([]carouselSlide, len(p.Slides))
	for i, src := range p.Slides {
		slides[i] = carouselSlide{Index: i, Src: src, Active: st.Active(i)}
	}
	return gin.H{
		"projectID": p.ID,
		"current":   st.Current,
		"slides":    slides,
		"delayMS":   carousel.Delay(action).Milliseconds(),
	}
}

// handleCarousel advances a project's carousel from the slide the browser
// reports it is showing.
func (s *server) handleCarousel(c *gin.Context) {
	p, ok := s.catalog.Project(c.Param("id"))
	if !ok || len(p.Slides) == 0 {
		c.String(http.StatusNotFound, "no carousel")
		return
	}
	slide, _ := strconv.Atoi(c.Query("slide"))
	st := carousel.New(len(p.Slides), slide)

	action := carousel.Action(c.DefaultQuery("action", string(carousel.ActionNext)))
	switch action {
	case carousel.ActionNext:
		st = st.Next()
	case carousel.ActionPrev:
		st = st.Prev()
	case carousel.ActionShow:
		to, err := strconv.Atoi(c.Query("to"))
		if err == nil {
			st = st.Show(to)
		}
	case carousel.ActionSwipe:
		startX, err1 := strconv.ParseFloat(c.Query("start_x"), 64)
		endX, err2 := strconv.ParseFloat(c.Query("end_x"), 64)
		if err1 == nil && err2 == nil {
			st = st.Swipe(startX, endX)
		}
	}
	c.HTML(http.StatusOK, "carousel.html", carouselData(p, st, action))
}
