package main

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// VisitorMetric is one recorded page load. The client IP is stored only
// as a salted hash.
type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// MediaStat counts how often an item was shown in the fullscreen viewer.
type MediaStat struct {
	ProjectID  string `json:"project_id"`
	SourceURL  string `json:"source_url"`
	Kind       string `json:"kind"`
	Views      int    `json:"views"`
	LastViewed string `json:"last_viewed"`
}

// AdminStats backs the dashboard and the JSON stats endpoints.
type AdminStats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	TotalMediaViews  int64           `json:"total_media_views"`
	VideoViews       int64           `json:"video_views"`
	ActiveViewers    int             `json:"active_viewers"`
	TopMedia         []MediaStat     `json:"top_media"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
}

// initAdminToken mints the session token and the IP salt. Both change on
// every restart, which logs the admin out.
func (s *server) initAdminToken() {
	s.adminToken = generateAdminToken()
	s.hashingSalt = generateAdminToken()

	log.Printf("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", s.adminToken)
	}
}

func generateAdminToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate admin token:", err)
	}
	return hex.EncodeToString(bytes)
}

func (s *server) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + s.hashingSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func (s *server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// visitorTrackingMiddleware records full page loads. Fragments, viewer
// input and assets are not visits.
func (s *server) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if s.db == nil ||
			c.Request.Method != http.MethodGet ||
			c.GetHeader("HX-Request") == "true" ||
			strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/assets/") ||
			strings.HasPrefix(path, "/admin/") ||
			strings.HasPrefix(path, "/viewer") ||
			strings.HasPrefix(path, "/carousel/") ||
			strings.HasPrefix(path, "/favicon") ||
			strings.HasPrefix(path, "/privacy") ||
			c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		go s.trackVisitorPrivacy(c.ClientIP(), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}

func (s *server) trackVisitorPrivacy(ip, userAgent, path string) {
	hashedIP := s.hashIP(ip)

	_, err := s.db.Exec(`
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, hashedIP, userAgent, path, time.Now().UTC())

	if err != nil {
		log.Printf("Error recording visitor: %v", err)
	}
}

func (s *server) getAdminStats() (*AdminStats, error) {
	stats := &AdminStats{ActiveViewers: s.viewers.Len()}

	counts := []struct {
		query string
		dest  *int64
	}{
		{"SELECT COUNT(*) FROM visitors", &stats.TotalVisitors},
		{"SELECT COUNT(DISTINCT hashed_ip) FROM visitors", &stats.UniqueVisitors},
		{"SELECT COUNT(*) FROM media_views", &stats.TotalMediaViews},
		{"SELECT COUNT(*) FROM media_views WHERE kind = 'video'", &stats.VideoViews},
		{"SELECT COUNT(*) FROM visitors WHERE DATE(timestamp) = DATE('now')", &stats.VisitorsToday},
		{"SELECT COUNT(*) FROM visitors WHERE timestamp >= datetime('now', '-7 days')", &stats.VisitorsThisWeek},
	}
	for _, q := range counts {
		if err := s.db.QueryRow(q.query).Scan(q.dest); err != nil {
			return nil, err
		}
	}

	topMedia, err := s.mediaStats(10)
	if err != nil {
		return nil, err
	}
	stats.TopMedia = topMedia

	stats.RecentVisitors, err = s.recentVisitors(50)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *server) mediaStats(limit int) ([]MediaStat, error) {
	rows, err := s.db.Query(`
		SELECT project_id, source_url, kind, COUNT(*) AS views, MAX(timestamp) AS last_viewed
		FROM media_views
		GROUP BY project_id, source_url, kind
		ORDER BY views DESC, last_viewed DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MediaStat
	for rows.Next() {
		var m MediaStat
		if err := rows.Scan(&m.ProjectID, &m.SourceURL, &m.Kind, &m.Views, &m.LastViewed); err != nil {
			continue
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *server) recentVisitors(limit int) ([]VisitorMetric, error) {
	rows, err := s.db.Query(`
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors
		ORDER BY timestamp DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []VisitorMetric
	for rows.Next() {
		var visitor VisitorMetric
		err := rows.Scan(&visitor.ID, &visitor.HashedIP, &visitor.UserAgent, &visitor.Path, &visitor.Timestamp)
		if err != nil {
			continue
		}
		out = append(out, visitor)
	}
	return out, rows.Err()
}

func (s *server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title": "Privacy Policy",
		})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		adminUsername := s.cfg.AdminUsername
		adminPassword := s.cfg.AdminPassword

		// Dev fallback; deployments set ADMIN_USERNAME and ADMIN_PASSWORD.
		if adminUsername == "" {
			adminUsername = "admin"
			if gin.Mode() == gin.DebugMode {
				log.Println("WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
			}
		}
		if adminPassword == "" {
			adminPassword = "admin123"
			if gin.Mode() == gin.DebugMode {
				log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
			}
		}

		if username == adminUsername && password == adminPassword {
			c.SetCookie("admin_token", s.adminToken, 3600*24, "/admin", "", false, true)
			log.Printf("Admin login successful from %s", s.hashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
		} else {
			log.Printf("Failed admin login attempt from %s", s.hashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"error": "Invalid credentials",
			})
		}
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie("admin_token", "", -1, "/admin", "", false, true)
		log.Printf("Admin logout from %s", s.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(s.adminAuthMiddleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.getAdminStats()
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}

		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
		})
	})

	adminGroup.GET("/api/stats", s.statsJSON(false))
	adminGroup.GET("/export/stats", s.statsJSON(true))

	adminGroup.GET("/media", func(c *gin.Context) {
		media, err := s.mediaStats(200)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load media views",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-media.html", gin.H{
			"media": media,
		})
	})

	adminGroup.GET("/visitors", func(c *gin.Context) {
		visitors, err := s.recentVisitors(200)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}

		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"visitors": visitors,
		})
	})

	// Drops visitor rows past the retention window.
	adminGroup.POST("/privacy/delete-visitor-data", func(c *gin.Context) {
		go cleanupOldData(s.db)
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup initiated"})
	})
}

// statsJSON serves AdminStats as JSON, as a file attachment when download
// is set.
func (s *server) statsJSON(download bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := s.getAdminStats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if download {
			c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
			log.Printf("Admin stats exported by %s", s.hashIP(c.ClientIP()))
		}
		c.JSON(http.StatusOK, stats)
	}
}
