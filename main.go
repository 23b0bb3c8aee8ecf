package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Paridhii27/portfolio/internal/carousel"
	"github.com/Paridhii27/portfolio/internal/portfolio"
	"github.com/Paridhii27/portfolio/internal/viewer"
)

type server struct {
	cfg     Config
	db      *sql.DB
	catalog *portfolio.Catalog
	viewers *viewer.Registry
	mailer  contactSender

	adminToken  string
	hashingSalt string
}

func newServer(cfg Config, db *sql.DB, mailer contactSender) *server {
	s := &server{
		cfg:     cfg,
		db:      db,
		catalog: portfolio.Default(),
		viewers: viewer.NewRegistry(cfg.ViewerSessionTTL),
		mailer:  mailer,
	}
	s.initAdminToken()
	return s
}

func (s *server) routes() *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	r.Static("/assets", "./assets")
	r.Static("/static", "./static")

	r.Use(s.visitorTrackingMiddleware())

	// Home page route
	r.GET("/", func(c *gin.Context) {
		s.renderFeatured(c, "index.html", s.catalog.DefaultFeatured())
	})

	// HTMX featured project swap
	r.GET("/featured/:id", func(c *gin.Context) {
		id := c.Param("id")
		if !s.catalog.IsFeatured(id) {
			c.String(http.StatusNotFound, "unknown project")
			return
		}
		s.renderFeatured(c, "featured.html", id)
	})

	r.GET("/projects", func(c *gin.Context) {
		category := c.DefaultQuery("category", "all")
		data := gin.H{
			"nav":      portfolio.NavLinks("Projects"),
			"filters":  portfolio.FilterButtons(),
			"category": category,
			"projects": s.catalog.Filter(category),
		}
		// HTMX filter clicks only need the grid
		if c.GetHeader("HX-Request") == "true" {
			c.HTML(http.StatusOK, "project-grid.html", data)
			return
		}
		c.HTML(http.StatusOK, "projects.html", data)
	})

	r.GET("/projects/:id", func(c *gin.Context) {
		p, ok := s.catalog.Project(c.Param("id"))
		if !ok {
			c.HTML(http.StatusNotFound, "not-found.html", gin.H{"nav": portfolio.NavLinks("")})
			return
		}
		c.HTML(http.StatusOK, "project.html", gin.H{
			"nav":       portfolio.NavLinks("Projects"),
			"project":   p,
			"carousel":  carouselData(p, carousel.New(len(p.Slides), 0), carousel.ActionNext),
			"viewer":    s.viewerSession(c).Do(nil),
			"projectID": p.ID,
		})
	})

	r.GET("/carousel/:id", s.handleCarousel)

	r.GET("/about", func(c *gin.Context) {
		c.HTML(http.StatusOK, "about.html", gin.H{
			"nav":   portfolio.NavLinks("About"),
			"about": portfolio.AboutMe,
		})
	})

	s.setupViewerRoutes(r)

	// HTMX Contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})

	// Handle contact form submission with HTMX
	r.POST("/contact", func(c *gin.Context) {
		name := strings.TrimSpace(c.PostForm("fullName"))
		email := strings.TrimSpace(c.PostForm("email"))
		message := strings.TrimSpace(c.PostForm("message"))

		if name == "" || email == "" || message == "" {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Please fill in your name, email and message.",
			})
			return
		}

		if err := s.mailer.SendContact(name, email, message); err != nil {
			log.Printf("Error sending contact email: %v", err)
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Sorry, there was an error sending your message. Please try again later.",
			})
			return
		}

		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success": "Thank you for your message! I'll get back to you soon.",
		})
	})

	s.setupAdminRoutes(r)
	return r
}

func (s *server) renderFeatured(c *gin.Context, page, id string) {
	p, ok := s.catalog.Project(id)
	if !ok {
		c.HTML(http.StatusOK, page, gin.H{"nav": portfolio.NavLinks("Home")})
		return
	}
	c.HTML(http.StatusOK, page, gin.H{
		"nav":        portfolio.NavLinks("Home"),
		"featured":   p,
		"media":      p.Featured(),
		"thumbnails": s.catalog.Thumbnails(id),
	})
}

func main() {
	cfg := loadConfig()

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := newServer(cfg, db, newSMTPMailer(cfg))
	go s.viewers.Run(ctx, time.Minute)
	go cleanupOldData(db)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s.routes(),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Listening on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("Server error:", err)
	}
}
