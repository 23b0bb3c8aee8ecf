package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

func openDB(path string) (*sql.DB, error) {
	// sqlite time format keeps DATE()/datetime() usable on stored timestamps.
	db, err := sql.Open("sqlite", "file:"+path+"?_time_format=sqlite")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// sqlite allows one writer; serialize instead of hitting SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func initSchema(db *sql.DB) error {
	createVisitorTable := `
	CREATE TABLE IF NOT EXISTS visitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,  -- Store hashed IP instead of raw IP
		user_agent TEXT,
		path TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(createVisitorTable); err != nil {
		return fmt.Errorf("create visitors table: %w", err)
	}

	createMediaViewsTable := `
	CREATE TABLE IF NOT EXISTS media_views (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id TEXT NOT NULL,
		source_url TEXT NOT NULL,
		kind TEXT NOT NULL,
		gallery_index INTEGER,    -- NULL for standalone media
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(createMediaViewsTable); err != nil {
		return fmt.Errorf("create media_views table: %w", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_media_views_source ON media_views (source_url)`); err != nil {
		return fmt.Errorf("create media_views index: %w", err)
	}
	return nil
}

// mediaView is one item shown in the fullscreen viewer.
type mediaView struct {
	ProjectID string
	SourceURL string
	Kind      string
	Index     int // -1 for standalone media
}

func recordMediaView(ctx context.Context, db *sql.DB, v mediaView) error {
	var index any
	if v.Index >= 0 {
		index = v.Index
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO media_views (project_id, source_url, kind, gallery_index, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, v.ProjectID, v.SourceURL, v.Kind, index, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("record media view: %w", err)
	}
	return nil
}

// Cleanup old visitor and viewer data for privacy compliance
func cleanupOldData(db *sql.DB) {
	for _, table := range []string{"visitors", "media_views"} {
		result, err := db.Exec(`DELETE FROM ` + table + ` WHERE timestamp < ?`, time.Now().UTC().AddDate(-1, 0, 0))
		if err != nil {
			log.Printf("Error cleaning up old %s data: %v", table, err)
			continue
		}
		rowsDeleted, _ := result.RowsAffected()
		if rowsDeleted > 0 {
			log.Printf("Privacy cleanup: Removed %d %s records older than 12 months", rowsDeleted, table)
		}
	}
}
