package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateReelsVideos, downCreateReelsVideos)
}

func upCreateReelsVideos(ctx context.Context, tx *sql.Tx) error {
	createVideoTable := `
	CREATE TABLE videos (
		id UUID PRIMARY KEY,
		posting_user_id UUID NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		video_length_seconds INTEGER NOT NULL CHECK (video_length_seconds >= 0),
		video_url TEXT NOT NULL
	);
	`
	if _, err := tx.ExecContext(ctx, createVideoTable); err != nil {
		return fmt.Errorf("could not create videos table: %w", err)
	}

	// A reel owns exactly one video; the video cannot go away underneath it.
	createReelTable := `
	CREATE TABLE reels (
		id UUID PRIMARY KEY,
		video_id UUID NOT NULL UNIQUE REFERENCES videos(id) ON DELETE RESTRICT,
		posting_user_id UUID NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		creation_timestamp TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);
	`
	if _, err := tx.ExecContext(ctx, createReelTable); err != nil {
		return fmt.Errorf("could not create reels table: %w", err)
	}

	indexes := []string{
		`CREATE INDEX idx_reels_creation_timestamp ON reels (creation_timestamp DESC, id DESC);`,
		`CREATE INDEX idx_reels_posting_user_id ON reels (posting_user_id, creation_timestamp DESC);`,
		`CREATE INDEX idx_videos_video_url ON videos (video_url);`,
	}
	for _, stmt := range indexes {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not create index: %w", err)
		}
	}
	return nil
}

func downCreateReelsVideos(ctx context.Context, tx *sql.Tx) error {
	for _, table := range []string{"reels", "videos"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s;", table)); err != nil {
			return fmt.Errorf("could not drop table %s: %w", table, err)
		}
	}
	return nil
}
