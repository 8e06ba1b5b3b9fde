package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS analyses (
    id TEXT PRIMARY KEY,
    source_path TEXT,
    format TEXT,
    source_bytes INTEGER,
    total_lines INTEGER,
    total_characters INTEGER,
    total_words INTEGER,
    unique_words INTEGER,
    special_characters INTEGER,
    top_words_limit INTEGER,
    reading_level REAL,
    average_sentence_length REAL,
    sentiment_label TEXT,
    sentiment_provider TEXT,
    analyzed_at TEXT
);

CREATE TABLE IF NOT EXISTS top_words (
    analysis_id TEXT,
    position INTEGER,
    word TEXT,
    count INTEGER,
    PRIMARY KEY (analysis_id, position)
);

CREATE INDEX IF NOT EXISTS idx_analyses_analyzed_at ON analyses(analyzed_at);
`

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}
