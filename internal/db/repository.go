package db

import (
	"database/sql"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"doc_analyzer/internal/analyzer"
)

// timeLayout has fixed-width fractions so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type Entry struct {
	ID     string
	Result analyzer.Result
}

func SaveAnalysis(dbPath string, res *analyzer.Result) (string, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	tx, err := conn.Begin()
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	id := uuid.NewString()
	if _, err := tx.Exec(
		`INSERT INTO analyses(id, source_path, format, source_bytes, total_lines, total_characters, total_words,
			unique_words, special_characters, top_words_limit, reading_level, average_sentence_length,
			sentiment_label, sentiment_provider, analyzed_at) VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		id,
		res.SourcePath,
		res.Format,
		res.SourceBytes,
		res.TotalLines,
		res.TotalCharacters,
		res.TotalWords,
		res.UniqueWords,
		res.SpecialCharacters,
		res.TopWordsLimit,
		res.ReadingLevel,
		res.AverageSentenceLength,
		res.SentimentLabel,
		res.SentimentProvider,
		res.AnalyzedAt.UTC().Format(timeLayout),
	); err != nil {
		return "", fmt.Errorf("insert analysis: %w", err)
	}

	for i, wc := range res.TopWords {
		if _, err := tx.Exec(
			`INSERT INTO top_words(analysis_id, position, word, count) VALUES(?,?,?,?)`,
			id, i+1, wc.Word, wc.Count,
		); err != nil {
			return "", fmt.Errorf("insert top word: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit tx: %w", err)
	}
	return id, nil
}

func ListAnalyses(dbPath string, limit int) ([]Entry, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if limit <= 0 {
		limit = -1
	}
	rows, err := conn.Query(
		`SELECT id, source_path, format, source_bytes, total_lines, total_characters, total_words, unique_words,
			special_characters, top_words_limit, reading_level, average_sentence_length, sentiment_label,
			sentiment_provider, analyzed_at
		FROM analyses ORDER BY analyzed_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var analyzedAt string
		r := &e.Result
		if err := rows.Scan(&e.ID, &r.SourcePath, &r.Format, &r.SourceBytes, &r.TotalLines, &r.TotalCharacters,
			&r.TotalWords, &r.UniqueWords, &r.SpecialCharacters, &r.TopWordsLimit, &r.ReadingLevel, &r.AverageSentenceLength,
			&r.SentimentLabel, &r.SentimentProvider, &analyzedAt); err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		if r.AnalyzedAt, err = time.Parse(timeLayout, analyzedAt); err != nil {
			return nil, fmt.Errorf("parse analyzed_at: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analyses: %w", err)
	}

	for i := range out {
		words, err := topWordsFor(conn, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Result.TopWords = words
	}
	return out, nil
}

func topWordsFor(conn *sql.DB, id string) ([]analyzer.WordCount, error) {
	rows, err := conn.Query(`SELECT word, count FROM top_words WHERE analysis_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("query top words: %w", err)
	}
	defer rows.Close()

	words := []analyzer.WordCount{}
	for rows.Next() {
		var wc analyzer.WordCount
		if err := rows.Scan(&wc.Word, &wc.Count); err != nil {
			return nil, fmt.Errorf("scan top word: %w", err)
		}
		words = append(words, wc)
	}
	return words, rows.Err()
}

var tables = []string{"analyses", "top_words"}

func CountRows(dbPath, table string) (int, error) {
	if !slices.Contains(tables, table) {
		return 0, fmt.Errorf("unknown table %q", table)
	}
	conn, err := Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer conn.Close()
	return countRowsConn(conn, table)
}

func countRowsConn(conn *sql.DB, table string) (int, error) {
	row := conn.QueryRow(`SELECT COUNT(*) FROM ` + table)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}
