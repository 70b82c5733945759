// ABOUTME: Book catalog storage for the MoodReads recommendation system
// ABOUTME: Handles XDG directories and the SQLite database of books and analyzed sources
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/moodreads/moodreads/internal/models"
)

// Storage manages the persistent book catalog and its analyzed source profiles
type Storage struct {
	basePath string
	db       *sql.DB
	mu       sync.Mutex // Protects concurrent catalog writes
}

// NewStorage initializes storage with XDG-compliant paths
func NewStorage() (*Storage, error) {
	// Use XDG data directory: ~/.local/share/moodreads/
	// Respects XDG_DATA_HOME environment variable override for testing
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = xdg.DataHome
	}
	basePath := filepath.Join(dataHome, "moodreads")

	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", basePath, err)
	}

	// Initialize SQLite database
	dbPath := filepath.Join(basePath, "catalog.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS books (
		book_id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		author TEXT NOT NULL,
		genre TEXT,
		rating REAL DEFAULT 0,
		cover_url TEXT,
		goodreads_url TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS source_profiles (
		profile_id TEXT PRIMARY KEY,
		book_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		signals TEXT NOT NULL,
		arc TEXT,
		keywords TEXT,
		summary TEXT,
		analyzed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(book_id, kind)
	);

	CREATE INDEX IF NOT EXISTS idx_sources_book ON source_profiles(book_id);
	CREATE INDEX IF NOT EXISTS idx_books_author ON books(author);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Storage{
		basePath: basePath,
		db:       db,
	}, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// BasePath returns the data directory this storage writes under
func (s *Storage) BasePath() string {
	return s.basePath
}

// AddBook inserts a book into the catalog, assigning an ID when absent
func (s *Storage) AddBook(book *models.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if book.BookID == "" {
		book.BookID = fmt.Sprintf("book_%s", uuid.New().String()[:8])
	}
	if book.CreatedAt.IsZero() {
		book.CreatedAt = time.Now()
	}
	if strings.TrimSpace(book.Title) == "" {
		return fmt.Errorf("book title is required")
	}

	_, err := s.db.Exec(`
		INSERT INTO books (book_id, title, author, genre, rating, cover_url, goodreads_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, book.BookID, book.Title, book.Author, book.Genre, book.Rating, book.CoverURL, book.GoodreadsURL, book.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}
	return nil
}

// GetBook retrieves a book by ID
func (s *Storage) GetBook(bookID string) (*models.Book, error) {
	row := s.db.QueryRow(`
		SELECT book_id, title, author, genre, rating, cover_url, goodreads_url, created_at
		FROM books
		WHERE book_id = ?
	`, bookID)

	var book models.Book
	err := row.Scan(
		&book.BookID,
		&book.Title,
		&book.Author,
		&book.Genre,
		&book.Rating,
		&book.CoverURL,
		&book.GoodreadsURL,
		&book.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("book not found: %s", bookID)
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return &book, nil
}

// ListBooks returns all books in the catalog, newest first
func (s *Storage) ListBooks() ([]models.Book, error) {
	rows, err := s.db.Query(`
		SELECT book_id, title, author, genre, rating, cover_url, goodreads_url, created_at
		FROM books
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

// SearchBooks finds books whose title, author, or genre matches the query
func (s *Storage) SearchBooks(query string, maxResults int) ([]models.Book, error) {
	if maxResults <= 0 {
		maxResults = 20
	}
	pattern := "%" + query + "%"

	rows, err := s.db.Query(`
		SELECT book_id, title, author, genre, rating, cover_url, goodreads_url, created_at
		FROM books
		WHERE title LIKE ? OR author LIKE ? OR genre LIKE ?
		ORDER BY rating DESC, created_at DESC
		LIMIT ?
	`, pattern, pattern, pattern, maxResults)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

// DeleteBook removes a book and its analyzed source profiles
func (s *Storage) DeleteBook(bookID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM source_profiles WHERE book_id = ?`, bookID); err != nil {
		return fmt.Errorf("failed to delete book sources: %w", err)
	}

	result, err := s.db.Exec(`DELETE FROM books WHERE book_id = ?`, bookID)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deletion: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("book not found: %s", bookID)
	}
	return nil
}

// SaveSourceProfile stores one analyzed source for a book, replacing any
// earlier analysis of the same source kind
func (s *Storage) SaveSourceProfile(profile *models.SourceProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if profile.BookID == "" {
		return fmt.Errorf("source profile requires a book ID")
	}
	if !profile.Kind.Valid() {
		return fmt.Errorf("invalid source kind: %s", profile.Kind)
	}
	if profile.ProfileID == "" {
		profile.ProfileID = fmt.Sprintf("profile_%s", uuid.New().String()[:8])
	}
	if profile.AnalyzedAt.IsZero() {
		profile.AnalyzedAt = time.Now()
	}

	signals, err := json.Marshal(profile.Signals)
	if err != nil {
		return fmt.Errorf("failed to marshal signals: %w", err)
	}
	arc, err := json.Marshal(profile.Arc)
	if err != nil {
		return fmt.Errorf("failed to marshal arc: %w", err)
	}
	keywords, err := json.Marshal(profile.Keywords)
	if err != nil {
		return fmt.Errorf("failed to marshal keywords: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO source_profiles (profile_id, book_id, kind, signals, arc, keywords, summary, analyzed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(book_id, kind) DO UPDATE SET
			profile_id = excluded.profile_id,
			signals = excluded.signals,
			arc = excluded.arc,
			keywords = excluded.keywords,
			summary = excluded.summary,
			analyzed_at = excluded.analyzed_at
	`, profile.ProfileID, profile.BookID, string(profile.Kind), string(signals), string(arc), string(keywords), profile.Summary, profile.AnalyzedAt)
	if err != nil {
		return fmt.Errorf("failed to save source profile: %w", err)
	}
	return nil
}

// GetSourceProfiles retrieves every analyzed source for a book
func (s *Storage) GetSourceProfiles(bookID string) ([]models.SourceProfile, error) {
	rows, err := s.db.Query(`
		SELECT profile_id, book_id, kind, signals, arc, keywords, summary, analyzed_at
		FROM source_profiles
		WHERE book_id = ?
		ORDER BY analyzed_at DESC
	`, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query source profiles: %w", err)
	}
	defer rows.Close()

	profiles := []models.SourceProfile{}
	for rows.Next() {
		var (
			profile  models.SourceProfile
			kind     string
			signals  string
			arc      sql.NullString
			keywords sql.NullString
		)
		if err := rows.Scan(
			&profile.ProfileID,
			&profile.BookID,
			&kind,
			&signals,
			&arc,
			&keywords,
			&profile.Summary,
			&profile.AnalyzedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan source profile: %w", err)
		}
		profile.Kind = models.SourceKind(kind)
		if err := json.Unmarshal([]byte(signals), &profile.Signals); err != nil {
			return nil, fmt.Errorf("failed to unmarshal signals for %s: %w", profile.ProfileID, err)
		}
		if arc.Valid && arc.String != "" {
			if err := json.Unmarshal([]byte(arc.String), &profile.Arc); err != nil {
				return nil, fmt.Errorf("failed to unmarshal arc for %s: %w", profile.ProfileID, err)
			}
		}
		if keywords.Valid && keywords.String != "" {
			if err := json.Unmarshal([]byte(keywords.String), &profile.Keywords); err != nil {
				return nil, fmt.Errorf("failed to unmarshal keywords for %s: %w", profile.ProfileID, err)
			}
		}
		profiles = append(profiles, profile)
	}

	return profiles, rows.Err()
}

// BookDetail returns the emotional arc and profile summary for a book,
// preferring the reviews source since readers describe the arc they felt.
// Missing detail is not an error: both returns may be empty.
func (s *Storage) BookDetail(bookID string) (*models.Arc, string) {
	profiles, err := s.GetSourceProfiles(bookID)
	if err != nil || len(profiles) == 0 {
		return nil, ""
	}

	best := profiles[0]
	for _, profile := range profiles {
		if profile.Kind == models.SourceReviews {
			best = profile
			break
		}
	}

	var arc *models.Arc
	if len(best.Arc.Beginning) > 0 || len(best.Arc.Middle) > 0 || len(best.Arc.End) > 0 {
		arc = &best.Arc
	}
	return arc, best.Summary
}

// CountBooks reports how many books the catalog holds
func (s *Storage) CountBooks() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM books`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}

func scanBooks(rows *sql.Rows) ([]models.Book, error) {
	books := []models.Book{}
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(
			&book.BookID,
			&book.Title,
			&book.Author,
			&book.Genre,
			&book.Rating,
			&book.CoverURL,
			&book.GoodreadsURL,
			&book.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}
	return books, rows.Err()
}
