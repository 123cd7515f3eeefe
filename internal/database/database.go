package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Document is a stored rich text document.
type Document struct {
	ID        int64
	Title     string
	HTML      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DB struct {
	conn *sql.DB
}

// New creates a new database connection
func New(dbPath string) (*DB, error) {
	// Create app data directory if it doesn't exist
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %v", err)
	}

	// Open database connection
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	// Test the connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %v", err)
	}

	db := &DB{conn: conn}

	// Initialize database schema
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize database schema: %v", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// initSchema creates the necessary tables if they don't exist
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL DEFAULT '',
		html TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_documents_updated_at ON documents(updated_at);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// SaveDocument inserts a new document or updates an existing one, returning
// its id
func (db *DB) SaveDocument(doc *Document) (int64, error) {
	if doc.ID == 0 {
		result, err := db.conn.Exec(
			`INSERT INTO documents (title, html) VALUES (?, ?)`,
			doc.Title, doc.HTML)
		if err != nil {
			return 0, fmt.Errorf("failed to insert document: %v", err)
		}
		return result.LastInsertId()
	}

	_, err := db.conn.Exec(
		`UPDATE documents SET title = ?, html = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		doc.Title, doc.HTML, doc.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to update document: %v", err)
	}
	return doc.ID, nil
}

// GetDocument loads one document by id
func (db *DB) GetDocument(id int64) (*Document, error) {
	row := db.conn.QueryRow(
		`SELECT id, title, html, created_at, updated_at FROM documents WHERE id = ?`, id)

	var doc Document
	err := row.Scan(&doc.ID, &doc.Title, &doc.HTML, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to load document %d: %v", id, err)
	}
	return &doc, nil
}

// ListDocuments returns all documents, most recently updated first
func (db *DB) ListDocuments() ([]Document, error) {
	rows, err := db.conn.Query(
		`SELECT id, title, html, created_at, updated_at FROM documents ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %v", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Title, &doc.HTML, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %v", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// DeleteDocument removes a document by id
func (db *DB) DeleteDocument(id int64) error {
	_, err := db.conn.Exec(`DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document %d: %v", id, err)
	}
	return nil
}
