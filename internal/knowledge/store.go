package knowledge

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/pmpulse/analyzer/internal/report"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS documents (
	doc_id     TEXT PRIMARY KEY,
	domain     TEXT NOT NULL,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documents_domain ON documents(domain);
`
// #endregion schema

// #region store-struct
// Store persists knowledge-base documents in SQLite.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region seed-store
// Seed inserts the built-in practice base for a domain if that domain has no
// documents yet. Re-seeding an already populated domain is a no-op.
func (s *Store) Seed(domain report.Domain) error {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM documents WHERE domain = ?`, string(domain)).Scan(&count)
	if err != nil {
		return fmt.Errorf("count documents: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, doc := range DefaultDocuments(domain) {
		_, err := tx.Exec(
			`INSERT INTO documents (doc_id, domain, title, content, created_at) VALUES (?, ?, ?, ?, ?)`,
			doc.ID, doc.Domain, doc.Title, doc.Content, now,
		)
		if err != nil {
			return fmt.Errorf("insert document %s: %w", doc.ID, err)
		}
	}
	return tx.Commit()
}

// SeedAll seeds every known domain.
func (s *Store) SeedAll() error {
	for _, domain := range report.AllDomains() {
		if err := s.Seed(domain); err != nil {
			return err
		}
	}
	return nil
}
// #endregion seed-store

// #region add
// Add stores one document. An empty ID gets a generated one.
func (s *Store) Add(doc Document) (Document, error) {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	_, err := s.db.Exec(
		`INSERT INTO documents (doc_id, domain, title, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		doc.ID, doc.Domain, doc.Title, doc.Content, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return Document{}, fmt.Errorf("insert document: %w", err)
	}
	return doc, nil
}
// #endregion add

// #region get
// Get retrieves one document by ID.
func (s *Store) Get(id string) (Document, error) {
	var doc Document
	err := s.db.QueryRow(
		`SELECT doc_id, domain, title, content FROM documents WHERE doc_id = ?`, id,
	).Scan(&doc.ID, &doc.Domain, &doc.Title, &doc.Content)
	if err != nil {
		return Document{}, fmt.Errorf("get document %s: %w", id, err)
	}
	return doc, nil
}
// #endregion get

// #region list
// List returns all documents for a domain, ordered by ID.
func (s *Store) List(domain report.Domain) ([]Document, error) {
	rows, err := s.db.Query(
		`SELECT doc_id, domain, title, content FROM documents WHERE domain = ? ORDER BY doc_id`,
		string(domain),
	)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Domain, &doc.Title, &doc.Content); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
// #endregion list

// #region delete
// Delete removes one document by ID.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM documents WHERE doc_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("document %s not found", id)
	}
	return nil
}
// #endregion delete
