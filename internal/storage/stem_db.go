package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type StemDB struct {
	db *sql.DB
}

type Document struct {
	Path        string
	Algorithm   string
	StemPairs   map[string]string
	Frequencies map[string]int
	TotalTerms  int
}

func NewStemDB(dbPath string) (*StemDB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open stem database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	stemDB := &StemDB{
		db: db,
	}

	if err := stemDB.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return stemDB, nil
}

func (sdb *StemDB) initSchema() error {
	_, err := sdb.db.Exec(Schema)
	return err
}

// SaveDocument stores the document, its stem counts and its word/stem
// pairs in one transaction. Saving the same path and algorithm again
// replaces the earlier counts.
func (sdb *StemDB) SaveDocument(doc Document) (int64, error) {
	tx, err := sdb.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var docID int64
	err = tx.QueryRow(
		"SELECT doc_id FROM documents WHERE path = ? AND algorithm = ?",
		doc.Path, doc.Algorithm,
	).Scan(&docID)

	switch {
	case err == sql.ErrNoRows:
		result, err := tx.Exec(
			"INSERT INTO documents (path, algorithm, total_terms, unique_terms) VALUES (?, ?, ?, ?)",
			doc.Path, doc.Algorithm, doc.TotalTerms, len(doc.Frequencies),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert document: %w", err)
		}
		if docID, err = result.LastInsertId(); err != nil {
			return 0, err
		}
	case err != nil:
		return 0, fmt.Errorf("failed to look up document: %w", err)
	default:
		if _, err := tx.Exec(
			"UPDATE documents SET total_terms = ?, unique_terms = ?, stemmed_at = CURRENT_TIMESTAMP WHERE doc_id = ?",
			doc.TotalTerms, len(doc.Frequencies), docID,
		); err != nil {
			return 0, fmt.Errorf("failed to update document: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM stem_counts WHERE doc_id = ?", docID); err != nil {
			return 0, fmt.Errorf("failed to clear stem counts: %w", err)
		}
	}

	countStmt, err := tx.Prepare("INSERT INTO stem_counts (doc_id, stem, count) VALUES (?, ?, ?)")
	if err != nil {
		return 0, err
	}
	defer countStmt.Close()

	for stem, count := range doc.Frequencies {
		if _, err := countStmt.Exec(docID, stem, count); err != nil {
			return 0, fmt.Errorf("failed to save count for %q: %w", stem, err)
		}
	}

	pairStmt, err := tx.Prepare("INSERT OR REPLACE INTO stems (word, algorithm, stem) VALUES (?, ?, ?)")
	if err != nil {
		return 0, err
	}
	defer pairStmt.Close()

	for word, stem := range doc.StemPairs {
		if _, err := pairStmt.Exec(word, doc.Algorithm, stem); err != nil {
			return 0, fmt.Errorf("failed to save stem for %q: %w", word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return docID, nil
}

// LookupStem returns sql.ErrNoRows when the word was never stored.
func (sdb *StemDB) LookupStem(word, algorithm string) (string, error) {
	var stem string
	err := sdb.db.QueryRow(
		"SELECT stem FROM stems WHERE word = ? AND algorithm = ?",
		word, algorithm,
	).Scan(&stem)
	return stem, err
}

func (sdb *StemDB) WordsForStem(stem, algorithm string) ([]string, error) {
	rows, err := sdb.db.Query(
		"SELECT word FROM stems WHERE stem = ? AND algorithm = ? ORDER BY word",
		stem, algorithm,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

func (sdb *StemDB) GetStemCount(docID int64, stem string) (int, error) {
	var count int
	err := sdb.db.QueryRow(
		"SELECT COALESCE(SUM(count), 0) FROM stem_counts WHERE doc_id = ? AND stem = ?",
		docID, stem,
	).Scan(&count)
	return count, err
}

func (sdb *StemDB) GetDocumentCount() (int, error) {
	var count int
	err := sdb.db.QueryRow("SELECT COUNT(*) FROM documents").Scan(&count)
	return count, err
}

func (sdb *StemDB) SetMetadata(key, value string) error {
	_, err := sdb.db.Exec(
		"INSERT OR REPLACE INTO store_metadata (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)",
		key, value,
	)
	return err
}

func (sdb *StemDB) GetMetadata(key string) (string, error) {
	var value string
	err := sdb.db.QueryRow(
		"SELECT value FROM store_metadata WHERE key = ?",
		key,
	).Scan(&value)
	return value, err
}

func (sdb *StemDB) Close() error {
	return sdb.db.Close()
}
