package storage

const Schema = `
-- Word to stem pairs, one row per algorithm that produced them
CREATE TABLE IF NOT EXISTS stems (
    word TEXT NOT NULL,
    algorithm TEXT NOT NULL,
    stem TEXT NOT NULL,
    PRIMARY KEY (word, algorithm)
);
CREATE INDEX IF NOT EXISTS idx_stems_stem ON stems(algorithm, stem);

-- Stemmed input documents
CREATE TABLE IF NOT EXISTS documents (
    doc_id INTEGER PRIMARY KEY AUTOINCREMENT,
    path TEXT NOT NULL,
    algorithm TEXT NOT NULL,
    total_terms INTEGER NOT NULL,
    unique_terms INTEGER NOT NULL,
    stemmed_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (path, algorithm)
);

-- Stem frequencies per document
CREATE TABLE IF NOT EXISTS stem_counts (
    doc_id INTEGER NOT NULL,
    stem TEXT NOT NULL,
    count INTEGER NOT NULL,
    PRIMARY KEY (doc_id, stem),
    FOREIGN KEY (doc_id) REFERENCES documents(doc_id)
);

CREATE TABLE IF NOT EXISTS store_metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

INSERT OR IGNORE INTO store_metadata (key, value) VALUES
    ('store_version', '1');
`
