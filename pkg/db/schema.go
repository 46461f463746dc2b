package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Runs table: one row per invocation of the pipeline
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    finished_at TIMESTAMP,
    word_list TEXT NOT NULL,
    output_dir TEXT NOT NULL,
    language TEXT NOT NULL,
    line_count INTEGER DEFAULT 0,
    image_count INTEGER DEFAULT 0,
    status TEXT NOT NULL DEFAULT 'running',   -- running, success, failed
    error_message TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);

-- Documents analysed in a run
CREATE TABLE IF NOT EXISTS documents (
    document_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    label TEXT NOT NULL,
    path TEXT NOT NULL,
    token_count INTEGER NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, label)
);

CREATE INDEX IF NOT EXISTS idx_documents_run ON documents(run_id);

-- Per-line counts. position keeps the mapping's insertion order.
CREATE TABLE IF NOT EXISTS line_frequencies (
    frequency_id INTEGER PRIMARY KEY AUTOINCREMENT,
    document_id INTEGER NOT NULL,
    line_number INTEGER NOT NULL,
    position INTEGER NOT NULL,
    word TEXT NOT NULL,
    count INTEGER NOT NULL CHECK (count >= 0),
    FOREIGN KEY (document_id) REFERENCES documents(document_id) ON DELETE CASCADE,
    UNIQUE(document_id, line_number, word)
);

CREATE INDEX IF NOT EXISTS idx_line_freq_document ON line_frequencies(document_id, line_number);
CREATE INDEX IF NOT EXISTS idx_line_freq_word ON line_frequencies(word);

-- Accumulated counts that fed the word cloud
CREATE TABLE IF NOT EXISTS accumulated_frequencies (
    frequency_id INTEGER PRIMARY KEY AUTOINCREMENT,
    document_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    word TEXT NOT NULL,
    count INTEGER NOT NULL CHECK (count >= 0),
    FOREIGN KEY (document_id) REFERENCES documents(document_id) ON DELETE CASCADE,
    UNIQUE(document_id, word)
);
`
