package ensemble

const initSchemaSQL = `
CREATE TABLE IF NOT EXISTS members (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    tag         TEXT NOT NULL,
    created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    sample_rate REAL NOT NULL,
    speed_hz    REAL NOT NULL,
    load_kn     REAL NOT NULL,
    signal      BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS responses (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    member_id INTEGER NOT NULL REFERENCES members(id),
    fault     TEXT NOT NULL,
    column_ix INTEGER NOT NULL,
    value     REAL NOT NULL,
    UNIQUE (member_id, fault, column_ix)
);

CREATE INDEX IF NOT EXISTS idx_members_tag ON members(tag);
CREATE INDEX IF NOT EXISTS idx_responses_member ON responses(member_id);
`

const (
	insertMemberSQL = `
INSERT INTO members (tag, sample_rate, speed_hz, load_kn, signal)
VALUES (?, ?, ?, ?, ?)`

	selectMemberSQL = `
SELECT id, tag, sample_rate, speed_hz, load_kn, signal
FROM members
WHERE id = ?`

	insertResponseSQL = `
INSERT OR REPLACE INTO responses (member_id, fault, column_ix, value)
VALUES (?, ?, ?, ?)`

	selectResponsesSQL = `
SELECT fault, column_ix, value
FROM responses
WHERE member_id = ?
ORDER BY fault, column_ix`
)
