package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS advisor_responses (
    kind        TEXT NOT NULL,
    digest      TEXT NOT NULL,
    response    TEXT NOT NULL,
    fetched_at  TEXT NOT NULL,
    PRIMARY KEY (kind, digest)
);

CREATE INDEX IF NOT EXISTS idx_advisor_fetched ON advisor_responses(fetched_at);
`
