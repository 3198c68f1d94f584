package storage

const schemaV1 = `
CREATE TABLE IF NOT EXISTS runs (
    run_id          INTEGER PRIMARY KEY AUTOINCREMENT,
    run_uuid        TEXT UNIQUE NOT NULL,
    hostname        TEXT NOT NULL,
    os_family       TEXT NOT NULL,
    cli_version     TEXT,
    run_timestamp   DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp
    ON runs(run_timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_runs_hostname
    ON runs(hostname, run_id);

CREATE TABLE IF NOT EXISTS observations (
    observation_id  INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id          INTEGER NOT NULL,
    fact_name       TEXT NOT NULL,
    value           TEXT NOT NULL DEFAULT '',
    resolved        INTEGER NOT NULL DEFAULT 0,
    suitable        INTEGER NOT NULL DEFAULT 0,
    created_at      DATETIME DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_observations_run ON observations(run_id);
CREATE INDEX IF NOT EXISTS idx_observations_fact ON observations(fact_name, run_id);
`
