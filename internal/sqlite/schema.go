// Package sqlite implements the persistent session store on SQLite.
// One store file holds the records of any number of session scopes; all
// access is partitioned by scope.
package sqlite

// Schema DDL. Breadcrumbs carry a UNIQUE(scope, name) constraint so that
// upserts are a single atomic statement; everything else is append-only.
const (
	createBreadcrumb = `CREATE TABLE breadcrumb (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    correlation_tag TEXT NOT NULL DEFAULT '',
    scope TEXT NOT NULL,
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    payload TEXT NOT NULL,
    UNIQUE (scope, name)
);`

	createInteraction = `CREATE TABLE interaction (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    correlation_tag TEXT NOT NULL DEFAULT '',
    scope TEXT NOT NULL,
    action TEXT NOT NULL,
    user_address TEXT NOT NULL,
    contract_address TEXT NOT NULL,
    transaction_hash TEXT NOT NULL,
    timestamp TEXT NOT NULL,
    round INTEGER NOT NULL,
    epoch INTEGER NOT NULL,
    block_nonce INTEGER NOT NULL,
    hyperblock_nonce INTEGER NOT NULL,
    input TEXT NOT NULL,
    transfers TEXT NOT NULL,
    output TEXT
);`

	createAccountSnapshot = `CREATE TABLE account_snapshot (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    correlation_tag TEXT NOT NULL DEFAULT '',
    scope TEXT NOT NULL,
    address TEXT NOT NULL,
    nonce INTEGER NOT NULL,
    balance TEXT NOT NULL,
    fungible_tokens TEXT NOT NULL,
    non_fungible_tokens TEXT NOT NULL,
    taken_before_interaction INTEGER,
    taken_after_interaction INTEGER
);`

	createEvent = `CREATE TABLE event (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    correlation_tag TEXT NOT NULL DEFAULT '',
    scope TEXT NOT NULL,
    kind TEXT NOT NULL,
    summary TEXT NOT NULL,
    payload TEXT NOT NULL,
    interaction INTEGER
);`
)

// schemaStatements lists the DDL run when a new store file is created.
var schemaStatements = []string{
	createBreadcrumb,
	createInteraction,
	createAccountSnapshot,
	createEvent,
}

// requiredTables is the set checked against sqlite_master when opening an
// existing store file.
var requiredTables = []string{"breadcrumb", "interaction", "account_snapshot", "event"}
