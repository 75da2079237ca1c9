// Package store provides SQLite-backed durable storage for student records.
//
// The store owns a single table:
//
//	students(id, name, gender, state, well_dressed, well_behaved)
//
// # Invariants
//
//   - Normalization: text fields are trimmed and case-folded exactly once,
//     inside Create, so readers compare with exact string equality
//   - Identity: ids come from INTEGER PRIMARY KEY AUTOINCREMENT, so they are
//     strictly increasing and never reused, and a failed insert does not
//     advance the sequence. A table from an older database declared as plain
//     INTEGER PRIMARY KEY is rebuilt by EnsureSchema; ids deleted from it
//     before the rebuild are not tracked
//   - Ordering: ListAll returns records ORDER BY id ASC
//   - Durability: every Create is committed before its id is returned
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=FULL: a returned id survives power loss
//   - busy_timeout=5000
//   - one open connection for the life of the process
//
// # Errors
//
// Every failure is an *Error carrying a Kind (ConnectionError, SchemaError or
// StorageError). Callers branch with IsKind.
package store
