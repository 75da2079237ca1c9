// Package record defines the student record types shared by the store, the
// award calculator and the presentation layer.
//
// This package contains types and the write-time normalization rules only.
// It imports nothing internal, so every other package can depend on it.
//
// Key constraints:
//   - Normalization is applied once, by the store, before insertion
//   - Normalized fields are compared with exact string equality downstream
//   - Booleans are persisted as the integers 0 and 1
//   - All JSON tags use snake_case
package record
