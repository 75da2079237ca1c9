package testutil

// FixedRunID returns the same run id every time.
//
// This keeps JSON command output byte-identical across test runs.
// Unlike runid.SequenceGenerator, it never runs out.
//
// Thread-safety: FixedRunID is stateless and safe for concurrent use.
type FixedRunID struct {
	id string
}

// NewFixedRunID creates a fixed run id generator.
// If id is empty, Generate() returns "test-run-default".
func NewFixedRunID(id string) *FixedRunID {
	if id == "" {
		id = "test-run-default"
	}
	return &FixedRunID{id: id}
}

// Generate returns the fixed id.
//
// Implements runid.Generator.
func (g *FixedRunID) Generate() string {
	return g.id
}
