package roster

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	"gopkg.in/yaml.v3"

	"github.com/roach88/scholar/internal/record"
)

//go:embed schema.cue
var schemaSource string

// Entry is one student in a roster file.
type Entry struct {
	Name        string `yaml:"name" json:"name"`
	Gender      string `yaml:"gender" json:"gender"`
	State       string `yaml:"state" json:"state"`
	WellDressed Flag   `yaml:"well_dressed" json:"well_dressed"`
	WellBehaved Flag   `yaml:"well_behaved" json:"well_behaved"`
}

// Draft converts e to a store draft. No normalization is applied here.
func (e Entry) Draft() record.Draft {
	return record.Draft{
		Name:        e.Name,
		Gender:      e.Gender,
		State:       e.State,
		WellDressed: bool(e.WellDressed),
		WellBehaved: bool(e.WellBehaved),
	}
}

// File is the top-level shape of a roster.
type File struct {
	Students []Entry `yaml:"students" json:"students"`
}

// LoadError reports a roster that could not be read or failed validation.
type LoadError struct {
	Path    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Load reads the roster at path and returns its entries in file order.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("failed to read roster file: %v", err)}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(path, data)
	case ".cue":
		return parseCUE(path, data)
	default:
		return nil, &LoadError{Path: path, Message: "unsupported roster format (want .yaml, .yml or .cue)"}
	}
}

// parseYAML decodes strictly, then checks the result against the schema.
func parseYAML(path string, data []byte) ([]Entry, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&f); err != nil {
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("failed to parse YAML: %v", err)}
	}

	// A nil slice would encode as null and conflict with the list schema.
	if f.Students == nil {
		f.Students = []Entry{}
	}

	ctx := cuecontext.New()
	schema, err := compileSchema(ctx)
	if err != nil {
		return nil, err
	}

	v := schema.Unify(ctx.Encode(f))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, cueLoadError(path, err)
	}

	return f.Students, nil
}

// parseCUE evaluates the file unified with the schema and decodes the
// concrete result.
func parseCUE(path string, data []byte) ([]Entry, error) {
	ctx := cuecontext.New()
	schema, err := compileSchema(ctx)
	if err != nil {
		return nil, err
	}

	src := ctx.CompileBytes(data, cue.Filename(path))
	if err := src.Err(); err != nil {
		return nil, cueLoadError(path, err)
	}

	v := schema.Unify(src)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, cueLoadError(path, err)
	}

	raw, err := v.MarshalJSON()
	if err != nil {
		return nil, cueLoadError(path, err)
	}

	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("failed to decode roster: %v", err)}
	}
	if f.Students == nil {
		f.Students = []Entry{}
	}
	return f.Students, nil
}

func compileSchema(ctx *cue.Context) (cue.Value, error) {
	v := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := v.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("compile roster schema: %w", err)
	}
	return v.LookupPath(cue.ParsePath("#Roster")), nil
}

// cueLoadError converts the first CUE error into a LoadError with position.
func cueLoadError(path string, err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Path: path, Message: err.Error()}
	}

	first := errs[0]
	le := &LoadError{Path: path, Message: first.Error()}
	if positions := errors.Positions(first); len(positions) > 0 && positions[0].Filename() == path {
		le.Pos = positions[0]
	}
	return le
}
