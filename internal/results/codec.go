package results

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/abhisek/neurotrack/internal/assessment"
)

// SchemaVersion is stamped on every root this package writes.
const SchemaVersion = "v1.0.0"

//go:embed schemas/*.json
var schemaFS embed.FS

// schemaCache caches compiled JSON schemas by file name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// ErrMalformed indicates persisted data that cannot be used as-is.
type ErrMalformed struct {
	Key string
	Err error
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("malformed data under %q: %v", e.Key, e.Err)
}

func (e *ErrMalformed) Unwrap() error { return e.Err }

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(name string) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	raw, err := schemaFS.ReadFile("schemas/" + name)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", name, err)
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	url := "schema://" + name
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}

// validateJSON checks raw against the named schema.
func validateJSON(name string, raw []byte) error {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	compiled, err := getCompiledSchema(name)
	if err != nil {
		return err
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// checkSchemaVersion accepts a missing version (legacy data) and any v1.x.y.
func checkSchemaVersion(v string) error {
	if v == "" {
		return nil
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid schema version %q", v)
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return fmt.Errorf("unsupported schema version %s (this build reads %s)", v, semver.Major(SchemaVersion))
	}
	return nil
}

func decodeRoot(key string, raw []byte) (*assessment.UserData, error) {
	if err := validateJSON("userdata.json", raw); err != nil {
		return nil, &ErrMalformed{Key: key, Err: err}
	}
	var ud assessment.UserData
	if err := json.Unmarshal(raw, &ud); err != nil {
		return nil, &ErrMalformed{Key: key, Err: err}
	}
	if err := checkSchemaVersion(ud.SchemaVersion); err != nil {
		return nil, &ErrMalformed{Key: key, Err: err}
	}
	if ud.Assessments == nil {
		ud.Assessments = []assessment.AssessmentResult{}
	}
	if ud.Insights == nil {
		ud.Insights = []string{}
	}
	return &ud, nil
}

func encodeRoot(ud *assessment.UserData) ([]byte, error) {
	out := *ud
	out.SchemaVersion = SchemaVersion
	return json.Marshal(&out)
}

func decodeDraft(key string, raw []byte) ([]assessment.Answer, error) {
	if err := validateJSON("draft.json", raw); err != nil {
		return nil, &ErrMalformed{Key: key, Err: err}
	}
	var answers []assessment.Answer
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, &ErrMalformed{Key: key, Err: err}
	}
	return answers, nil
}
