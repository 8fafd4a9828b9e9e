package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"io"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var defaultMessages []byte

//go:embed schema.cue
var schemaSource []byte

// Catalog holds the fixed texts printed by argecho.
type Catalog struct {
	CatalogVersion string `yaml:"catalogVersion" json:"catalogVersion"`
	Banner         string `yaml:"banner" json:"banner"`
	ArgumentsLabel string `yaml:"argumentsLabel" json:"argumentsLabel"`
	NoArguments    string `yaml:"noArguments" json:"noArguments"`
}

// schema is compiled on first use. A cue.Context is not safe for
// concurrent use, so mu guards every evaluation against it.
var schema struct {
	once sync.Once
	mu   sync.Mutex
	ctx  *cue.Context
	def  cue.Value
	err  error
}

func compileSchema() {
	schema.ctx = cuecontext.New()
	v := schema.ctx.CompileBytes(schemaSource)
	if err := v.Err(); err != nil {
		schema.err = LoadError{Reason: "schema: " + err.Error()}
		return
	}
	schema.def = v.LookupPath(cue.ParsePath("#Catalog"))
	if !schema.def.Exists() {
		schema.err = LoadError{Reason: "schema: missing #Catalog"}
	}
}

// Default returns the catalog embedded in the binary.
func Default() (Catalog, error) {
	return Load(defaultMessages)
}

// Load decodes a YAML catalog and validates it against the #Catalog schema.
// Unknown keys, empty texts and unsupported versions are rejected with a
// LoadError.
func Load(data []byte) (Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return Catalog{}, LoadError{Reason: "empty document"}
		}
		return Catalog{}, LoadError{Reason: err.Error()}
	}
	if err := validate(c); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func validate(c Catalog) error {
	schema.once.Do(compileSchema)
	if schema.err != nil {
		return schema.err
	}
	schema.mu.Lock()
	defer schema.mu.Unlock()
	v := schema.def.Unify(schema.ctx.Encode(c))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return LoadError{Reason: err.Error()}
	}
	return nil
}
