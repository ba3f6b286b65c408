package policy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// ErrInvalidPolicy is returned when a policy document fails schema validation.
var ErrInvalidPolicy = errors.New("invalid policy")

// Schema reflects the JSON schema of a policy document. Definitions are
// inlined and unknown keys are rejected.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		ExpandedStruct: true,
	}
	s := r.Reflect(&Policy{})
	s.Title = "pareto-plot axis policy"
	return s
}

// SchemaJSON returns the indented schema document.
func SchemaJSON() ([]byte, error) {
	s := Schema()
	return json.MarshalIndent(s, "", "  ")
}

// Validate checks a decoded YAML/JSON document against Schema.
func Validate(doc interface{}) error {
	s := Schema()
	// gojsonschema only understands drafts up to 7
	s.Version = ""
	blob, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "failed to marshal policy schema")
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(blob),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return errors.Wrap(err, "failed to validate policy")
	}
	if result.Valid() {
		return nil
	}

	var b strings.Builder
	for _, desc := range result.Errors() {
		fmt.Fprintf(&b, "\n- %s", desc.String())
	}
	return errors.Wrapf(ErrInvalidPolicy, "schema violations:%s", b.String())
}

// Parse validates and decodes a YAML (or JSON) policy. Fields missing from
// the document keep their Default values.
func Parse(blob []byte) (*Policy, error) {
	var doc interface{}
	if err := yaml.Unmarshal(blob, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse policy")
	}
	if doc == nil {
		return Default(), nil
	}
	if err := Validate(doc); err != nil {
		return nil, err
	}

	p := Default()
	dec := yaml.NewDecoder(bytes.NewReader(blob))
	if err := dec.Decode(p); err != nil {
		return nil, errors.Wrap(err, "failed to decode policy")
	}
	return p, nil
}

// Load reads a policy file. An empty path yields Default.
func Load(path string) (*Policy, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read policy %s", path)
	}
	p, err := Parse(blob)
	if err != nil {
		return nil, errors.Wrapf(err, "policy %s", path)
	}
	log.Debug().Str("path", path).Msg("Loaded axis policy")
	return p, nil
}
