package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://catalog.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error

	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse(defaultCatalog, "catalog.yaml")
	})
	return defaultCat, defaultErr
}

// LoadFile reads, schema-checks and validates a catalog file.
// Files ending in .json are read as JSON; everything else as YAML.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data, path)
}

// Load returns the catalog at path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes a catalog document. name is only used to pick the format.
func Parse(data []byte, name string) (*Catalog, error) {
	isJSON := strings.ToLower(filepath.Ext(name)) == ".json"

	raw, err := decodeGeneric(data, isJSON)
	if err != nil {
		return nil, err
	}
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var doc Document
	if isJSON {
		doc, err = parseJSON(data)
	} else {
		doc, err = parseYAML(data)
	}
	if err != nil {
		return nil, err
	}
	return New(doc)
}

// decodeGeneric returns the document as plain JSON values for schema
// validation. YAML is round-tripped through JSON so numbers arrive as
// json.Number, the form the validator expects.
func decodeGeneric(data []byte, isJSON bool) (any, error) {
	if !isJSON {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
		data = b
	}
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return v, nil
}

func validateSchema(doc any) error {
	compileOnce.Do(func() {
		var def any
		def, compileErr = jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if compileErr != nil {
			return
		}
		c := jsonschema.NewCompiler()
		if compileErr = c.AddResource(schemaURL, def); compileErr != nil {
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	if compileErr != nil {
		return fmt.Errorf("compile catalog schema: %w", compileErr)
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("catalog schema: %w", err)
	}
	return nil
}

func parseJSON(data []byte) (Document, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("parse json: %w", err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		if err == nil {
			return Document{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Document{}, fmt.Errorf("parse json: %w", err)
	}
	return doc, nil
}

func parseYAML(data []byte) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("parse yaml: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); err != io.EOF {
		if err == nil {
			return Document{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Document{}, fmt.Errorf("parse yaml: %w", err)
	}
	return doc, nil
}
