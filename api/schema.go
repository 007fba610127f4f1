package api

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/qri-io/jsonschema"
)

//go:embed schema/*.json
var schemaFS embed.FS

// requestSchemas holds the compiled request-body schemas. They are embedded
// and parsed once at router setup; a parse failure there is a build defect.
type requestSchemas struct {
	signup   *jsonschema.Schema
	register *jsonschema.Schema
	decision *jsonschema.Schema
}

func loadRequestSchemas() (*requestSchemas, error) {
	load := func(name string) (*jsonschema.Schema, error) {
		b, err := schemaFS.ReadFile("schema/" + name)
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", name, err)
		}
		rs := &jsonschema.Schema{}
		if err := json.Unmarshal(b, rs); err != nil {
			return nil, fmt.Errorf("parse schema %s: %w", name, err)
		}
		return rs, nil
	}

	signup, err := load("signup.json")
	if err != nil {
		return nil, err
	}
	register, err := load("register.json")
	if err != nil {
		return nil, err
	}
	decision, err := load("decision.json")
	if err != nil {
		return nil, err
	}
	return &requestSchemas{signup: signup, register: register, decision: decision}, nil
}

// checkBody validates raw JSON against rs and returns the first violation.
func checkBody(ctx context.Context, rs *jsonschema.Schema, body []byte) error {
	errs, err := rs.ValidateBytes(ctx, body)
	if err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid request body: %s", errs[0].Error())
	}
	return nil
}
