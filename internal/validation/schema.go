package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrDocumentMalformed  = errors.New("validation: inventory document is not valid JSON")
	ErrDocumentValidation = errors.New("validation: inventory document failed schema validation")
)

// documentSchema is the explicit contract for the Inventory Document. Scalar
// fields accept strings and numbers because admin exports are loosely typed;
// per-field coercion happens at decode, not here. The only hard requirement
// is the top level vehicles list.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["vehicles"],
  "properties": {
    "lastUpdated": {"type": ["string", "null"]},
    "vehicles": {
      "type": "array",
      "items": {"$ref": "#/$defs/vehicle"}
    }
  },
  "$defs": {
    "scalar": {"type": ["string", "number", "null"]},
    "scalarList": {
      "anyOf": [
        {"type": "array", "items": {"$ref": "#/$defs/scalar"}},
        {"$ref": "#/$defs/scalar"}
      ]
    },
    "vehicle": {
      "type": "object",
      "properties": {
        "vehicleId": {"$ref": "#/$defs/scalar"},
        "stockNumber": {"$ref": "#/$defs/scalar"},
        "id": {"$ref": "#/$defs/scalar"},
        "vin": {"type": ["string", "null"]},
        "year": {"$ref": "#/$defs/scalar"},
        "make": {"type": ["string", "null"]},
        "model": {"type": ["string", "null"]},
        "trim": {"type": ["string", "null"]},
        "price": {"$ref": "#/$defs/scalar"},
        "mileage": {"$ref": "#/$defs/scalar"},
        "type": {"type": ["string", "null"]},
        "description": {"type": ["string", "null"]},
        "features": {"$ref": "#/$defs/scalarList"},
        "badge": {"type": ["string", "null"]},
        "status": {"type": ["string", "null"]},
        "dateAdded": {"type": ["string", "null"]},
        "images": {"$ref": "#/$defs/scalarList"},
        "exteriorColor": {"type": ["string", "null"]},
        "interiorColor": {"type": ["string", "null"]},
        "engine": {"type": ["string", "null"]},
        "transmission": {"type": ["string", "null"]},
        "drivetrain": {"type": ["string", "null"]},
        "fuelType": {"type": ["string", "null"]},
        "mpg": {"type": ["string", "null"]}
      }
    }
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("inventory.json", bytes.NewReader([]byte(documentSchema))); err != nil {
			compileErr = err
			return
		}
		compiled, compileErr = compiler.Compile("inventory.json")
	})
	return compiled, compileErr
}

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// DocumentValidationError surfaces every offending field discovered while
// validating an inventory document.
type DocumentValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *DocumentValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrDocumentValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *DocumentValidationError) Unwrap() error {
	return ErrDocumentValidation
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var docErr *DocumentValidationError
	if errors.As(err, &docErr) && docErr != nil {
		return docErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// ValidateDocument checks raw inventory bytes against the document schema.
// Malformed JSON and schema violations are both fatal input conditions.
func ValidateDocument(data []byte) error {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentMalformed, err)
	}
	sch, err := schema()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentValidation, err)
	}
	if err := sch.Validate(payload); err != nil {
		return &DocumentValidationError{
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
