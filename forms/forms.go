// Package forms implements the detail/form controller: a draft copy of an
// entity's editable fields, validated against a declarative JSON Schema
// before any create or update request is dispatched.
package forms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError is a single field-level schema violation
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors aggregates every violation found in one validation pass.
// It never leaves the form controller as a network request: a draft that
// fails validation is not submitted at all.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (e *ValidationErrors) Error() string {
	var msgs []string
	for _, err := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(msgs, "; ")
}

// IsValidationError reports whether err is a ValidationErrors
func IsValidationError(err error) bool {
	var ve *ValidationErrors
	return errors.As(err, &ve)
}

// GetValidationErrors extracts the ValidationErrors from err, or nil
func GetValidationErrors(err error) *ValidationErrors {
	var ve *ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// Validate checks data against a JSON Schema given as a plain map. A nil or
// empty schema accepts any data.
func Validate(data map[string]interface{}, schema map[string]interface{}) error {
	if len(schema) == 0 {
		return nil
	}

	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		return err
	}
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return err
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(dataJSON)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return err
	}

	if !result.Valid() {
		var validationErrors []ValidationError
		for _, desc := range result.Errors() {
			validationErrors = append(validationErrors, ValidationError{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
		return &ValidationErrors{Errors: validationErrors}
	}

	return nil
}

// Hydrate builds an edit-mode draft: defaults seeded first, then every field
// the fetched entity actually carries layered on top. Null or missing values
// (a mechanic without a detail row, say) keep their documented defaults, so
// the form always presents a complete set of editable fields.
func Hydrate(entity map[string]interface{}, defaults map[string]interface{}) map[string]interface{} {
	draft := copyMap(defaults)
	if entity == nil {
		return draft
	}
	for key, def := range draft {
		value, ok := entity[key]
		if !ok || value == nil {
			continue
		}
		defMap, defIsMap := def.(map[string]interface{})
		valMap, valIsMap := value.(map[string]interface{})
		if defIsMap && valIsMap {
			draft[key] = Hydrate(valMap, defMap)
			continue
		}
		draft[key] = value
	}
	return draft
}

// CreateFunc dispatches a create request with the validated draft
type CreateFunc func(ctx context.Context, payload map[string]interface{}) error

// UpdateFunc dispatches an update request for an existing identifier
type UpdateFunc func(ctx context.Context, id int, payload map[string]interface{}) error

// Result describes a successful submission: where the UI navigates next
type Result struct {
	Redirect string
}

// Form is one detail/form controller instance
type Form struct {
	schema   map[string]interface{}
	values   map[string]interface{}
	entityID *int
	redirect string
}

// NewCreate builds a create-mode form seeded from defaults
func NewCreate(schema, defaults map[string]interface{}, redirect string) *Form {
	return &Form{
		schema:   schema,
		values:   copyMap(defaults),
		redirect: redirect,
	}
}

// NewEdit builds an edit-mode form for an already fetched entity, hydrating
// the draft from the entity with defaults filling any gaps
func NewEdit(schema, defaults map[string]interface{}, id int, entity map[string]interface{}, redirect string) *Form {
	return &Form{
		schema:   schema,
		values:   Hydrate(entity, defaults),
		entityID: &id,
		redirect: redirect,
	}
}

// ID returns the entity identifier, or nil in create mode
func (f *Form) ID() *int {
	return f.entityID
}

// Values returns a copy of the current draft values
func (f *Form) Values() map[string]interface{} {
	return copyMap(f.values)
}

// Set binds one entered field value into the draft
func (f *Form) Set(field string, value interface{}) {
	if f.values == nil {
		f.values = make(map[string]interface{})
	}
	f.values[field] = value
}

// SetValues binds a batch of entered field values into the draft
func (f *Form) SetValues(values map[string]interface{}) {
	for k, v := range values {
		f.Set(k, v)
	}
}

// Submit validates the full draft and dispatches it. Validation failure
// blocks the request entirely and returns the field-level messages. A failed
// network call leaves the draft untouched so nothing the user typed is lost;
// only a successful call produces a Result carrying the navigation target.
func (f *Form) Submit(ctx context.Context, create CreateFunc, update UpdateFunc) (*Result, error) {
	if err := Validate(f.values, f.schema); err != nil {
		return nil, err
	}

	payload := copyMap(f.values)
	if f.entityID != nil {
		if err := update(ctx, *f.entityID, payload); err != nil {
			return nil, err
		}
	} else {
		if err := create(ctx, payload); err != nil {
			return nil, err
		}
	}

	return &Result{Redirect: f.redirect}, nil
}

func copyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		if m, ok := v.(map[string]interface{}); ok {
			dst[k] = copyMap(m)
			continue
		}
		dst[k] = v
	}
	return dst
}
