package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ── Types ────────────────────────────────────────────────────────────────────

// Errors holds validation errors, in the shape of Laravel's MessageBag.
// JSON output: {"errors": {"field": ["msg1", "msg2"]}}
type Errors struct {
	Bag map[string][]string `json:"errors"`
}

// Add appends a message for field. Duplicate messages are dropped.
func (e *Errors) Add(field, msg string) {
	if e.Bag == nil {
		e.Bag = make(map[string][]string)
	}
	for _, existing := range e.Bag[field] {
		if existing == msg {
			return
		}
	}
	e.Bag[field] = append(e.Bag[field], msg)
}

// Has returns true if there are any errors.
func (e *Errors) Has() bool { return e != nil && len(e.Bag) > 0 }

// First returns the first error for a field.
func (e *Errors) First(field string) string {
	if e == nil {
		return ""
	}
	if msgs, ok := e.Bag[field]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// ── Engine ───────────────────────────────────────────────────────────────────

// Rules is a map of field → go-playground tag string.
// e.g. Rules{"values": "max=2,dive,ipv4_dotted"}
type Rules map[string]string

// Messages maps a rule tag to its message template. ":attribute" is replaced
// by the field name and ":param" by the rule parameter.
type Messages map[string]string

const fallbackTag = "*"

// Engine owns a go-playground validator plus the message table used to turn
// failed tags into error bag entries. It is safe for concurrent use once all
// rules are registered.
type Engine struct {
	validate *validator.Validate
	messages Messages
}

// NewEngine creates an Engine with the default message table.
func NewEngine() *Engine {
	return &Engine{
		validate: validator.New(),
		messages: Messages{
			"required":  "The :attribute field is required.",
			"max":       "The :attribute may not be greater than :param.",
			"min":       "The :attribute must be at least :param.",
			"len":       "The :attribute must be :param.",
			"numeric":   "The :attribute must be a number.",
			fallbackTag: "The :attribute format is invalid.",
		},
	}
}

// Register adds a string rule under tag. The rule receives each value the
// tag is applied to, including slice elements reached through "dive".
func (e *Engine) Register(tag string, fn func(value string) bool) error {
	if fn == nil {
		return fmt.Errorf("validation: rule %q has no function", tag)
	}
	err := e.validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	})
	if err != nil {
		return fmt.Errorf("validation: register %q: %w", tag, err)
	}
	return nil
}

// Message overrides the message template for tag. Use "*" for the fallback.
func (e *Engine) Message(tag, template string) {
	e.messages[tag] = template
}

func (e *Engine) message(field, tag, param string) string {
	tmpl, ok := e.messages[tag]
	if !ok {
		tmpl = e.messages[fallbackTag]
	}
	return strings.NewReplacer(":attribute", field, ":param", param).Replace(tmpl)
}

// ── Validator ────────────────────────────────────────────────────────────────

// Validator validates a flat map of input values.
type Validator struct {
	engine *Engine
	data   map[string]any
	rules  Rules
	errors *Errors
	failed map[string]string
	ran    bool
}

// Make creates a new Validator, like Validator::make($data, $rules).
func (e *Engine) Make(data map[string]any, rules Rules) *Validator {
	return &Validator{
		engine: e,
		data:   data,
		rules:  rules,
		errors: &Errors{},
		failed: make(map[string]string),
	}
}

// Fails runs validation and returns true if any rule fails.
func (v *Validator) Fails() bool {
	v.validate()
	return v.errors.Has()
}

// Passes runs validation and returns true if all rules pass.
func (v *Validator) Passes() bool { return !v.Fails() }

// Errors returns the validation error bag.
func (v *Validator) Errors() *Errors { return v.errors }

// FailedTag returns the first rule tag that failed for field, or "".
func (v *Validator) FailedTag(field string) string {
	v.validate()
	return v.failed[field]
}

// ── Core validation loop ─────────────────────────────────────────────────────

func (v *Validator) validate() {
	if v.ran {
		return
	}
	v.ran = true

	fields := make([]string, 0, len(v.rules))
	for field := range v.rules {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		value, present := v.data[field]
		if !present {
			v.fail(field, "required", "")
			continue
		}

		err := v.engine.validate.Var(value, v.rules[field])
		if err == nil {
			continue
		}

		// Only the first failure is kept (Laravel's bail behaviour).
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			v.fail(field, fieldErrs[0].Tag(), fieldErrs[0].Param())
			continue
		}
		v.fail(field, fallbackTag, "")
	}
}

func (v *Validator) fail(field, tag, param string) {
	v.failed[field] = tag
	v.errors.Add(field, v.engine.message(field, tag, param))
}
