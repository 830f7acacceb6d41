package datakind

import (
	"fmt"
	"strings"

	"github.com/km-arc/kindform/framework/http/validation"
)

// Form field names used in error bags and request payloads.
const (
	FieldOption = "option"
	FieldValues = "values"
)

// Reason says why a form is invalid. The zero value means valid.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonNoOption    Reason = "no-option-selected"
	ReasonRequired    Reason = "required-field-empty"
	ReasonMaxExceeded Reason = "max-count-exceeded"
	ReasonFormat      Reason = "format-invalid"
)

// Message returns the inline message shown next to the values field.
func (r Reason) Message() string {
	switch r {
	case ReasonRequired:
		return "This field is required"
	case ReasonNoOption:
		return "Please select an option first"
	case ReasonMaxExceeded:
		return "Maximum number of items exceeded"
	case ReasonFormat:
		return "Invalid format"
	default:
		return ""
	}
}

// Result is the outcome of validating one (option, raw text) pair.
type Result struct {
	Option Option   `json:"option"`
	Valid  bool     `json:"valid"`
	Reason Reason   `json:"reason,omitempty"`
	Values []string `json:"values,omitempty"`
}

// Message is the inline message for an invalid result, "" when valid.
func (r Result) Message() string { return r.Reason.Message() }

// Errors returns the result as an error bag keyed by the values field.
func (r Result) Errors() *validation.Errors {
	bag := &validation.Errors{}
	if !r.Valid {
		bag.Add(FieldValues, r.Message())
	}
	return bag
}

// Validator checks raw values text against the constraint table. It holds
// no per-call state and is safe for concurrent use.
type Validator struct {
	engine *validation.Engine
}

// NewValidator builds a Validator with every item rule registered.
func NewValidator() *Validator {
	engine, err := newEngine()
	if err != nil {
		// Tags are package constants; a failure here is a programming error.
		panic(fmt.Sprintf("datakind: %v", err))
	}
	return &Validator{engine: engine}
}

var std = NewValidator()

// Validate checks raw against the rules of o using the package validator.
func Validate(o Option, raw string) Result { return std.Validate(o, raw) }

// Validate checks raw against the rules of o. Failures are reported in the
// order: no option, empty field, too many items, bad item format.
func (v *Validator) Validate(o Option, raw string) Result {
	c, ok := Lookup(o)
	if !ok {
		return invalid(o, ReasonNoOption)
	}
	if strings.TrimSpace(raw) == "" {
		return invalid(o, ReasonRequired)
	}

	items := Items(o, raw)
	check := v.engine.Make(
		map[string]any{FieldValues: items},
		validation.Rules{FieldValues: c.rule()},
	)
	if check.Fails() {
		if check.FailedTag(FieldValues) == "max" {
			return invalid(o, ReasonMaxExceeded)
		}
		return invalid(o, ReasonFormat)
	}
	return Result{Option: o, Valid: true, Values: items}
}

func invalid(o Option, reason Reason) Result {
	return Result{Option: o, Reason: reason}
}

// Items splits raw into the item list for o. Splittable options are cut on
// commas and every piece is trimmed; the path option is one untouched item.
func Items(o Option, raw string) []string {
	c, ok := Lookup(o)
	if ok && !c.Split {
		return []string{raw}
	}
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Normalize re-joins the trimmed items of raw with ",". The path option and
// the sentinel are returned untouched.
func Normalize(o Option, raw string) string {
	c, ok := Lookup(o)
	if !ok || !c.Split {
		return raw
	}
	return strings.Join(Items(o, raw), ",")
}
