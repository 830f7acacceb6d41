package form

import (
	"context"

	"github.com/km-arc/kindform/app/datakind"
)

// State is everything the form shows. It is passed in and returned by
// value; Form keeps no per-user state.
type State struct {
	Option datakind.Option `json:"option"`
	Values string          `json:"values"`

	Result      datakind.Result `json:"-"`
	Placeholder string          `json:"placeholder"`
	Widget      datakind.Widget `json:"widget"`
	Message     string          `json:"message,omitempty"`
}

// Valid reports whether the last check passed.
func (s State) Valid() bool { return s.Result.Valid }

// Form re-validates State on every change and hands valid submissions to a
// callback.
type Form struct {
	validator *datakind.Validator
	catalog   *datakind.Catalog
	submit    datakind.SubmitFunc
}

// New creates a Form. A nil catalog offers every option; a nil submit
// callback accepts submissions without side effects.
func New(v *datakind.Validator, catalog *datakind.Catalog, submit datakind.SubmitFunc) *Form {
	if v == nil {
		v = datakind.NewValidator()
	}
	if catalog == nil {
		catalog = datakind.DefaultCatalog()
	}
	return &Form{validator: v, catalog: catalog, submit: submit}
}

// Catalog returns the options this form offers.
func (f *Form) Catalog() *datakind.Catalog { return f.catalog }

// Initial returns the checked state built from the catalog defaults.
func (f *Form) Initial() State {
	return f.OnChange(State{
		Option: f.catalog.Default.Option,
		Values: f.catalog.DefaultValues(),
	})
}

// OnChange re-validates s after the option or the values text changed.
// An option the catalog does not offer counts as no selection.
func (f *Form) OnChange(s State) State {
	if !f.catalog.Offers(s.Option) {
		s.Option = datakind.OptionNone
	}
	s.Result = f.validator.Validate(s.Option, s.Values)
	s.Placeholder = s.Option.Placeholder()
	s.Widget = s.Option.Widget()
	s.Message = s.Result.Message()
	return s
}

// OnSubmit checks s and, when valid, transforms it and runs the submit
// callback. The returned state carries the normalized values text. An
// invalid form is returned with its message and a nil submission; only a
// callback failure produces an error.
func (f *Form) OnSubmit(ctx context.Context, s State) (State, *datakind.Submission, error) {
	s = f.OnChange(s)
	if !s.Valid() {
		return s, nil, nil
	}
	sub, _, err := f.validator.Submit(ctx, s.Option, s.Values, f.submit)
	if err != nil {
		return s, nil, err
	}
	s.Values = datakind.Normalize(s.Option, s.Values)
	return s, &sub, nil
}
