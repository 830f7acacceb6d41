package datakind

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalid is returned when a submission is attempted on an invalid form.
var ErrInvalid = errors.New("datakind: invalid submission")

// Submission is the payload produced by a valid form.
type Submission struct {
	Option Option   `json:"option"`
	Values []string `json:"values"`
}

// SubmitFunc receives every accepted submission.
type SubmitFunc func(ctx context.Context, s Submission) error

// Transform builds the submission payload for raw. Callers validate first;
// the path option yields its raw text as the single value.
func Transform(o Option, raw string) Submission {
	return Submission{Option: o, Values: Items(o, raw)}
}

// Submit validates raw and, when valid, transforms it and hands the result
// to fn. An invalid form returns the failing result and an error wrapping
// ErrInvalid; fn is not called.
func (v *Validator) Submit(ctx context.Context, o Option, raw string, fn SubmitFunc) (Submission, Result, error) {
	res := v.Validate(o, raw)
	if !res.Valid {
		return Submission{}, res, fmt.Errorf("%w: %s", ErrInvalid, res.Reason)
	}

	sub := Transform(o, raw)
	if fn != nil {
		if err := fn(ctx, sub); err != nil {
			return sub, res, fmt.Errorf("datakind: submit %s: %w", o, err)
		}
	}
	return sub, res, nil
}
