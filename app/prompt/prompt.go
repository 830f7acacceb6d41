// Package prompt runs the data-kind form in a terminal.
package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/km-arc/kindform/app/datakind"
	"github.com/km-arc/kindform/app/form"
)

// Run asks for an option and its values until the form is valid, then
// submits it. Invalid entries print the inline message and ask again with
// the previous answers as defaults.
func Run(ctx context.Context, f *form.Form, d Driver) (*datakind.Submission, error) {
	entries := f.Catalog().Entries
	if len(entries) == 0 {
		return nil, fmt.Errorf("prompt: catalog offers no options")
	}
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}

	state := f.Initial()
	for {
		idx, err := d.Select(ctx, SelectConfig{
			Message:      "Data kind:",
			Options:      labels,
			DefaultIndex: indexOfOption(entries, state.Option),
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(entries) {
			return nil, fmt.Errorf("prompt: selection %d out of range", idx)
		}
		state = f.OnChange(form.State{Option: entries[idx].Option, Values: state.Values})

		values, err := askValues(ctx, d, state)
		if err != nil {
			return nil, err
		}
		state.Values = values

		var sub *datakind.Submission
		state, sub, err = f.OnSubmit(ctx, state)
		if err != nil {
			return nil, err
		}
		if sub != nil {
			return sub, nil
		}
		if err := d.Info(ctx, "✗ "+state.Message); err != nil {
			return nil, err
		}
	}
}

func askValues(ctx context.Context, d Driver, s form.State) (string, error) {
	if s.Widget == datakind.WidgetTextarea {
		v, err := d.TextArea(ctx, TextAreaConfig{
			Message: "Values:",
			Default: s.Values,
			Help:    s.Placeholder,
		})
		// Multiline answers end with the terminating newline.
		return strings.TrimRight(v, "\r\n"), err
	}
	return d.Input(ctx, InputConfig{
		Message: "Values:",
		Default: s.Values,
		Help:    s.Placeholder,
	})
}

func indexOfOption(entries []datakind.Entry, o datakind.Option) int {
	for i, e := range entries {
		if e.Option == o {
			return i
		}
	}
	return 0
}
