package prompt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/km-arc/kindform/app/datakind"
	"github.com/km-arc/kindform/app/form"
	"github.com/km-arc/kindform/app/prompt"
)

// fakeDriver replays scripted answers and records what was shown.
type fakeDriver struct {
	selects []int
	inputs  []string
	areas   []string

	infos     []string
	defaults  []string
	areaCalls int
	err       error
}

func (d *fakeDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	if len(d.selects) == 0 {
		return 0, errors.New("no more selects")
	}
	idx := d.selects[0]
	d.selects = d.selects[1:]
	return idx, nil
}

func (d *fakeDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	d.defaults = append(d.defaults, cfg.Default)
	if len(d.inputs) == 0 {
		return "", errors.New("no more inputs")
	}
	v := d.inputs[0]
	d.inputs = d.inputs[1:]
	return v, nil
}

func (d *fakeDriver) TextArea(_ context.Context, cfg prompt.TextAreaConfig) (string, error) {
	d.areaCalls++
	if len(d.areas) == 0 {
		return "", errors.New("no more text areas")
	}
	v := d.areas[0]
	d.areas = d.areas[1:]
	return v, nil
}

func (d *fakeDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestRun_ValidFirstTime(t *testing.T) {
	d := &fakeDriver{selects: []int{0}, inputs: []string{"192.168.0.1, 10.0.0.1"}}

	sub, err := prompt.Run(context.Background(), form.New(nil, nil, nil), d)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := &datakind.Submission{Option: datakind.OptionIPv4, Values: []string{"192.168.0.1", "10.0.0.1"}}
	if diff := cmp.Diff(want, sub); diff != "" {
		t.Errorf("submission mismatch (-want +got):\n%s", diff)
	}
	if len(d.infos) != 0 {
		t.Errorf("unexpected messages: %v", d.infos)
	}
}

func TestRun_RepromptsUntilValid(t *testing.T) {
	d := &fakeDriver{
		selects: []int{3, 3},
		inputs:  []string{"67", "68"},
	}

	sub, err := prompt.Run(context.Background(), form.New(nil, nil, nil), d)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff([]string{"68"}, sub.Values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"✗ Invalid format"}, d.infos); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
	if d.defaults[1] != "67" {
		t.Errorf("second prompt should default to the previous answer, got %q", d.defaults[1])
	}
}

func TestRun_PathUsesTextArea(t *testing.T) {
	d := &fakeDriver{selects: []int{4}, areas: []string{"/var/log/syslog\n"}}

	sub, err := prompt.Run(context.Background(), form.New(nil, nil, nil), d)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if d.areaCalls != 1 {
		t.Errorf("TextArea calls: got %d want 1", d.areaCalls)
	}
	if diff := cmp.Diff([]string{"/var/log/syslog"}, sub.Values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_Aborted(t *testing.T) {
	d := &fakeDriver{err: prompt.ErrAborted}

	_, err := prompt.Run(context.Background(), form.New(nil, nil, nil), d)
	if !errors.Is(err, prompt.ErrAborted) {
		t.Errorf("expected ErrAborted, got %v", err)
	}
}

func TestRun_SubmitCallbackError(t *testing.T) {
	boom := errors.New("boom")
	f := form.New(nil, nil, func(context.Context, datakind.Submission) error { return boom })
	d := &fakeDriver{selects: []int{2}, inputs: []string{"example.com"}}

	if _, err := prompt.Run(context.Background(), f, d); !errors.Is(err, boom) {
		t.Errorf("expected callback error, got %v", err)
	}
}
