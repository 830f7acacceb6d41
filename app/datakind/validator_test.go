package datakind_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/km-arc/kindform/app/datakind"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func valid(t *testing.T, label string, o datakind.Option, raw string, want []string) {
	t.Helper()
	t.Run(label, func(t *testing.T) {
		res := datakind.Validate(o, raw)
		if !res.Valid {
			t.Fatalf("expected valid, got reason %q", res.Reason)
		}
		if diff := cmp.Diff(want, res.Values); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}
	})
}

func invalid(t *testing.T, label string, o datakind.Option, raw string, want datakind.Reason) {
	t.Helper()
	t.Run(label, func(t *testing.T) {
		res := datakind.Validate(o, raw)
		if res.Valid {
			t.Fatalf("expected invalid (%s), got valid %v", want, res.Values)
		}
		if res.Reason != want {
			t.Errorf("reason: got %q want %q", res.Reason, want)
		}
		if res.Values != nil {
			t.Errorf("invalid result should carry no values, got %v", res.Values)
		}
	})
}

// ── sentinel / required ──────────────────────────────────────────────────────

func TestValidate_Sentinel(t *testing.T) {
	for _, raw := range []string{"", "   ", "192.168.0.1", "/etc/passwd", "80"} {
		invalid(t, "sentinel "+strconv.Quote(raw), datakind.OptionNone, raw, datakind.ReasonNoOption)
	}
	invalid(t, "unknown id", datakind.Option(9), "80", datakind.ReasonNoOption)
	invalid(t, "zero id", datakind.Option(0), "80", datakind.ReasonNoOption)
}

func TestValidate_Required(t *testing.T) {
	for _, o := range datakind.Options() {
		invalid(t, o.String()+" empty", o, "", datakind.ReasonRequired)
		invalid(t, o.String()+" blank", o, " \t ", datakind.ReasonRequired)
	}
}

// ── option 1: IPv4 ───────────────────────────────────────────────────────────

func TestValidate_IPv4(t *testing.T) {
	o := datakind.OptionIPv4

	valid(t, "two addresses", o, "192.168.0.1, 10.0.0.1", []string{"192.168.0.1", "10.0.0.1"})
	valid(t, "one address", o, " 8.8.8.8 ", []string{"8.8.8.8"})
	valid(t, "octets not range checked", o, "999.1.1.1", []string{"999.1.1.1"})
	invalid(t, "three addresses", o, "1.1.1.1,2.2.2.2,3.3.3.3", datakind.ReasonMaxExceeded)
	invalid(t, "three with a bad one", o, "1.1.1.1,nope,3.3.3.3", datakind.ReasonMaxExceeded)
	invalid(t, "hostname", o, "localhost", datakind.ReasonFormat)
	invalid(t, "four digit octet", o, "1000.1.1.1", datakind.ReasonFormat)
	invalid(t, "trailing comma", o, "1.1.1.1,", datakind.ReasonFormat)
	invalid(t, "ipv6", o, "2001:0db8:0000:0000:0000:ff00:0042:8329", datakind.ReasonFormat)
}

// ── option 2: IPv4 or IPv6 ───────────────────────────────────────────────────

func TestValidate_IP(t *testing.T) {
	o := datakind.OptionIP

	valid(t, "mixed", o, "10.0.0.1,2001:0db8:0000:0000:0000:ff00:0042:8329",
		[]string{"10.0.0.1", "2001:0db8:0000:0000:0000:ff00:0042:8329"})
	valid(t, "short groups", o, "fe80:0:0:0:0:0:0:1", []string{"fe80:0:0:0:0:0:0:1"})
	invalid(t, "compressed ipv6", o, "fe80::1", datakind.ReasonFormat)
	invalid(t, "seven groups", o, "1:2:3:4:5:6:7", datakind.ReasonFormat)

	max := make([]string, 63)
	for i := range max {
		max[i] = "10.0.0." + strconv.Itoa(i)
	}
	valid(t, "63 addresses", o, strings.Join(max, ","), max)
	invalid(t, "64 addresses", o, strings.Join(append(max, "10.0.1.1"), ","), datakind.ReasonMaxExceeded)
}

// ── option 3: FQDN ───────────────────────────────────────────────────────────

func TestValidate_FQDN(t *testing.T) {
	o := datakind.OptionFQDN

	valid(t, "simple", o, "example.com", []string{"example.com"})
	valid(t, "trailing dot", o, "www.example.com.", []string{"www.example.com."})
	valid(t, "single label", o, "localhost", []string{"localhost"})
	valid(t, "hyphen inside", o, "my-host.example.org", []string{"my-host.example.org"})
	invalid(t, "empty label", o, "example..com", datakind.ReasonFormat)
	invalid(t, "leading hyphen", o, "-bad.example.com", datakind.ReasonFormat)
	invalid(t, "trailing hyphen label", o, "bad-.example.com", datakind.ReasonFormat)
	invalid(t, "underscore", o, "bad_host.example.com", datakind.ReasonFormat)
	invalid(t, "two names", o, "a.com,b.com", datakind.ReasonMaxExceeded)

	label63 := strings.Repeat("a", 63)
	valid(t, "63 char label", o, label63+".com", []string{label63 + ".com"})
	invalid(t, "64 char label", o, strings.Repeat("a", 64)+".com", datakind.ReasonFormat)

	// 4 × 63 + 3 dots = 255 characters.
	long := strings.Join([]string{label63, label63, label63, label63}, ".")
	invalid(t, "over 253 characters", o, long, datakind.ReasonFormat)
}

// ── option 4: number ─────────────────────────────────────────────────────────

func TestValidate_Number(t *testing.T) {
	o := datakind.OptionNumber

	valid(t, "lower bound", o, "68", []string{"68"})
	valid(t, "upper bound", o, "65535", []string{"65535"})
	valid(t, "padded", o, " 8080 ", []string{"8080"})
	invalid(t, "below range", o, "67", datakind.ReasonFormat)
	invalid(t, "above range", o, "65536", datakind.ReasonFormat)
	invalid(t, "not a number", o, "eighty", datakind.ReasonFormat)
	invalid(t, "fraction", o, "80.5", datakind.ReasonFormat)
	invalid(t, "two numbers", o, "80,443", datakind.ReasonMaxExceeded)
}

// ── option 5: path ───────────────────────────────────────────────────────────

func TestValidate_Path(t *testing.T) {
	o := datakind.OptionPath

	valid(t, "absolute", o, "/etc/passwd", []string{"/etc/passwd"})
	valid(t, "relative", o, "./conf/app-1_v2.yaml", []string{"./conf/app-1_v2.yaml"})
	invalid(t, "comma is not split", o, "/etc/a,/etc/b", datakind.ReasonFormat)
	invalid(t, "spaces kept", o, " /etc/passwd", datakind.ReasonFormat)
	invalid(t, "shell chars", o, "/tmp/$(rm)", datakind.ReasonFormat)
}

// ── properties ───────────────────────────────────────────────────────────────

func TestValidate_NormalizeIsIdempotent(t *testing.T) {
	cases := []struct {
		o   datakind.Option
		raw string
	}{
		{datakind.OptionIPv4, " 192.168.0.1 ,  10.0.0.1 "},
		{datakind.OptionIPv4, "1.1.1.1, 2.2.2.2, 3.3.3.3"},
		{datakind.OptionIPv4, "1.1.1.1 , bad"},
		{datakind.OptionIP, "10.0.0.1 ,fe80:0:0:0:0:0:0:1"},
		{datakind.OptionFQDN, " example.com "},
		{datakind.OptionFQDN, "example..com"},
		{datakind.OptionNumber, " 443 "},
		{datakind.OptionNumber, "70000"},
		{datakind.OptionIPv4, "1.1.1.1,"},
	}

	for _, tc := range cases {
		t.Run(tc.o.String()+" "+strconv.Quote(tc.raw), func(t *testing.T) {
			first := datakind.Validate(tc.o, tc.raw)
			normalized := datakind.Normalize(tc.o, tc.raw)
			second := datakind.Validate(tc.o, normalized)

			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("verdict changed after normalize %q (-first +second):\n%s", normalized, diff)
			}
			if again := datakind.Normalize(tc.o, normalized); again != normalized {
				t.Errorf("Normalize not idempotent: %q → %q", normalized, again)
			}
		})
	}
}

func TestNormalize_PathUntouched(t *testing.T) {
	raw := " /etc/a , /etc/b "
	if got := datakind.Normalize(datakind.OptionPath, raw); got != raw {
		t.Errorf("Normalize(path): got %q want %q", got, raw)
	}
}

func TestResult_Errors(t *testing.T) {
	res := datakind.Validate(datakind.OptionFQDN, "example..com")
	bag := res.Errors()
	if got := bag.First(datakind.FieldValues); got != "Invalid format" {
		t.Errorf("values message: got %q want %q", got, "Invalid format")
	}

	ok := datakind.Validate(datakind.OptionFQDN, "example.com")
	if ok.Errors().Has() {
		t.Errorf("valid result should have an empty bag, got %+v", ok.Errors().Bag)
	}
}

func TestReason_Messages(t *testing.T) {
	want := map[datakind.Reason]string{
		datakind.ReasonNone:        "",
		datakind.ReasonRequired:    "This field is required",
		datakind.ReasonNoOption:    "Please select an option first",
		datakind.ReasonMaxExceeded: "Maximum number of items exceeded",
		datakind.ReasonFormat:      "Invalid format",
	}
	for reason, msg := range want {
		if got := reason.Message(); got != msg {
			t.Errorf("%q.Message(): got %q want %q", reason, got, msg)
		}
	}
}

// ── submission ───────────────────────────────────────────────────────────────

func TestTransform(t *testing.T) {
	cases := []struct {
		name string
		o    datakind.Option
		raw  string
		want []string
	}{
		{"ipv4 split and trimmed", datakind.OptionIPv4, "192.168.0.1, 10.0.0.1", []string{"192.168.0.1", "10.0.0.1"}},
		{"number", datakind.OptionNumber, " 80", []string{"80"}},
		{"path is one raw value", datakind.OptionPath, "/etc/passwd", []string{"/etc/passwd"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := datakind.Transform(tc.o, tc.raw)
			want := datakind.Submission{Option: tc.o, Values: tc.want}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Transform mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSubmit_CallsCallbackWhenValid(t *testing.T) {
	v := datakind.NewValidator()
	var got []datakind.Submission

	sub, res, err := v.Submit(context.Background(), datakind.OptionPath, "/etc/passwd",
		func(_ context.Context, s datakind.Submission) error {
			got = append(got, s)
			return nil
		})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !res.Valid {
		t.Fatalf("expected valid result, got %q", res.Reason)
	}
	want := []datakind.Submission{{Option: datakind.OptionPath, Values: []string{"/etc/passwd"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("callback payloads (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want[0], sub); diff != "" {
		t.Errorf("returned submission (-want +got):\n%s", diff)
	}
}

func TestSubmit_BlockedWhenInvalid(t *testing.T) {
	v := datakind.NewValidator()
	called := false

	_, res, err := v.Submit(context.Background(), datakind.OptionIPv4, "1.1.1.1,2.2.2.2,3.3.3.3",
		func(context.Context, datakind.Submission) error {
			called = true
			return nil
		})
	if !errors.Is(err, datakind.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if res.Reason != datakind.ReasonMaxExceeded {
		t.Errorf("reason: got %q want %q", res.Reason, datakind.ReasonMaxExceeded)
	}
	if called {
		t.Error("callback must not run for an invalid form")
	}
}

func TestSubmit_CallbackError(t *testing.T) {
	v := datakind.NewValidator()
	boom := errors.New("sink down")

	_, _, err := v.Submit(context.Background(), datakind.OptionNumber, "80",
		func(context.Context, datakind.Submission) error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped callback error, got %v", err)
	}
}
