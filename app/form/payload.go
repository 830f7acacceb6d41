package form

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/km-arc/kindform/app/datakind"
)

// Payload is the request body of the form endpoints. Both fields accept the
// loose shapes browsers and scripts send: the option as a number or a
// string, the values as a string, a number or an array of strings.
type Payload struct {
	Option OptionField `json:"option"`
	Values ValuesField `json:"values"`
}

// State converts the payload into an unchecked form state. A missing option
// is the sentinel.
func (p Payload) State() State {
	opt := datakind.Option(p.Option)
	if !opt.Valid() {
		opt = datakind.OptionNone
	}
	return State{Option: opt, Values: string(p.Values)}
}

// OptionField decodes an option identifier. Anything that is not a known
// identifier, including null, becomes the sentinel.
type OptionField datakind.Option

func (o *OptionField) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	opt, _ := datakind.ParseOption(s)
	*o = OptionField(opt)
	return nil
}

// ValuesField decodes the values text. An array is joined with ",".
type ValuesField string

func (v *ValuesField) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = ValuesField(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*v = ValuesField(strings.Join(list, ","))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*v = ValuesField(n.String())
		return nil
	}
	return fmt.Errorf("values: expected a string or an array of strings, got %s", b)
}
