package datakind

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Option identifies the data kind selected on the form.
type Option int

const (
	OptionNone   Option = -1 // sentinel: nothing selected yet
	OptionIPv4   Option = 1
	OptionIP     Option = 2
	OptionFQDN   Option = 3
	OptionNumber Option = 4
	OptionPath   Option = 5

	lastOption = OptionPath
)

// Widget is the input kind used for the values field.
type Widget string

const (
	WidgetText     Widget = "text"
	WidgetNumber   Widget = "number"
	WidgetTextarea Widget = "textarea"
)

const (
	NoneLabel       = "Please select an option"
	NonePlaceholder = "Please select an option first"
)

// ErrUnknownOption is returned by ParseOption for identifiers outside the table.
var ErrUnknownOption = errors.New("datakind: unknown option")

// Constraint is the static rule record for one option.
type Constraint struct {
	Option      Option `json:"option"`
	Name        string `json:"name"`
	Label       string `json:"label"`
	MaxItems    int    `json:"max"`
	Placeholder string `json:"placeholder"`
	Widget      Widget `json:"widget"`

	// Split is false for options whose raw text is a single opaque item.
	Split bool `json:"-"`
	// Tag is the rule engine tag applied to every item.
	Tag string `json:"-"`
	// Match reports whether one item is well-formed.
	Match func(item string) bool `json:"-"`
}

// rule returns the engine rule for the whole item list.
func (c Constraint) rule() string {
	return fmt.Sprintf("max=%d,dive,%s", c.MaxItems, c.Tag)
}

// table is indexed by Option; index 0 is unused.
var table = [lastOption + 1]Constraint{
	OptionIPv4: {
		Option:      OptionIPv4,
		Name:        "ipv4",
		Label:       "IP v4 address (max 2)",
		MaxItems:    2,
		Placeholder: "Enter up to 2 IPv4 addresses, comma-separated",
		Widget:      WidgetText,
		Split:       true,
		Tag:         tagIPv4,
		Match:       IsIPv4,
	},
	OptionIP: {
		Option:      OptionIP,
		Name:        "ip",
		Label:       "IP v4 or v6 address (max 63)",
		MaxItems:    63,
		Placeholder: "Enter up to 63 IPv4 or IPv6 addresses, comma-separated",
		Widget:      WidgetText,
		Split:       true,
		Tag:         tagIP,
		Match:       IsIP,
	},
	OptionFQDN: {
		Option:      OptionFQDN,
		Name:        "fqdn",
		Label:       "FQDN (max 1)",
		MaxItems:    1,
		Placeholder: "Enter an FQDN",
		Widget:      WidgetText,
		Split:       true,
		Tag:         tagFQDN,
		Match:       IsFQDN,
	},
	OptionNumber: {
		Option:      OptionNumber,
		Name:        "number",
		Label:       "Number (68-65535, max 1)",
		MaxItems:    1,
		Placeholder: "Enter a number between 68 and 65535",
		Widget:      WidgetNumber,
		Split:       true,
		Tag:         tagNumber,
		Match:       IsNumberInRange,
	},
	OptionPath: {
		Option:      OptionPath,
		Name:        "path",
		Label:       "Filename with path (max 1)",
		MaxItems:    1,
		Placeholder: "Enter a filename with path",
		Widget:      WidgetTextarea,
		Split:       false,
		Tag:         tagPath,
		Match:       IsPath,
	},
}

// Options returns every selectable option in table order.
func Options() []Option {
	out := make([]Option, 0, lastOption)
	for o := OptionIPv4; o <= lastOption; o++ {
		out = append(out, o)
	}
	return out
}

// Lookup returns the constraint record for o. The sentinel and any
// identifier outside the table report false.
func Lookup(o Option) (Constraint, bool) {
	if !o.Valid() {
		return Constraint{}, false
	}
	return table[o], true
}

// Valid reports whether o is a selectable option.
func (o Option) Valid() bool {
	return o >= OptionIPv4 && o <= lastOption
}

// Placeholder returns the hint shown in an empty values field.
func (o Option) Placeholder() string {
	if c, ok := Lookup(o); ok {
		return c.Placeholder
	}
	return NonePlaceholder
}

// Widget returns the input kind for the values field.
func (o Option) Widget() Widget {
	if c, ok := Lookup(o); ok {
		return c.Widget
	}
	return WidgetText
}

// Label returns the built-in option label.
func (o Option) Label() string {
	if c, ok := Lookup(o); ok {
		return c.Label
	}
	return NoneLabel
}

func (o Option) String() string {
	if c, ok := Lookup(o); ok {
		return c.Name
	}
	if o == OptionNone {
		return "none"
	}
	return "option(" + strconv.Itoa(int(o)) + ")"
}

// ParseOption parses a decimal option identifier. "-1" and "" yield the
// sentinel without error; anything else outside the table yields the
// sentinel and ErrUnknownOption.
func ParseOption(s string) (Option, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return OptionNone, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return OptionNone, fmt.Errorf("%w: %q", ErrUnknownOption, s)
	}
	o := Option(n)
	if o == OptionNone || o.Valid() {
		return o, nil
	}
	return OptionNone, fmt.Errorf("%w: %d", ErrUnknownOption, n)
}
