// Package datakind holds the rules of the data-kind form: the constraint
// table, the validator and the submission transform.
//
// # Options
//
// Every selectable Option maps to one Constraint record:
//
//	1  IPv4 addresses       max 2   text
//	2  IPv4/IPv6 addresses  max 63  text
//	3  FQDN                 max 1   text
//	4  number 68-65535      max 1   number
//	5  filename with path   max 1   textarea
//
// OptionNone (-1) is the "nothing selected" sentinel and never validates.
//
// # Validation
//
//	res := datakind.Validate(datakind.OptionIPv4, "192.168.0.1, 10.0.0.1")
//	res.Valid  // true
//	res.Values // ["192.168.0.1" "10.0.0.1"]
//
// Options 1-4 split the raw text on commas and trim every piece. Option 5
// treats the raw text as a single untouched item, so an embedded comma is a
// format error rather than a second item. Expected failures are values, not
// errors: Result.Reason holds one of ReasonNoOption, ReasonRequired,
// ReasonMaxExceeded or ReasonFormat.
//
// # Submission
//
//	sub, res, err := v.Submit(ctx, opt, raw, func(ctx context.Context, s datakind.Submission) error {
//	    return json.NewEncoder(os.Stdout).Encode(s)
//	})
//
// Submit never calls the callback for an invalid form.
//
// # Catalog
//
// A Catalog narrows or relabels the offered options and carries the form's
// default data. It can be loaded from YAML, TOML or JSON:
//
//	options:
//	  - option: 1
//	    label: "IP v4 address (max 2)"
//	default:
//	  option: 1
//	  values: ["192.168.0.1", "10.0.0.1"]
package datakind
