// Package validation provides Laravel-style input validation on top of
// github.com/go-playground/validator/v10.
//
// # Overview
//
// An Engine owns the underlying validator, the custom rules registered on
// it and a message table. Make binds a flat map of values to a Rules map and
// returns a Validator exposing the familiar Fails / Passes / Errors API.
//
// # Basic Usage
//
//	engine := validation.NewEngine()
//	_ = engine.Register("path_safe", func(v string) bool { return pathRe.MatchString(v) })
//	engine.Message("path_safe", "The :attribute is not a valid path.")
//
//	v := engine.Make(map[string]any{
//	    "values": []string{"/etc/hosts"},
//	}, validation.Rules{
//	    "values": "max=1,dive,path_safe",
//	})
//
//	if v.Fails() {
//	    tag := v.FailedTag("values") // "max" or "path_safe"
//	    // v.Errors() returns *Errors with Bag map[string][]string
//	}
//
// # Rule syntax
//
// Rules use go-playground tag syntax: comma-separated tags, "=" for
// parameters and "dive" to descend into slice elements. Every built-in
// go-playground tag is available alongside the registered ones.
//
// # Messages
//
// Message templates are looked up by the failed tag; "*" is the fallback.
// ":attribute" is replaced by the field name and ":param" by the tag
// parameter:
//
//	required → "The :attribute field is required."
//	max      → "The :attribute may not be greater than :param."
//	*        → "The :attribute format is invalid."
//
// # Error Bag
//
// Only the first failing tag per field is recorded. Errors serialise to the
// same JSON structure as Laravel's validation errors:
//
//	{
//	  "errors": {
//	    "values": ["Invalid format"]
//	  }
//	}
package validation
