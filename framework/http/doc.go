// Package http provides Laravel-style request and response helpers on top of
// net/http.
//
// # Request
//
//	req := gohttp.NewRequest(r)
//
//	// Bind a JSON, urlencoded or multipart body onto `json` tags
//	var payload struct {
//	    Values string `json:"values"`
//	}
//	if err := req.Bind(&payload); err != nil { ... }
//
//	opt := req.Input("option", "-1") // query string or POST body
//	req.IsJSON()                     // Accept or Content-Type is application/json
//
// # Response
//
//	res := gohttp.NewResponse(w)
//	res.Success(data)           // 200 {"data": ...}
//	res.Created(data)           // 201 {"data": ...}
//	res.Error(400, "bad input") // {"message": "bad input"}
//	res.ValidationError(errs)   // 422 {"errors": {"field": ["msg"]}}
//
// # ViewEngine
//
//	engine, err := gohttp.NewViewEngine(views, ".html") // views is an fs.FS
//	engine.View(w, http.StatusOK, "form", data)
package http
