package binder

import "net/http"

// Query creates a query parameter binder.
//
// Struct tags:
//   - `query:"name"` binds to query parameter "name"
//   - `query:"-"` skips the field
//
// Untagged exported fields bind to their lowercased name. Pointer fields
// stay nil when the parameter is absent.
//
//	type searchRequest struct {
//		Query    string `query:"q"`
//		Category string `query:"category"`
//		MinPrice *int   `query:"min_price"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
