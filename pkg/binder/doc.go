// Package binder binds HTTP request data to Go structs.
//
// Binders have the signature func(r *http.Request, v any) error and are
// applied in order by handler.Wrap. A binder that does not apply to a request
// (a body binder on a GET) returns ErrBinderNotApplicable and is skipped.
//
// # Available Binders
//
//   - JSON(): strict JSON body binding, 1MB limit, unknown fields rejected
//   - Form(maxMemory): urlencoded and multipart form fields plus file uploads
//   - Query(): URL query parameters
//   - Path(extractor): router path parameters, e.g. binder.Path(chi.URLParam)
//
// # File Uploads
//
// File uploads are handled through the Form binder using the `file:` struct tag:
//
//	type UploadRequest struct {
//	    Title    string                  `form:"title"`
//	    Document *multipart.FileHeader   `file:"pdf"`     // Single file
//	    Images   []*multipart.FileHeader `file:"images"`  // Multiple files
//	}
//
// String values are bound verbatim. Numeric, bool and slice fields are parsed;
// blank parameters leave fields at their zero value.
//
// # Error Handling
//
// Failures wrap one of the package sentinels (ErrUnsupportedMediaType,
// ErrMissingContentType, ErrRequestTooLarge, ErrFailedToParseJSON,
// ErrFailedToParseForm, ErrFailedToParseQuery, ErrFailedToParsePath).
// IsBindingError reports whether an error came from a binder.
package binder
