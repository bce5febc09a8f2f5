// Package storefront composes the StudyShelf HTTP surface.
//
// Router mounts the account, listing and form validation services under
// /auth, /listings and /forms, adds request ID and environment middleware,
// and serves /health and /ready. Unknown routes answer with the JSON error
// envelope.
package storefront
