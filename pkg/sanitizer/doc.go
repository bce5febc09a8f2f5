// Package sanitizer provides stateless helpers that clean untrusted text
// before it is used: trimming, case folding, length capping and removal of
// denylisted characters.
//
// Helpers never return an error; they always produce a usable, possibly
// empty, string. Compose builds reusable pipelines from them:
//
//	clean := sanitizer.Compose(
//	    sanitizer.RemoveNullBytes,
//	    sanitizer.Trim,
//	    sanitizer.ToLower,
//	)
//
//	safe := clean("  Mixed CASE Input\x00 ") // "mixed case input"
//
// SearchQuery is the pipeline applied to free-text catalog search input.
// It is idempotent: SearchQuery(SearchQuery(s)) == SearchQuery(s).
//
// All helpers are safe for concurrent use.
package sanitizer
