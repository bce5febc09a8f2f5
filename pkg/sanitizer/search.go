package sanitizer

// SearchQueryMaxLength is the maximum length of a sanitized search query.
const SearchQueryMaxLength = 200

// SearchQueryDenylist holds characters stripped from search input before it
// reaches any rendering or query context.
const SearchQueryDenylist = `<>'";&`

var searchQuery = Compose(
	func(s string) string { return RemoveChars(s, SearchQueryDenylist) },
	Trim,
	func(s string) string { return MaxLength(s, SearchQueryMaxLength) },
	// truncation can expose trailing whitespace
	Trim,
)

// SearchQuery sanitizes raw free-text search input: denylisted characters
// are removed, surrounding whitespace is trimmed and the result is capped at
// SearchQueryMaxLength characters. The relative order of the remaining
// characters is preserved.
func SearchQuery(raw string) string {
	return searchQuery(raw)
}
