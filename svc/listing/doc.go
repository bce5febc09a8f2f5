// Package listing serves the storefront catalog: search, detail, featured
// strip, category summary and upload submission.
//
// Filter combines a free-text query (title or author, case-insensitive), an
// exact category with "All" as wildcard, and an inclusive price range. The
// catalog comes from a Source; StaticCatalog holds either the built-in
// listings or a YAML file read by LoadCatalogFile.
//
//	svc := listing.NewService(cfg, listing.DefaultCatalog(), listing.WithLogger(log))
//	results, err := svc.Search(ctx, listing.Filter{
//		Query:    "notes",
//		Category: listing.CategoryAll,
//		MinPrice: listing.DefaultMinPrice,
//		MaxPrice: listing.DefaultMaxPrice,
//	})
//
// Submit validates an upload with the svc/forms rules, waits out the
// configured processing delay and returns a Receipt. Nothing is stored.
package listing
