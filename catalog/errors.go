package catalog

import "errors"

var (
	// ErrCatalogFetch indicates the catalog page could not be retrieved.
	ErrCatalogFetch = errors.New("failed to fetch catalog page")

	// ErrPageFetch indicates a job description page could not be retrieved.
	ErrPageFetch = errors.New("failed to fetch page")
)
