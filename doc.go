// Package litepager provides a pager that never counts rows.
//
// # Overview
//
// A classic pager runs a "count total rows" query to know how many pages
// exist. LitePager skips it: the query phase asks the executor for one row
// more than the page size (the sentinel row), and the post-processing phase
// infers the existence of a next page from its presence, then drops it.
// Exact totals, jump-to-page and page-count UIs are given up in exchange.
//
// Key concepts
//   - Config: page size, leading offset and an optional page ceiling,
//     injected by the host and validated once.
//   - LitePager: holds Config and a PagerState (current page, has-next flag).
//     ComputeFetchLimit runs in the query phase, PostProcess after the fetch.
//   - Paginate / Fetch: gorm integration of both phases.
//   - PageToken: opaque page index carried between requests.
//   - RenderState: ViewModel projection for previous/next templates.
//
// Usage:
//
//	pager, err := litepager.NewLitePager(litepager.Config{ItemsPerPage: 20})
//	if err != nil {
//		return err
//	}
//	pager = pager.WithCurrentPage(page).WithSort(litepager.OrderBy{Column: "id", Direction: litepager.DirectionASC})
//
//	result, err := litepager.Fetch[User](ctx, pager, db.Model(&User{}))
package litepager
