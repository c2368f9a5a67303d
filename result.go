package litepager

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Page is a page of results produced without a count query.
type Page[T any] struct {
	// Items result elements, sentinel row excluded.
	Items []T `json:"items"`
	// CurrentPage pager page after post-processing.
	CurrentPage int `json:"currentPage"`
	// HasNext whether the dataset continues past this page.
	HasNext bool `json:"hasNext"`
	// AppliedLimit effective limit used for the query, sentinel row included.
	AppliedLimit int `json:"appliedLimit"`
	// EstimatedTotal lower bound of the dataset size. Not an exact count.
	EstimatedTotal int `json:"estimatedTotal"`
	// NextPageToken token for the next page, nil on the last page.
	NextPageToken *PageToken `json:"nextPageToken,omitempty"`
}

// Fetch runs one pagination cycle on db: ordering, offset and fetch limit are
// applied, rows are loaded into []T and post-processed.
func Fetch[T any](ctx context.Context, p *LitePager, db *gorm.DB) (*Page[T], error) {
	paged, err := p.Paginate(db.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	var rows []T
	if err = paged.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("cannot fetch page: %w", err)
	}

	items := PostProcess(p, rows)

	return &Page[T]{
		Items:          items,
		CurrentPage:    p.GetCurrentPage(),
		HasNext:        p.HasNextPage(),
		AppliedLimit:   p.AppliedLimit(),
		EstimatedTotal: p.EstimateTotalItems(),
		NextPageToken:  p.NextPageToken(),
	}, nil
}
