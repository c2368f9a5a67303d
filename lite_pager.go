package litepager

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

var (
	ErrNilPager       = errors.New("lite pager is nil")
	ErrPageOutOfRange = errors.New("page is out of range")
)

// PagerState is the mutable part of a LitePager.
//
// HasNextPage is only meaningful after PostProcess has run for the current
// page. Until then it holds the optimistic default (true), unless the page
// ceiling has already forced it to false.
type PagerState struct {
	// CurrentPage is PageUnset or a zero-based page index.
	CurrentPage int  `json:"currentPage"`
	HasNextPage bool `json:"hasNextPage"`
}

// QueryLimiter is the part of a query executor the pager drives. The limit is
// set once per request, before the fetch.
type QueryLimiter interface {
	SetLimit(limit int)
	SetOffset(offset int)
}

// LitePager paginates a dataset without a count query. It fetches one row
// beyond the page size (the sentinel row) and infers the existence of a next
// page from its presence.
//
// A LitePager is scoped to one list request and is not safe for concurrent
// use.
type LitePager struct {
	cfg Config
	// requestedPage is the page index carried over from the caller's request.
	requestedPage int
	state         PagerState
	sort          Orderings
	// appliedLimit is the last limit returned by ComputeFetchLimit.
	appliedLimit int

	logger  zerolog.Logger
	metrics *Metrics
}

// NewLitePager validates cfg and returns a pager positioned at PageUnset.
func NewLitePager(cfg Config) (*LitePager, error) {
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("cannot create lite pager: %w", err)
	}

	return &LitePager{
		cfg:           cfg,
		requestedPage: PageUnset,
		state: PagerState{
			CurrentPage: PageUnset,
			HasNextPage: true,
		},
		logger: zerolog.Nop(),
	}, nil
}

// WithCurrentPage sets the page index carried over from the request, e.g. a
// "page" query parameter. Negative values leave the page unset; pages past
// the ceiling are clamped to the last allowed page.
func (p *LitePager) WithCurrentPage(page int) *LitePager {
	if p == nil {
		return nil
	}

	page = lo.Ternary(page < FirstPage, PageUnset, page)
	if p.cfg.HasCeiling() && page >= p.cfg.TotalPages {
		page = p.cfg.TotalPages - 1
	}

	p.requestedPage = page
	p.state.CurrentPage = page

	return p
}

// WithLogger attaches a logger. Only debug events are emitted.
func (p *LitePager) WithLogger(logger zerolog.Logger) *LitePager {
	if p == nil {
		return nil
	}

	p.logger = logger.With().Str("component", "litepager").Int("element", p.cfg.ElementID).Logger()

	return p
}

// WithMetrics attaches prometheus collectors created by NewMetrics.
func (p *LitePager) WithMetrics(m *Metrics) *LitePager {
	if p == nil {
		return nil
	}

	p.metrics = m

	return p
}

// WithSubstitutedSort resets previous orderings and applies the provided ones.
func (p *LitePager) WithSubstitutedSort(orderBy ...OrderBy) *LitePager {
	if p == nil {
		return nil
	}

	p.sort = nil

	return p.WithSort(orderBy...)
}

// WithSort appends orderings. A column met twice keeps its latest direction
// and moves to the end of the list.
func (p *LitePager) WithSort(orderBy ...OrderBy) *LitePager {
	if p == nil {
		return nil
	}

	for _, o := range orderBy {
		idx := slices.IndexFunc(p.sort, func(processed OrderBy) bool {
			return processed.Column == o.Column
		})
		if idx != -1 {
			p.sort = slices.Delete(p.sort, idx, idx+1)
		}

		p.sort = append(p.sort, o)
	}

	return p
}

// Config returns a copy of the pager configuration.
func (p *LitePager) Config() Config {
	if p == nil {
		return Config{}
	}

	return p.cfg
}

// State returns a snapshot of the pager state.
func (p *LitePager) State() PagerState {
	if p == nil {
		return PagerState{CurrentPage: PageUnset}
	}

	return p.state
}

// GetCurrentPage returns the current page as stored, PageUnset included.
func (p *LitePager) GetCurrentPage() int {
	return p.State().CurrentPage
}

func (p *LitePager) HasNextPage() bool {
	return p.State().HasNextPage
}

func (p *LitePager) GetSort() Orderings {
	if p == nil {
		return nil
	}

	return p.sort
}

// AppliedLimit returns the limit computed by the last ComputeFetchLimit call,
// or zero before the query phase.
func (p *LitePager) AppliedLimit() int {
	if p == nil {
		return 0
	}

	return p.appliedLimit
}

// UsesCountQuery always returns false: the pager never needs a row count.
func (p *LitePager) UsesCountQuery() bool {
	return false
}

// ComputeFetchLimit returns the number of rows to request from the executor.
//
// When a page ceiling is configured and the current page is the last one
// allowed, no next page can exist: HasNextPage is forced to false and the
// plain page size is returned. Otherwise the limit includes the sentinel row
// and HasNextPage stays optimistic until PostProcess.
func (p *LitePager) ComputeFetchLimit() int {
	if p == nil {
		return 0
	}

	ceiling := p.cfg.HasCeiling() && resolvePage(p.state.CurrentPage)+1 >= p.cfg.TotalPages
	p.metrics.observeFetchLimit(ceiling)

	if ceiling {
		p.state.HasNextPage = false
		p.appliedLimit = p.cfg.ItemsPerPage
		p.logger.Debug().
			Int("current_page", p.state.CurrentPage).
			Int("total_pages", p.cfg.TotalPages).
			Int("limit", p.cfg.ItemsPerPage).
			Msg("page ceiling reached, fetching without sentinel row")

		return p.cfg.ItemsPerPage
	}

	p.state.HasNextPage = true
	p.appliedLimit = p.cfg.ItemsPerPage + 1
	p.logger.Debug().
		Int("current_page", p.state.CurrentPage).
		Int("limit", p.cfg.ItemsPerPage+1).
		Msg("fetch limit computed")

	return p.cfg.ItemsPerPage + 1
}

// ComputeOffset returns the number of rows to skip for the current page.
// Pages past the ceiling are clamped to the last allowed page.
func (p *LitePager) ComputeOffset() int {
	if p == nil {
		return 0
	}

	page := resolvePage(p.state.CurrentPage)
	if p.cfg.HasCeiling() && page >= p.cfg.TotalPages {
		page = p.cfg.TotalPages - 1
	}

	return page*p.cfg.ItemsPerPage + p.cfg.Offset
}

// ApplyTo hands the offset and the fetch limit to a query executor.
func (p *LitePager) ApplyTo(q QueryLimiter) error {
	if err := p.validate(); err != nil {
		return fmt.Errorf("cannot apply lite pager: %w", err)
	}

	q.SetOffset(p.ComputeOffset())
	q.SetLimit(p.ComputeFetchLimit())

	return nil
}

// Paginate applies ordering, offset and the fetch limit to a gorm query.
func (p *LitePager) Paginate(db *gorm.DB) (*gorm.DB, error) {
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	if len(p.sort) > 0 {
		db = p.sort.Apply(db)
	}

	return db.Offset(p.ComputeOffset()).Limit(p.ComputeFetchLimit()), nil
}

// EstimateTotalItems returns a lower bound of the dataset size, good enough
// for a summary line. It is never an exact count: without a next page it is
// the page size, otherwise the rows up to the current page plus one.
func (p *LitePager) EstimateTotalItems() int {
	if p == nil {
		return 0
	}

	if !p.state.HasNextPage {
		return p.cfg.ItemsPerPage
	}

	page := resolvePage(p.state.CurrentPage)
	if page == FirstPage {
		return p.cfg.ItemsPerPage + 1
	}

	return page*p.cfg.ItemsPerPage + 1
}

// NextPageToken returns the token of the page following the requested one,
// or nil when there is no next page. Call it after PostProcess.
func (p *LitePager) NextPageToken() *PageToken {
	if p == nil || !p.state.HasNextPage {
		return nil
	}

	page := resolvePage(p.requestedPage)
	if page >= p.cfg.maxPage() {
		return nil
	}

	return NewPageToken(page + 1)
}

func (p *LitePager) validate() error {
	if p == nil {
		return ErrNilPager
	}

	if err := p.cfg.validate(); err != nil {
		return err
	}

	if page := resolvePage(p.requestedPage); page > p.cfg.maxPage() {
		return fmt.Errorf("%w: offset of page %d overflows", ErrPageOutOfRange, page)
	}

	if len(p.sort) > 0 {
		return p.sort.validate()
	}

	return nil
}

// PostProcess interprets the rows returned by the executor.
//
// If rows holds more than ItemsPerPage elements the last one is the sentinel
// row: it is dropped, HasNextPage becomes true and the current page advances
// (an unset page resolves to FirstPage). Otherwise HasNextPage becomes false
// and the current page is reset to the requested one. Rows are returned
// untouched in that case.
func PostProcess[T any](p *LitePager, rows []T) []T {
	if p == nil {
		return rows
	}

	if len(rows) > p.cfg.ItemsPerPage {
		rows = rows[:len(rows)-1]

		p.state.HasNextPage = true
		if p.state.CurrentPage == PageUnset {
			p.state.CurrentPage = FirstPage
		} else if p.state.CurrentPage < math.MaxInt {
			p.state.CurrentPage++
		}

		p.metrics.observePage(true)
		p.logger.Debug().
			Int("rows", len(rows)).
			Int("current_page", p.state.CurrentPage).
			Msg("sentinel row trimmed, next page exists")

		return rows
	}

	p.state.HasNextPage = false
	p.state.CurrentPage = resolvePage(p.requestedPage)

	p.metrics.observePage(false)
	p.logger.Debug().
		Int("rows", len(rows)).
		Int("current_page", p.state.CurrentPage).
		Msg("no next page")

	return rows
}
