package litepager

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidConfig = errors.New("invalid lite pager config")

// MaxItemsPerPage bounds Config.ItemsPerPage. Keep in sync with the
// validate tag below.
const MaxItemsPerPage = 1_000_000

// RenderPolicy decides whether a pager with nothing to navigate is rendered.
type RenderPolicy string

const (
	// RenderAlways renders the pager even for a single page.
	RenderAlways RenderPolicy = "always"
	// RenderSuppressSinglePage skips rendering when the current page is the
	// first one and no next page exists.
	RenderSuppressSinglePage RenderPolicy = "suppress_single_page"
)

// Config is the host-injected configuration of a LitePager. It is validated
// once by NewLitePager and never mutated afterwards.
type Config struct {
	// ItemsPerPage is the page size, in (0, MaxItemsPerPage].
	ItemsPerPage int `json:"itemsPerPage" validate:"gt=0,lte=1000000"`
	// Offset is the number of leading rows skipped before the first page.
	Offset int `json:"offset" validate:"gte=0"`
	// TotalPages is the page ceiling. Zero means no ceiling.
	TotalPages int `json:"totalPages" validate:"gte=0"`
	// ElementID distinguishes several pagers rendered on one page.
	ElementID int `json:"elementId" validate:"gte=0"`
	// Tags are the labels of the pager controls, passed to the renderer as-is.
	Tags []string `json:"tags,omitempty"`
	// LivePreview switches the route context of the rendered pager.
	LivePreview bool `json:"livePreview"`
	// RenderPolicy defaults to RenderAlways.
	RenderPolicy RenderPolicy `json:"renderPolicy,omitempty" validate:"omitempty,oneof=always suppress_single_page"`
}

var _validate = validator.New()

func (c *Config) setDefaults() {
	if c.RenderPolicy == "" {
		c.RenderPolicy = RenderAlways
	}
}

func (c *Config) validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := _validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// maxPage is the highest page index whose next page offset still fits in an
// int. It is -1 when not even the first page fits.
func (c *Config) maxPage() int {
	return (math.MaxInt-c.Offset)/c.ItemsPerPage - 1
}

// HasCeiling reports whether a page ceiling is configured.
func (c *Config) HasCeiling() bool {
	return c != nil && c.TotalPages > 0
}
