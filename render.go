package litepager

import "maps"

const (
	// RouteCurrent points pager links at the current route (live preview).
	RouteCurrent = "<current>"
	// RouteNone lets the renderer build links from the request.
	RouteNone = "<none>"
)

// ViewModel is what a template needs to draw previous/next controls. It
// carries no page count.
type ViewModel struct {
	Tags        []string          `json:"tags,omitempty"`
	ElementID   int               `json:"elementId"`
	Parameters  map[string]string `json:"parameters,omitempty"`
	RouteName   string            `json:"routeName"`
	CurrentPage int               `json:"currentPage"`
	HasNext     bool              `json:"hasNext"`
}

// RenderState projects the pager state into a ViewModel. The second return
// value is false when the configured RenderPolicy suppresses the pager: with
// RenderSuppressSinglePage, a pager on the first (or unset) page without a
// next page is not rendered.
func (p *LitePager) RenderState(parameters map[string]string) (*ViewModel, bool) {
	if p == nil {
		return nil, false
	}

	if p.cfg.RenderPolicy == RenderSuppressSinglePage &&
		resolvePage(p.state.CurrentPage) == FirstPage &&
		!p.state.HasNextPage {
		return nil, false
	}

	routeName := RouteNone
	if p.cfg.LivePreview {
		routeName = RouteCurrent
	}

	return &ViewModel{
		Tags:        append([]string(nil), p.cfg.Tags...),
		ElementID:   p.cfg.ElementID,
		Parameters:  maps.Clone(parameters),
		RouteName:   routeName,
		CurrentPage: p.state.CurrentPage,
		HasNext:     p.state.HasNextPage,
	}, true
}
