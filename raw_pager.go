package litepager

import "fmt"

// RawLitePager is intended for API payloads. For proper code generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawLitePager `json:",inline"`
//	}
type RawLitePager struct {
	// Limit - maximum number of records to return in the response.
	Limit int `json:"limit"`
	// PageToken - base64-encoded page token obtained via PageToken.String().
	// If empty, the first page is returned.
	PageToken string `json:"pageToken"`
}

// Decode converts RawLitePager into *LitePager. The limit is normalized and
// overrides base.ItemsPerPage; the rest of base is kept.
func (p RawLitePager) Decode(base Config, orderBy ...OrderBy) (*LitePager, error) {
	return DecodeLitePager(p.Limit, p.PageToken, base, orderBy...)
}

// DecodeLitePager builds a pager from a raw limit and page token.
func DecodeLitePager(limit int, rawPageToken string, base Config, orderBy ...OrderBy) (*LitePager, error) {
	token, err := DecodePageToken(rawPageToken)
	if err != nil {
		return nil, err
	}

	base.ItemsPerPage = NormalizeLimit(limit)
	pager, err := NewLitePager(base)
	if err != nil {
		return nil, err
	}

	if token != nil {
		pager = pager.WithCurrentPage(token.GetPage())
	}

	pager = pager.WithSubstitutedSort(orderBy...)
	if err = pager.validate(); err != nil {
		return nil, fmt.Errorf("cannot decode lite pager: %w", err)
	}

	return pager, nil
}
