package litepager

import (
	"encoding/base64"
	"fmt"
	"strconv"
)

var _encoder = base64.RawURLEncoding

// PageToken carries a page index between requests as an opaque string. The
// empty token stands for the first page.
type PageToken struct {
	page int
}

func NewPageToken(page int) *PageToken {
	return &PageToken{
		page: resolvePage(page),
	}
}

// DecodePageToken attempts to parse a base64-encoded string into *PageToken.
// An empty string decodes to a nil token.
func DecodePageToken(b64String string) (*PageToken, error) {
	if len(b64String) == 0 {
		return nil, nil
	}

	pageBytes, err := _encoder.DecodeString(b64String)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 encoded page token: %w", err)
	}

	page, err := strconv.Atoi(string(pageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode page token value: %w", err)
	}

	if page < FirstPage {
		return nil, fmt.Errorf("negative page token value %d", page)
	}

	return &PageToken{
		page: page,
	}, nil
}

// String - implements fmt.Stringer.
func (t *PageToken) String() string {
	if t.IsEmpty() {
		return ""
	}

	return _encoder.EncodeToString([]byte(strconv.Itoa(t.page)))
}

// IsEmpty returns true for a nil token and for the first page.
func (t *PageToken) IsEmpty() bool {
	return t == nil || t.page == FirstPage
}

// GetPage returns the zero-based page index.
func (t *PageToken) GetPage() int {
	if t != nil {
		return t.page
	}

	return FirstPage
}

func (t *PageToken) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *PageToken) UnmarshalText(text []byte) error {
	decoded, err := DecodePageToken(string(text))
	if err != nil {
		return err
	}

	t.page = decoded.GetPage()

	return nil
}

var _ fmt.Stringer = (*PageToken)(nil)
