package litepager

const (
	// PageUnset marks a pager whose current page has not been resolved yet.
	// It resolves to FirstPage on the first post-processing pass.
	PageUnset = -1
	FirstPage = 0

	MaxLimit     = 100
	DefaultLimit = 10
)

// IsNormalizedLimitMax clamps a requested page size into (0, maxLimit].
// The second return value reports whether the input was already valid.
func IsNormalizedLimitMax(limit int, maxLimit int) (int, bool) {
	if limit <= 0 {
		return DefaultLimit, false
	} else if limit > maxLimit {
		return maxLimit, false
	}

	return limit, true
}

func NormalizeLimitMax(limit int, maxLimit int) int {
	ret, _ := IsNormalizedLimitMax(limit, maxLimit)
	return ret
}

func NormalizeLimit(limit int) int {
	return NormalizeLimitMax(limit, MaxLimit)
}

// resolvePage maps PageUnset (and any other negative value) to FirstPage.
func resolvePage(page int) int {
	if page < FirstPage {
		return FirstPage
	}

	return page
}
