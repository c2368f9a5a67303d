package litepager

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	summaryKey     = "Lite pager, %d items"
	summarySkipKey = "Lite pager, %d items, skip %d"
)

var (
	_summaryLanguages = []language.Tag{language.English, language.Russian}
	_summaryMatcher   = language.NewMatcher(_summaryLanguages)
	_summaryCatalog   = newSummaryCatalog()
)

func newSummaryCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	mustSet := func(tag language.Tag, key string, msg catalog.Message) {
		if err := b.Set(tag, key, msg); err != nil {
			panic(err)
		}
	}

	mustSet(language.English, summaryKey, plural.Selectf(1, "%d",
		"=1", "Lite pager, %d item",
		"other", "Lite pager, %d items",
	))
	mustSet(language.English, summarySkipKey, plural.Selectf(1, "%d",
		"=1", "Lite pager, %d item, skip %d",
		"other", "Lite pager, %d items, skip %d",
	))
	mustSet(language.Russian, summaryKey, plural.Selectf(1, "%d",
		"one", "Облегчённый пейджер, %d элемент",
		"few", "Облегчённый пейджер, %d элемента",
		"other", "Облегчённый пейджер, %d элементов",
	))
	mustSet(language.Russian, summarySkipKey, plural.Selectf(1, "%d",
		"one", "Облегчённый пейджер, %d элемент, пропустить %d",
		"few", "Облегчённый пейджер, %d элемента, пропустить %d",
		"other", "Облегчённый пейджер, %d элементов, пропустить %d",
	))

	return b
}

// SummaryTitle describes the pager configuration for administrative screens,
// pluralised by items per page. Unknown languages fall back to English.
func (p *LitePager) SummaryTitle(tag language.Tag) string {
	if p == nil {
		return ""
	}

	_, idx, _ := _summaryMatcher.Match(tag)
	printer := message.NewPrinter(_summaryLanguages[idx], message.Catalog(_summaryCatalog))
	if p.cfg.Offset > 0 {
		return printer.Sprintf(summarySkipKey, p.cfg.ItemsPerPage, p.cfg.Offset)
	}

	return printer.Sprintf(summaryKey, p.cfg.ItemsPerPage)
}
