// Package split implements the chunking engine: splitters that cut an
// ordered sequence of Pages into bounded SplitPages for embedding and
// indexing.
package split

import "sort"

// Page is one parser-produced unit of document text. Offset is the rune
// offset at which the page's text begins within the concatenation of all
// pages of the document; offsets are non-decreasing in page order.
type Page struct {
	PageNum  int
	Offset   int
	Text     string
	Metadata map[string]any
}

// SplitPage is one bounded chunk of text ready for embedding and indexing.
// PageNum is the ordinal of the page that owns the chunk's first character.
type SplitPage struct {
	PageNum int
	Text    string
}

// pageLocator resolves a rune offset to the page that owns it: the page with
// the greatest Offset not exceeding the position. Pages must already be in
// page order, which is how parsers produce them.
type pageLocator []Page

func (l pageLocator) PageAt(offset int) int {
	if len(l) == 0 {
		return 0
	}
	i := sort.Search(len(l), func(i int) bool { return l[i].Offset > offset })
	if i == 0 {
		// Offset precedes every page; attribute to the last page.
		return l[len(l)-1].PageNum
	}
	return l[i-1].PageNum
}

// concatText joins all page texts into the document's logical stream.
func concatText(pages []Page) string {
	switch len(pages) {
	case 0:
		return ""
	case 1:
		return pages[0].Text
	}
	n := 0
	for _, p := range pages {
		n += len(p.Text)
	}
	buf := make([]byte, 0, n)
	for _, p := range pages {
		buf = append(buf, p.Text...)
	}
	return string(buf)
}
