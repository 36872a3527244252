package split

import "iter"

// DefaultMaxObjectLength is the fixed chunk width of the simple splitter.
const DefaultMaxObjectLength = 1000

// SimpleSplitter cuts the concatenated page texts into fixed-width chunks
// with no boundary search and no overlap. It targets structured content
// such as tabular data, where sentence boundaries are meaningless; each
// chunk's PageNum is the chunk ordinal, not a source page.
type SimpleSplitter struct {
	MaxObjectLength int
}

// SimpleSplitterOption configures a SimpleSplitter.
type SimpleSplitterOption func(*SimpleSplitter)

// NewSimpleSplitter creates a SimpleSplitter with the given options.
func NewSimpleSplitter(options ...SimpleSplitterOption) *SimpleSplitter {
	s := &SimpleSplitter{MaxObjectLength: DefaultMaxObjectLength}
	for _, option := range options {
		option(s)
	}
	if s.MaxObjectLength <= 0 {
		s.MaxObjectLength = DefaultMaxObjectLength
	}
	return s
}

// SplitPages cuts the document into consecutive chunks of at most
// MaxObjectLength runes. The returned sequence is lazy and single-pass.
func (s *SimpleSplitter) SplitPages(pages []Page) iter.Seq[SplitPage] {
	return func(yield func(SplitPage) bool) {
		allText := []rune(concatText(pages))
		if isBlank(allText) {
			return
		}

		length := len(allText)
		for i := 0; i < length; i += s.MaxObjectLength {
			end := i + s.MaxObjectLength
			if end > length {
				end = length
			}
			chunk := SplitPage{PageNum: i / s.MaxObjectLength, Text: string(allText[i:end])}
			if !yield(chunk) {
				return
			}
		}
	}
}
