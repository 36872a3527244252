package split

import (
	"fmt"
	"iter"
	"unicode"
)

// Defaults for the sentence splitter. A 1000-character section is roughly
// 400-500 tokens of English; 10% overlap follows the semantic search
// guidance for chunked indexes.
const (
	DefaultMaxTokensPerSection = 500
	DefaultSectionLength       = 1000
	DefaultSentenceSearchLimit = 100
	DefaultOverlapPercent      = 10
)

const (
	figureOpenTag  = "<figure"
	figureCloseTag = "</figure"
)

// SentenceSplitter cuts a document into sections that respect sentence and
// word boundaries across Latin and CJK scripts, then recursively refines
// each section until it fits a token budget. All offsets and lengths are
// counted in runes, never bytes, matching how Page offsets are produced.
type SentenceSplitter struct {
	MaxTokensPerSection int
	MaxSectionLength    int
	SentenceSearchLimit int
	OverlapPercent      int
	TokenCounter        TokenCounter
	Logger              Logger
}

// SentenceSplitterOption configures a SentenceSplitter.
type SentenceSplitterOption func(*SentenceSplitter)

// NewSentenceSplitter creates a SentenceSplitter with the given options.
func NewSentenceSplitter(options ...SentenceSplitterOption) (*SentenceSplitter, error) {
	s := &SentenceSplitter{
		MaxTokensPerSection: DefaultMaxTokensPerSection,
		MaxSectionLength:    DefaultSectionLength,
		SentenceSearchLimit: DefaultSentenceSearchLimit,
		OverlapPercent:      DefaultOverlapPercent,
		TokenCounter:        &DefaultTokenCounter{},
		Logger:              GlobalLogger,
	}

	for _, option := range options {
		option(s)
	}

	if s.MaxTokensPerSection <= 0 {
		return nil, fmt.Errorf("max tokens per section must be positive, got %d", s.MaxTokensPerSection)
	}
	if s.MaxSectionLength <= 0 {
		return nil, fmt.Errorf("max section length must be positive, got %d", s.MaxSectionLength)
	}
	if s.SentenceSearchLimit < 0 {
		return nil, fmt.Errorf("sentence search limit must not be negative, got %d", s.SentenceSearchLimit)
	}
	if s.OverlapPercent < 0 || s.OverlapPercent >= 100 {
		return nil, fmt.Errorf("overlap percent must be in [0, 100), got %d", s.OverlapPercent)
	}
	if s.TokenCounter == nil {
		return nil, fmt.Errorf("token counter must not be nil")
	}
	return s, nil
}

// sectionOverlap is the number of runes consecutive sections share.
func (s *SentenceSplitter) sectionOverlap() int {
	return s.MaxSectionLength * s.OverlapPercent / 100
}

// SplitPages splits the concatenated page texts into token-budgeted chunks.
// The returned sequence is lazy and single-pass: chunks are produced on
// demand and breaking out of the loop stops the split.
func (s *SentenceSplitter) SplitPages(pages []Page) iter.Seq[SplitPage] {
	return func(yield func(SplitPage) bool) {
		locator := pageLocator(pages)
		allText := []rune(concatText(pages))
		if isBlank(allText) {
			return
		}

		length := len(allText)
		overlap := s.sectionOverlap()
		if length <= s.MaxSectionLength {
			s.emitSection(locator.PageAt(0), allText, yield)
			return
		}

		start, end := 0, length
		for start+overlap < length {
			lastWord := -1
			end = start + s.MaxSectionLength

			if end > length {
				end = length
			} else {
				// Extend to the end of the sentence, within the search limit.
				for end < length && end-start-s.MaxSectionLength < s.SentenceSearchLimit && !isSentenceEnding(allText[end]) {
					if isWordBreak(allText[end]) {
						lastWord = end
					}
					end++
				}
				if end < length && !isSentenceEnding(allText[end]) && lastWord > 0 {
					// Fall back to at least keeping a whole word.
					end = lastWord
				}
			}
			if end < length {
				end++
			}

			// Pull the start back to the start of a sentence, or at least a
			// whole word boundary.
			lastWord = -1
			for start > 0 && start > end-s.MaxSectionLength-2*s.SentenceSearchLimit && !isSentenceEnding(allText[start]) {
				if isWordBreak(allText[start]) {
					lastWord = start
				}
				start--
			}
			if !isSentenceEnding(allText[start]) && lastWord > 0 {
				start = lastWord
			}
			if start > 0 {
				start++
			}

			section := allText[start:end]
			if !s.emitSection(locator.PageAt(start), section, yield) {
				return
			}

			figureStart := lastIndex(section, figureOpenTag)
			if figureStart > 2*s.SentenceSearchLimit && figureStart > lastIndex(section, figureCloseTag) {
				// The section ends with an unclosed figure; start the next
				// section at the figure so it is never split. The next start
				// must still strictly advance, or a run of unmatched markers
				// could loop forever.
				next := min(end-overlap, start+figureStart)
				if next <= start {
					next = end - overlap
				}
				if next <= start {
					next = start + 1
				}
				s.Logger.Info("section ends with unclosed figure, starting next section at the figure",
					"page", locator.PageAt(next), "offset", next, "figure_start", figureStart)
				start = next
			} else {
				start = end - overlap
			}
		}

		if start+overlap < end {
			s.emitSection(locator.PageAt(start), allText[start:end], yield)
		}
	}
}

// emitSection refines one section down to the token budget and yields the
// resulting chunks. A failure inside the refinement drops the rest of this
// section's output rather than aborting the whole split.
func (s *SentenceSplitter) emitSection(pageNum int, text []rune, yield func(SplitPage) bool) (more bool) {
	more = true
	defer func() {
		if r := recover(); r != nil {
			s.Logger.Error("dropping remainder of section after split failure", "page", pageNum, "error", r)
		}
	}()
	return s.splitByTokens(pageNum, text, yield)
}

// splitByTokens recursively splits text until each piece fits the token
// budget. Splits prefer the sentence ending nearest the midpoint, searched
// within the middle third; failing that the text is cut at the midpoint
// with overlapping halves so no tokens are lost at a non-semantic seam.
func (s *SentenceSplitter) splitByTokens(pageNum int, text []rune, yield func(SplitPage) bool) bool {
	if isBlank(text) {
		return true
	}

	numTokens := s.TokenCounter.Count(string(text))
	s.Logger.Debug("splitting section by tokens",
		"page", pageNum, "text_len", len(text), "num_tokens", numTokens, "max_tokens", s.MaxTokensPerSection)

	if numTokens <= s.MaxTokensPerSection {
		return yield(SplitPage{PageNum: pageNum, Text: string(text)})
	}

	n := len(text)
	mid := n / 2
	third := n / 3

	// Search outward from the midpoint, alternating sides, for the nearest
	// sentence ending within the middle third.
	splitPos := -1
	for pos := 0; mid-pos > third || mid+pos < n-third; pos++ {
		if mid-pos >= 0 && isSentenceEnding(text[mid-pos]) {
			splitPos = mid - pos
			break
		}
		if mid+pos < n && isSentenceEnding(text[mid+pos]) {
			splitPos = mid + pos
			break
		}
	}

	var firstHalf, secondHalf []rune
	if splitPos > 0 {
		firstHalf = text[:splitPos+1]
		rest := splitPos + 1
		for rest < n && unicode.IsSpace(text[rest]) {
			rest++
		}
		secondHalf = text[rest:]
	} else {
		// No sentence ending near the midpoint: cut there and extend both
		// halves to overlap.
		charOverlap := min(n*s.OverlapPercent/100, mid/2)
		firstHalf = text[:mid+charOverlap]
		secondHalf = text[mid-charOverlap:]
	}

	if len(firstHalf) >= n || len(secondHalf) >= n {
		// A single run with no usable boundary; emitting it over budget is
		// the only way to make progress.
		s.Logger.Warn("unsplittable section exceeds token budget",
			"page", pageNum, "text_len", n, "num_tokens", numTokens)
		return yield(SplitPage{PageNum: pageNum, Text: string(text)})
	}

	if !s.splitByTokens(pageNum, firstHalf, yield) {
		return false
	}
	return s.splitByTokens(pageNum, secondHalf, yield)
}

func isBlank(text []rune) bool {
	for _, r := range text {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// lastIndex returns the rune index of the last occurrence of marker in
// text, or -1 if absent.
func lastIndex(text []rune, marker string) int {
	m := []rune(marker)
	for i := len(text) - len(m); i >= 0; i-- {
		match := true
		for j, r := range m {
			if text[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
