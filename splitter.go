// Package pagesplit cuts parsed document text into bounded chunks suitable
// for embedding and indexing by a retrieval pipeline. It consumes an ordered
// sequence of Pages produced by an upstream parser and emits an ordered,
// lazy sequence of SplitPages for a downstream indexer.
package pagesplit

import (
	"fmt"
	"iter"

	"github.com/ingestkit/pagesplit/config"
	"github.com/ingestkit/pagesplit/internal/split"
)

// Page is one parser-produced unit of document text. It carries:
//   - PageNum, the ordinal position of the page in the source document
//   - Offset, the rune offset of the page's text within the concatenation
//     of all pages of the document
//   - Text, the page's content
//   - Metadata, an optional map passed through unread
type Page = split.Page

// SplitPage is one bounded output chunk. PageNum is the ordinal of the Page
// whose offset range contains the chunk's first character, so a downstream
// indexer can attribute the chunk to its source page. The SimpleSplitter is
// the one exception: it substitutes the chunk ordinal for page attribution.
type SplitPage = split.SplitPage

// TextSplitter is the interface for splitting a parsed document into
// chunks. The returned sequence is lazy, finite, forward-only, and
// single-pass: each SplitPage is produced on demand, and a consumer that
// breaks out of the loop stops the split at no extra cost. Splitters hold
// no shared mutable state, so multiple documents may be split concurrently.
type TextSplitter interface {
	// SplitPages splits the pages, in page order, into chunks.
	SplitPages(pages []Page) iter.Seq[SplitPage]
}

// SentenceSplitterOption configures a sentence splitter. It follows the
// functional options pattern for clean and flexible configuration.
type SentenceSplitterOption = split.SentenceSplitterOption

// SimpleSplitterOption configures a simple splitter.
type SimpleSplitterOption = split.SimpleSplitterOption

// NewSentenceSplitter creates a script-aware, token-budgeted splitter.
// By default it uses:
//   - Token budget: 500 tokens per chunk
//   - Section length: 1000 characters with 10% overlap
//   - Sentence search limit: 100 characters
//   - The word-based token counter
//
// Use the provided option functions to customize these settings; pass
// WithTokenCounter(NewTikTokenCounter(...)) for model-accurate budgets.
func NewSentenceSplitter(options ...SentenceSplitterOption) (TextSplitter, error) {
	return split.NewSentenceSplitter(options...)
}

// NewSimpleSplitter creates a fixed-width, script-agnostic splitter for
// structured content such as tabular data. By default it cuts chunks of at
// most 1000 characters.
func NewSimpleSplitter(options ...SimpleSplitterOption) TextSplitter {
	return split.NewSimpleSplitter(options...)
}

// NewSentenceSplitterFromConfig creates a sentence splitter from loaded
// configuration. When the configuration names a tiktoken encoding, the
// splitter measures budgets with it; otherwise the word-based counter is
// used.
func NewSentenceSplitterFromConfig(cfg *config.Config, options ...SentenceSplitterOption) (TextSplitter, error) {
	base := []SentenceSplitterOption{
		MaxTokensPerSection(cfg.MaxTokensPerSection),
		MaxSectionLength(cfg.MaxSectionLength),
		SentenceSearchLimit(cfg.SentenceSearchLimit),
		OverlapPercent(cfg.OverlapPercent),
	}
	if cfg.Encoding != "" {
		counter, err := NewTikTokenCounter(cfg.Encoding)
		if err != nil {
			return nil, fmt.Errorf("configured encoding %q: %w", cfg.Encoding, err)
		}
		base = append(base, WithTokenCounter(counter))
	}
	return split.NewSentenceSplitter(append(base, options...)...)
}

// MaxTokensPerSection sets the token budget each emitted chunk must
// satisfy, as measured by the configured TokenCounter.
func MaxTokensPerSection(n int) SentenceSplitterOption {
	return split.MaxTokensPerSection(n)
}

// MaxSectionLength sets the character length of the sliding section window.
func MaxSectionLength(n int) SentenceSplitterOption {
	return split.MaxSectionLength(n)
}

// SentenceSearchLimit sets how many characters past a window boundary the
// splitter scans for a sentence ending.
func SentenceSearchLimit(n int) SentenceSplitterOption {
	return split.SentenceSearchLimit(n)
}

// OverlapPercent sets the section overlap as a percentage of the section
// length. Consecutive windows share exactly this many characters.
func OverlapPercent(n int) SentenceSplitterOption {
	return split.OverlapPercent(n)
}

// WithTokenCounter sets a custom token counter implementation, such as the
// tiktoken counter or a model-specific tokenizer.
func WithTokenCounter(counter TokenCounter) SentenceSplitterOption {
	return split.WithTokenCounter(counter)
}

// WithLogger sets the logger the splitter reports boundary adjustments and
// dropped sections to.
func WithLogger(logger Logger) SentenceSplitterOption {
	return split.WithLogger(logger)
}

// MaxObjectLength sets the fixed chunk width of the simple splitter.
func MaxObjectLength(n int) SimpleSplitterOption {
	return split.MaxObjectLength(n)
}
