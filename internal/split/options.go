package split

// MaxTokensPerSection sets the token budget each emitted chunk must satisfy.
func MaxTokensPerSection(n int) SentenceSplitterOption {
	return func(s *SentenceSplitter) {
		s.MaxTokensPerSection = n
	}
}

// MaxSectionLength sets the character length of the sliding section window.
func MaxSectionLength(n int) SentenceSplitterOption {
	return func(s *SentenceSplitter) {
		s.MaxSectionLength = n
	}
}

// SentenceSearchLimit sets how many characters past a window boundary the
// splitter scans for a sentence ending.
func SentenceSearchLimit(n int) SentenceSplitterOption {
	return func(s *SentenceSplitter) {
		s.SentenceSearchLimit = n
	}
}

// OverlapPercent sets the section overlap as a percentage of the section
// length.
func OverlapPercent(n int) SentenceSplitterOption {
	return func(s *SentenceSplitter) {
		s.OverlapPercent = n
	}
}

// WithTokenCounter sets the token counter used for budget checks.
func WithTokenCounter(counter TokenCounter) SentenceSplitterOption {
	return func(s *SentenceSplitter) {
		s.TokenCounter = counter
	}
}

// WithLogger sets the logger the splitter reports to.
func WithLogger(logger Logger) SentenceSplitterOption {
	return func(s *SentenceSplitter) {
		s.Logger = logger
	}
}

// MaxObjectLength sets the fixed chunk width of the simple splitter.
func MaxObjectLength(n int) SimpleSplitterOption {
	return func(s *SimpleSplitter) {
		s.MaxObjectLength = n
	}
}
