package pagesplit

import (
	"github.com/ingestkit/pagesplit/internal/split"
)

// TokenCounter defines the interface for counting tokens in text. The
// splitters call it only to measure length; implementations must be pure
// and stateless.
type TokenCounter = split.TokenCounter

// EncodingModel is the embedding model whose BPE the tiktoken counter uses
// by default.
const EncodingModel = split.EncodingModel

// NewDefaultTokenCounter creates a simple word-based token counter that
// splits text on whitespace. Suitable when exact token counts aren't
// critical.
func NewDefaultTokenCounter() TokenCounter {
	return &split.DefaultTokenCounter{}
}

// NewTikTokenCounter creates a token counter using the tiktoken library,
// which implements the same tokenization used by OpenAI models. The
// encoding parameter names the tokenization scheme (e.g. "cl100k_base").
func NewTikTokenCounter(encoding string) (TokenCounter, error) {
	return split.NewTikTokenCounter(encoding)
}

// NewTikTokenCounterForModel creates a token counter using the encoding of
// the named model. An empty model selects EncodingModel.
func NewTikTokenCounterForModel(model string) (TokenCounter, error) {
	return split.NewTikTokenCounterForModel(model)
}
