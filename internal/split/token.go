package split

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// EncodingModel is the embedding model whose BPE measures token budgets by
// default. The text-embedding-3-XX models share the same BPE.
const EncodingModel = "text-embedding-ada-002"

// TokenCounter measures the number of tokens in a string. It is the only
// external capability the splitters call, and implementations must be pure
// and stateless so documents can be split concurrently.
type TokenCounter interface {
	Count(text string) int
}

// DefaultTokenCounter is a simple word-based token counter. It is a rough
// stand-in for sub-word tokenization, adequate when exact budgets are not
// critical.
type DefaultTokenCounter struct{}

func (dtc *DefaultTokenCounter) Count(text string) int {
	return len(strings.Fields(text))
}

// TikTokenCounter counts tokens with the tiktoken BPE used by OpenAI
// embedding models.
type TikTokenCounter struct {
	tke *tiktoken.Tiktoken
}

// NewTikTokenCounter creates a TikTokenCounter for a named encoding,
// e.g. "cl100k_base".
func NewTikTokenCounter(encoding string) (*TikTokenCounter, error) {
	tke, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to get encoding: %w", err)
	}
	return &TikTokenCounter{tke: tke}, nil
}

// NewTikTokenCounterForModel creates a TikTokenCounter using the encoding of
// the given model. An empty model selects EncodingModel.
func NewTikTokenCounterForModel(model string) (*TikTokenCounter, error) {
	if model == "" {
		model = EncodingModel
	}
	tke, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("failed to get encoding for model %q: %w", model, err)
	}
	return &TikTokenCounter{tke: tke}, nil
}

func (ttc *TikTokenCounter) Count(text string) int {
	return len(ttc.tke.Encode(text, nil, nil))
}
