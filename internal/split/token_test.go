package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTokenCounter(t *testing.T) {
	t.Parallel()

	counter := &DefaultTokenCounter{}
	assert.Equal(t, 0, counter.Count(""))
	assert.Equal(t, 0, counter.Count("   \n"))
	assert.Equal(t, 2, counter.Count("Sentence one."))
	assert.Equal(t, 4, counter.Count("Sentence one. Sentence two."))
}

func TestNewTikTokenCounterUnknownEncoding(t *testing.T) {
	t.Parallel()

	_, err := NewTikTokenCounter("no-such-encoding")
	assert.Error(t, err)
}
