package pagesplit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingestkit/pagesplit"
	"github.com/ingestkit/pagesplit/config"
)

func TestSentenceSplitterFacade(t *testing.T) {
	t.Parallel()

	splitter, err := pagesplit.NewSentenceSplitter(
		pagesplit.MaxTokensPerSection(3),
		pagesplit.WithTokenCounter(pagesplit.NewDefaultTokenCounter()),
	)
	require.NoError(t, err)

	pages := []pagesplit.Page{{PageNum: 0, Offset: 0, Text: "Sentence one. Sentence two."}}
	var texts []string
	for chunk := range splitter.SplitPages(pages) {
		texts = append(texts, chunk.Text)
	}
	assert.Equal(t, []string{"Sentence one.", "Sentence two."}, texts)
}

func TestSimpleSplitterFacade(t *testing.T) {
	t.Parallel()

	splitter := pagesplit.NewSimpleSplitter(pagesplit.MaxObjectLength(100))
	pages := []pagesplit.Page{{PageNum: 0, Offset: 0, Text: strings.Repeat("r", 250)}}

	var chunks []pagesplit.SplitPage
	for chunk := range splitter.SplitPages(pages) {
		chunks = append(chunks, chunk)
	}
	require.Len(t, chunks, 3)
	assert.Equal(t, 2, chunks[2].PageNum)
	assert.Len(t, chunks[2].Text, 50)
}

func TestNewSentenceSplitterFromConfig(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		MaxTokensPerSection: 10,
		MaxSectionLength:    200,
		SentenceSearchLimit: 20,
		OverlapPercent:      10,
	}
	splitter, err := pagesplit.NewSentenceSplitterFromConfig(cfg)
	require.NoError(t, err)

	pages := []pagesplit.Page{{PageNum: 0, Offset: 0, Text: "A short page."}}
	count := 0
	for range splitter.SplitPages(pages) {
		count++
	}
	assert.Equal(t, 1, count)
}
