package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageLocator(t *testing.T) {
	t.Parallel()

	locator := pageLocator([]Page{
		{PageNum: 0, Offset: 0},
		{PageNum: 1, Offset: 500},
		{PageNum: 2, Offset: 1200},
	})

	cases := map[int]int{
		0:    0,
		499:  0,
		500:  1,
		1199: 1,
		1200: 2,
		5000: 2,
	}
	for offset, want := range cases {
		assert.Equal(t, want, locator.PageAt(offset), "offset %d", offset)
	}
}

func TestPageLocatorEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, pageLocator(nil).PageAt(42))
}

func TestConcatText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", concatText(nil))
	assert.Equal(t, "one", concatText([]Page{{Text: "one"}}))
	assert.Equal(t, "onetwo", concatText([]Page{{Text: "one"}, {Text: "two"}}))
}
