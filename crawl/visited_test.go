package crawl_test

import (
	"testing"

	"github.com/fwojciec/topsites/crawl"
	"github.com/stretchr/testify/assert"
)

func TestVisited_Visit(t *testing.T) {
	t.Parallel()

	v := crawl.NewVisited(100)

	assert.True(t, v.Visit("http://example.com/top;1"))
	assert.False(t, v.Visit("http://example.com/top;1"))
	assert.False(t, v.Visit("http://example.com/top;1#frag"), "fragments are ignored")
	assert.True(t, v.Visit("http://example.com/top;2"))
}

func TestVisited_Repeated(t *testing.T) {
	t.Parallel()

	v := crawl.NewVisited(0)

	assert.False(t, v.Repeated("<html>one</html>"))
	assert.False(t, v.Repeated("<html>two</html>"))
	assert.True(t, v.Repeated("<html>one</html>"))
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, crawl.Fingerprint("abc"), crawl.Fingerprint("abc"))
	assert.NotEqual(t, crawl.Fingerprint("abc"), crawl.Fingerprint("abd"))
}

func TestVisited_Count(t *testing.T) {
	t.Parallel()

	v := crawl.NewVisited(100)

	assert.Equal(t, 0, v.Count())

	v.Visit("http://example.com/top;1")
	v.Visit("http://example.com/top;2")
	v.Visit("http://example.com/top;2#frag")

	count := v.Count()
	assert.True(t, count >= 1 && count <= 3, "expected count near 2, got %d", count)
}
