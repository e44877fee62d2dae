package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPage(t *testing.T) {
	items := makeItems(25)

	assert.Equal(t, makeItems(25)[0:10], Page(items, 1))
	assert.Equal(t, makeItems(25)[10:20], Page(items, 2))
	assert.Equal(t, makeItems(25)[20:25], Page(items, 3))
}

func TestPageOutOfRange(t *testing.T) {
	items := makeItems(5)

	assert.Empty(t, Page(items, 2))
	assert.Empty(t, Page(items, 1000))
}

func TestPageBelowOneDefaultsToFirst(t *testing.T) {
	items := makeItems(15)

	assert.Equal(t, items[0:10], Page(items, 0))
	assert.Equal(t, items[0:10], Page(items, -3))
}

func TestPageExactBoundary(t *testing.T) {
	items := makeItems(20)

	assert.Len(t, Page(items, 2), 10)
	assert.Empty(t, Page(items, 3))
}

func TestPageEmptyInput(t *testing.T) {
	assert.Empty(t, Page([]int{}, 1))
}
