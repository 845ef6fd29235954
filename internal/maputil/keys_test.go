package maputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"/orders", "/orders/{id}", "/users"},
		SortedKeys(map[string]int{"/users": 1, "/orders/{id}": 2, "/orders": 3}))

	assert.Equal(t, []int{200, 404, 500},
		SortedKeys(map[int]bool{500: true, 200: true, 404: true}))

	var nilMap map[string][]string
	got := SortedKeys(nilMap)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
