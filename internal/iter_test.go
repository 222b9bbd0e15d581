package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"a": 1, "b": 2}
	b := map[string]int{"c": 3}

	all := maps.Collect(IterSeq2Concat(maps.All(a), maps.All(b)))
	assert.Equal(map[string]int{"a": 1, "b": 2, "c": 3}, all)

	var keys []int
	for key := range IterSeq2Concat(slices.All([]string{"x", "y"}), slices.All([]string{"z"})) {
		keys = append(keys, key)
		if len(keys) == 2 {
			break
		}
	}
	assert.Equal([]int{0, 1}, keys)
}
