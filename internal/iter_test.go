package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(slices.Values([]int{1, 2}), slices.Values([]int{}), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	assert.Empty(slices.Collect(IterSeqConcat[int]()))

	// Early break
	var got []int
	for v := range seq {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal([]int{1, 2}, got)
}

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeq2Concat(maps.All(map[string]int{"a": 1}), maps.All(map[string]int{"b": 2}))
	assert.Equal(map[string]int{"a": 1, "b": 2}, maps.Collect(seq))
}

func TestIterSeqTake(t *testing.T) {
	assert := assert.New(t)

	values := slices.Values([]int{1, 2, 3, 4})

	table := [](struct {
		n      int
		expect []int
	}){
		{-1, nil},
		{0, nil},
		{1, []int{1}},
		{3, []int{1, 2, 3}},
		{4, []int{1, 2, 3, 4}},
		{10, []int{1, 2, 3, 4}},
	}

	for _, entry := range table {
		assert.Equal(entry.expect, slices.Collect(IterSeqTake(values, entry.n)), "n=%d", entry.n)
	}
}
