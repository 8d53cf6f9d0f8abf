package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRand_SameSeedSameRandomNumbers(t *testing.T) {
	r1 := NewRand(13)
	v1 := [10]int64{}
	for i := range v1 {
		v1[i] = r1.RInt(0, 1000000)
	}

	r2 := NewRand(13)
	v2 := [10]int64{}
	for i := range v2 {
		v2[i] = r2.RInt(0, 1000000)
	}

	assert.Equal(t, v1, v2)
}

func TestRand_DifferentSeedsDifferentRandomNumbers(t *testing.T) {
	r1 := NewRand(13)
	v1 := [10]int64{}
	for i := range v1 {
		v1[i] = r1.RInt(0, 1000000)
	}

	r2 := NewRand(14)
	v2 := [10]int64{}
	for i := range v2 {
		v2[i] = r2.RInt(0, 1000000)
	}

	assert.NotEqual(t, v1, v2)
}

func TestRand_CopyMakesIdenticalGenerators(t *testing.T) {
	r1 := NewRand(13)
	for range 10 {
		r1.RFloat(0, 1)
	}

	r2 := r1

	v1 := [10]float64{}
	v2 := [10]float64{}
	for i := range v1 {
		v1[i] = r1.RFloat(-5, 5)
		v2[i] = r2.RFloat(-5, 5)
	}
	assert.Equal(t, v1, v2)
}

func TestRand_StaysInBounds(t *testing.T) {
	r := NewRand(0)
	for range 10000 {
		i := r.RInt(-3, 7)
		assert.True(t, i >= -3 && i <= 7)
		f := r.RFloat(0.5, 1.5)
		assert.True(t, f >= 0.5 && f < 1.5)
	}

	// Empty or inverted intervals collapse to the lower bound.
	assert.Equal(t, int64(4), r.RInt(4, 4))
	assert.Equal(t, 2.0, r.RFloat(2, 1))
}
