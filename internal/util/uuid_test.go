package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunID(t *testing.T) {
	type params struct {
		In       string `json:"in"`
		Mode     string `json:"mode"`
		Strength int    `json:"strength"`
		Seed     int64  `json:"seed"`
	}

	a := RunID(params{In: "cat.png", Mode: "strong", Strength: 30, Seed: 7})
	b := RunID(params{In: "cat.png", Mode: "strong", Strength: 30, Seed: 7})
	c := RunID(params{In: "cat.png", Mode: "strong", Strength: 30, Seed: 8})

	assert.Equal(t, a, b, "identical parameters must map to the same ID")
	assert.NotEqual(t, a, c, "a different seed must change the ID")
	assert.Len(t, a, 36, "canonical UUID string form")
}

func TestRunIDUnserializable(t *testing.T) {
	assert.Empty(t, RunID(func() {}))
}
