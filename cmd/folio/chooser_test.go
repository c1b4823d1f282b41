package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalChooser_ChooseOne(t *testing.T) {
	t.Parallel()

	candidates := []string{"Henry IV, Part 1", "Henry IV, Part 2"}

	t.Run("returns the selected index", func(t *testing.T) {
		t.Parallel()

		out := &bytes.Buffer{}
		c := &terminalChooser{in: strings.NewReader("2\n"), out: out}

		i, ok := c.ChooseOne(candidates)
		assert.True(t, ok)
		assert.Equal(t, 1, i)
		assert.Contains(t, out.String(), "1. Henry IV, Part 1")
		assert.Contains(t, out.String(), "2. Henry IV, Part 2")
	})

	t.Run("empty answer declines", func(t *testing.T) {
		t.Parallel()

		c := &terminalChooser{in: strings.NewReader("\n"), out: &bytes.Buffer{}}

		_, ok := c.ChooseOne(candidates)
		assert.False(t, ok)
	})

	t.Run("closed input declines", func(t *testing.T) {
		t.Parallel()

		c := &terminalChooser{in: strings.NewReader(""), out: &bytes.Buffer{}}

		_, ok := c.ChooseOne(candidates)
		assert.False(t, ok)
	})

	t.Run("out-of-range answer declines", func(t *testing.T) {
		t.Parallel()

		c := &terminalChooser{in: strings.NewReader("9\n"), out: &bytes.Buffer{}}

		_, ok := c.ChooseOne(candidates)
		assert.False(t, ok)
	})

	t.Run("non-numeric answer declines", func(t *testing.T) {
		t.Parallel()

		c := &terminalChooser{in: strings.NewReader("both\n"), out: &bytes.Buffer{}}

		_, ok := c.ChooseOne(candidates)
		assert.False(t, ok)
	})
}
