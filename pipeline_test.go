package mgtools

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestForEachInOrder(t *testing.T) {
	c := New(zerolog.Nop())

	var seen []int
	assert.NoError(t, c.forEach(5, func(i int) error {
		seen = append(seen, i)
		return nil
	}))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
}

func TestForEachFirstError(t *testing.T) {
	c := New(zerolog.Nop())
	errStop := errors.New("stop")

	var seen []int
	err := c.forEach(5, func(i int) error {
		seen = append(seen, i)
		if i == 2 {
			return errStop
		}
		return nil
	})
	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestForEachWorkers(t *testing.T) {
	c := New(zerolog.Nop(), WithWorkers(3))

	done := make(chan int, 10)
	assert.NoError(t, c.forEach(10, func(i int) error {
		done <- i
		return nil
	}))
	assert.Len(t, done, 10)
}
