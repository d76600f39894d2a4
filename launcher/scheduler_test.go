package launcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickSchedulerRunsInDueOrder(t *testing.T) {
	s := NewTickScheduler()
	var ran []string

	s.After(30*time.Millisecond, func() { ran = append(ran, "c") })
	s.After(10*time.Millisecond, func() { ran = append(ran, "a") })
	s.After(10*time.Millisecond, func() { ran = append(ran, "b") })
	s.After(-time.Second, func() { ran = append(ran, "now") })

	s.Advance(0)
	assert.Equal(t, []string{"now"}, ran)

	s.Advance(20 * time.Millisecond)
	assert.Equal(t, []string{"now", "a", "b"}, ran)
	assert.Equal(t, 1, s.Pending())

	s.Advance(10 * time.Millisecond)
	assert.Equal(t, []string{"now", "a", "b", "c"}, ran)
	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, 30*time.Millisecond, s.Now())
}

func TestTickSchedulerDefersTasksAddedWhileRunning(t *testing.T) {
	s := NewTickScheduler()
	runs := 0
	s.After(0, func() {
		runs++
		s.After(0, func() { runs++ })
	})

	s.Advance(time.Millisecond)
	assert.Equal(t, 1, runs)
	s.Advance(time.Millisecond)
	assert.Equal(t, 2, runs)
}
