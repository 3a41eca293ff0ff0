package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_CoalescesPerClass(t *testing.T) {
	s := NewScheduler()
	var got []string

	s.Schedule(EventScroll, func() { got = append(got, "scroll1") })
	s.Schedule(EventScroll, func() { got = append(got, "scroll2") })
	s.Schedule(EventPointer, func() { got = append(got, "pointer") })
	assert.True(t, s.Pending(EventScroll))
	assert.False(t, s.Pending(EventResize))

	assert.Equal(t, 2, s.RunPending())
	assert.Equal(t, []string{"pointer", "scroll2"}, got, "newest per class, in class order")
	assert.Equal(t, uint64(1), s.Dropped())
	assert.False(t, s.Pending(EventScroll))
	assert.Zero(t, s.RunPending())
}

func TestScheduler_Cancel(t *testing.T) {
	s := NewScheduler()
	ran := false
	cancel := s.Schedule(EventResize, func() { ran = true })
	cancel()

	assert.False(t, s.Pending(EventResize))
	assert.Zero(t, s.RunPending())
	assert.False(t, ran)
}

func TestScheduler_CancelStaleHandleKeepsReplacement(t *testing.T) {
	s := NewScheduler()
	var got string
	cancel := s.Schedule(EventPointer, func() { got = "old" })
	s.Schedule(EventPointer, func() { got = "new" })
	cancel()

	assert.Equal(t, 1, s.RunPending())
	assert.Equal(t, "new", got)
}

func TestScheduler_TaskScheduledDuringRunWaits(t *testing.T) {
	s := NewScheduler()
	n := 0
	s.Schedule(EventScroll, func() {
		n++
		s.Schedule(EventScroll, func() { n += 10 })
	})

	s.RunPending()
	assert.Equal(t, 1, n)
	assert.True(t, s.Pending(EventScroll))

	s.RunPending()
	assert.Equal(t, 11, n)
}

func TestScheduler_IgnoresInvalidInput(t *testing.T) {
	s := NewScheduler()
	s.Schedule(EventClass(42), func() {})()
	s.Schedule(EventPointer, nil)
	assert.False(t, s.Pending(EventClass(-1)))
	assert.Zero(t, s.RunPending())
}

func TestEventClass_String(t *testing.T) {
	assert.Equal(t, "pointer", EventPointer.String())
	assert.Equal(t, "scroll", EventScroll.String())
	assert.Equal(t, "resize", EventResize.String())
	assert.Equal(t, "unknown", EventClass(9).String())
}
