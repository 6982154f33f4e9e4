package messaging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/student-registry/internal/domain/student"
	"github.com/campus-hub/student-registry/pkg/logger"
)

func testEvent(t *testing.T) student.Event {
	t.Helper()
	s, err := student.NewStudent(student.NewStudentParams{
		ID:         1,
		Name:       "Aliya",
		NationalID: "12345678901234",
	})
	require.NoError(t, err)
	return student.NewStudentRegisteredEvent(s)
}

func TestEventBus_DeliversToMatchingSubscribers(t *testing.T) {
	bus := NewEventBus(logger.Nop())

	var named, all, other int
	bus.Subscribe(student.EventStudentRegistered, func(e student.Event) error {
		named++
		return nil
	})
	bus.Subscribe(student.EventStudentRemoved, func(e student.Event) error {
		other++
		return nil
	})
	bus.SubscribeAll(func(e student.Event) error {
		all++
		return nil
	})

	bus.Publish(testEvent(t))

	assert.Equal(t, 1, named)
	assert.Equal(t, 1, all)
	assert.Equal(t, 0, other)
}

func TestEventBus_SynchronousDelivery(t *testing.T) {
	bus := NewEventBus(logger.Nop())

	delivered := false
	bus.SubscribeAll(func(e student.Event) error {
		delivered = true
		return nil
	})

	bus.Publish(testEvent(t))

	// No goroutines, no waiting: the handler already ran.
	assert.True(t, delivered)
}

func TestEventBus_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewEventBus(logger.Nop())

	var second int
	bus.SubscribeAll(func(e student.Event) error {
		return errors.New("boom")
	})
	bus.SubscribeAll(func(e student.Event) error {
		second++
		return nil
	})

	bus.Publish(testEvent(t))

	assert.Equal(t, 1, second)
}

func TestEventBus_EventCarriesIdentity(t *testing.T) {
	e := testEvent(t)

	assert.Equal(t, student.EventStudentRegistered, e.Name())
	assert.Equal(t, student.StudentID(1), e.AggregateID())
	assert.False(t, e.OccurredAt().IsZero())
}
