package events_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cdfmis/analytics-service/pkg/events"
)

type stubEvent struct {
	id uuid.UUID
}

func (e stubEvent) EventType() string      { return "test.stub" }
func (e stubEvent) AggregateID() uuid.UUID { return e.id }

func TestEventCollector(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		var c events.EventCollector
		assert.Empty(t, c.Events())
	})

	t.Run("records in order", func(t *testing.T) {
		var c events.EventCollector
		first := stubEvent{id: uuid.New()}
		second := stubEvent{id: uuid.New()}

		c.Record(first)
		c.Record(second)

		collected := c.Events()
		assert.Len(t, collected, 2)
		assert.Equal(t, first.id, collected[0].AggregateID())
		assert.Equal(t, second.id, collected[1].AggregateID())
	})

	t.Run("clear drains the collector", func(t *testing.T) {
		var c events.EventCollector
		c.Record(stubEvent{id: uuid.New()})

		drained := c.ClearEvents()
		assert.Len(t, drained, 1)
		assert.Empty(t, c.Events())
		assert.Empty(t, c.ClearEvents())
	})
}
