package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCanceled, true},
		{StatusPending, StatusReady, false},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusReady, true},
		{StatusConfirmed, StatusCanceled, true},
		{StatusConfirmed, StatusCompleted, false},
		{StatusReady, StatusCompleted, true},
		{StatusReady, StatusCanceled, true},
		{StatusReady, StatusConfirmed, false},
		{StatusCompleted, StatusCanceled, false},
		{StatusCanceled, StatusPending, false},
	}

	for _, tt := range tests {
		order := Order{Status: tt.from}
		err := order.UpdateStatus(nil, tt.to)
		if tt.allowed {
			assert.NoError(t, err, "%s -> %s should be allowed", tt.from, tt.to)
			assert.Equal(t, tt.to, order.Status)
		} else {
			assert.Error(t, err, "%s -> %s should be rejected", tt.from, tt.to)
			assert.Equal(t, tt.from, order.Status, "status must not change on a rejected transition")
		}
	}
}

func TestOrderCanTransition(t *testing.T) {
	order := Order{Status: StatusConfirmed}
	assert.True(t, order.CanTransition(StatusReady))
	assert.False(t, order.CanTransition(StatusCompleted))
	// probing must not mutate the order
	assert.Equal(t, StatusConfirmed, order.Status)
}
