package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThread_ResolveRequestSubtype(t *testing.T) {
	tests := []struct {
		name     string
		thread   Thread
		expected RequestSubtype
	}{
		{"contact", Thread{}, SubtypeContact},
		{"blocked contact", Thread{IsBlocked: true}, SubtypeBlockedContact},
		{"group invite", Thread{IsGroup: true}, SubtypeGroupInvite},
		{"blocked group invite", Thread{IsGroup: true, IsBlocked: true}, SubtypeBlockedGroupInvite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.thread.ResolveRequestSubtype())
		})
	}
}

func TestGesturePhase_IsInteractive(t *testing.T) {
	tests := []struct {
		phase    GesturePhase
		expected bool
	}{
		{GesturePossible, false},
		{GestureBegan, true},
		{GestureChanged, true},
		{GestureEnded, true},
		{GestureCancelled, true},
		{GestureFailed, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.phase.IsInteractive(), "phase %d", tt.phase)
	}
}

func TestInputVisibility_ShouldHideInput(t *testing.T) {
	assert.False(t, InputVisibility{}.ShouldHideInput())
	assert.True(t, InputVisibility{IsPreview: true}.ShouldHideInput())
	assert.True(t, InputVisibility{HasLeftGroup: true}.ShouldHideInput())
}
