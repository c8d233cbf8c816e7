package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/convobar/internal/domain"
	portsmocks "github.com/renato0307/convobar/internal/ports/mocks"
)

func TestCreateThread_GeneratesID(t *testing.T) {
	threadWriter := portsmocks.NewMockThreadWriter(t)
	threadWriter.EXPECT().Add(mock.Anything, mock.MatchedBy(func(th domain.Thread) bool {
		return th.ID != "" && th.Name == "Alice" && th.IsGroup
	})).Return(nil)

	service := NewThreadService(portsmocks.NewMockThreadReader(t), threadWriter)

	thread, err := service.CreateThread(context.Background(), CreateThreadParams{Name: "  Alice ", IsGroup: true})

	require.NoError(t, err)
	assert.Len(t, thread.ID, 36)
}

func TestCreateThread_KeepsExplicitID(t *testing.T) {
	threadWriter := portsmocks.NewMockThreadWriter(t)
	threadWriter.EXPECT().Add(mock.Anything, mock.MatchedBy(func(th domain.Thread) bool {
		return th.ID == "fixed"
	})).Return(nil)

	service := NewThreadService(portsmocks.NewMockThreadReader(t), threadWriter)

	thread, err := service.CreateThread(context.Background(), CreateThreadParams{ID: "fixed", Name: "x"})

	require.NoError(t, err)
	assert.Equal(t, "fixed", thread.ID)
}

func TestCreateThread_RequiresName(t *testing.T) {
	service := NewThreadService(portsmocks.NewMockThreadReader(t), portsmocks.NewMockThreadWriter(t))

	_, err := service.CreateThread(context.Background(), CreateThreadParams{Name: "   "})

	require.Error(t, err)
}

func TestCreateThread_AddError(t *testing.T) {
	threadWriter := portsmocks.NewMockThreadWriter(t)
	threadWriter.EXPECT().Add(mock.Anything, mock.Anything).Return(domain.ErrThreadExists)

	service := NewThreadService(portsmocks.NewMockThreadReader(t), threadWriter)

	_, err := service.CreateThread(context.Background(), CreateThreadParams{ID: "t1", Name: "x"})

	assert.ErrorIs(t, err, domain.ErrThreadExists)
}

func TestSetFlags_WrapsError(t *testing.T) {
	threadWriter := portsmocks.NewMockThreadWriter(t)
	threadWriter.EXPECT().UpdateFlags(mock.Anything, "t1", mock.Anything).Return(errors.New("boom"))

	service := NewThreadService(portsmocks.NewMockThreadReader(t), threadWriter)

	err := service.SetFlags(context.Background(), "t1", domain.ThreadFlags{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update thread flags")
}
