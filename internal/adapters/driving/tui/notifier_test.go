package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticeBuffer_SendAndDrain(t *testing.T) {
	buf := NewNoticeBuffer()

	require.NoError(t, buf.Send(context.Background(), "local", "one"))
	require.NoError(t, buf.Send(context.Background(), "elsewhere", "two"))

	assert.Equal(t, []string{"one", "two"}, buf.Drain())
	assert.Empty(t, buf.Drain())
}
