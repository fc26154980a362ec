package review

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeace-app/codeace/internal/llm"
)

func TestReviewReturnsFeedback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: "Consider using a map for O(1) lookups.",
	})
	svc := NewService(mock, DefaultConfig())

	feedback, err := svc.Review(context.Background(), "for i := range xs {}", "go")
	require.NoError(t, err)
	assert.Equal(t, "Consider using a map for O(1) lookups.", feedback)

	require.Len(t, mock.Calls, 1)
	assert.Contains(t, mock.Calls[0].Prompt, "Language: go")
	assert.Contains(t, mock.Calls[0].Prompt, "for i := range xs {}")
	assert.NotEmpty(t, mock.Calls[0].System)
}

func TestReviewRejectsEmptyCode(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Review(context.Background(), "   \n\t", "python")
	require.Error(t, err)
	assert.Zero(t, mock.CallCount(), "provider should not be called for empty code")
}

func TestReviewPropagatesProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Review(context.Background(), "print('hi')", "python")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "code review"))
}

func TestReviewRejectsEmptyFeedback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "   "})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Review(context.Background(), "x = 1", "python")
	require.Error(t, err)
}
