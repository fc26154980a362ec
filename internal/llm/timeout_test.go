package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// blockingProvider waits for the context to expire and reports why.
type blockingProvider struct{}

func (blockingProvider) Complete(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestTimeoutBoundsTheCall(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 5*time.Millisecond)

	start := time.Now()
	_, err := p.Complete(context.Background(), Request{Prompt: "hi"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want context.DeadlineExceeded", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("call took %v, deadline not applied", elapsed)
	}
}

func TestTimeoutDisabledWhenZero(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "feedback"})
	p := WithTimeout(mock, 0)
	if p != Provider(mock) {
		t.Error("zero timeout should leave the provider unwrapped")
	}

	resp, err := p.Complete(context.Background(), Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Text != "feedback" {
		t.Errorf("Text = %q, want feedback", resp.Text)
	}
}
