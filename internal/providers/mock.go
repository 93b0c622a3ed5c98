package providers

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

const MockClientName = "mock"

// MockClient is an LLMClient for testing. Responses can be a single canned
// string or a per-request sequence.
type MockClient struct {
	// Configurable behavior
	Latency      time.Duration
	ShouldFail   bool
	FailAfter    int // Fail after N requests (0 = never)
	ResponseText string
	ResponseJSON string   // Served instead when the request asks for structured output
	Responses    []string // When set, served in order; last entry repeats

	// State
	requestCount atomic.Int64
	mu           sync.Mutex
	prompts      []string
}

// NewMockClient creates a new mock client with sensible defaults.
func NewMockClient() *MockClient {
	return &MockClient{
		ResponseText: "mock response",
	}
}

// Name returns the client identifier.
func (c *MockClient) Name() string {
	return MockClientName
}

// Chat serves a canned response.
func (c *MockClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error) {
	start := time.Now()
	count := c.requestCount.Add(1)

	result := &ChatResult{
		RequestID: fmt.Sprintf("mock-%d", count),
		Provider:  MockClientName,
		ModelUsed: req.Model,
		Attempts:  1,
	}

	if c.ShouldFail {
		result.Success = false
		result.ErrorType = "mock_failure"
		result.ErrorMessage = "mock client configured to fail"
		result.ExecutionTime = time.Since(start)
		return result, fmt.Errorf("mock client configured to fail")
	}
	if c.FailAfter > 0 && int(count) > c.FailAfter {
		result.Success = false
		result.ErrorType = "mock_failure"
		result.ErrorMessage = fmt.Sprintf("mock client failed after %d requests", c.FailAfter)
		result.ExecutionTime = time.Since(start)
		return result, fmt.Errorf("mock client failed after %d requests", c.FailAfter)
	}

	if c.Latency > 0 {
		select {
		case <-ctx.Done():
			result.Success = false
			result.ErrorType = "cancelled"
			result.ErrorMessage = ctx.Err().Error()
			return result, ctx.Err()
		case <-time.After(c.Latency):
		}
	}

	c.recordPrompt(req)

	content := c.ResponseText
	if len(c.Responses) > 0 {
		idx := int(count) - 1
		if idx >= len(c.Responses) {
			idx = len(c.Responses) - 1
		}
		content = c.Responses[idx]
	}
	if req.ResponseFormat != nil && c.ResponseJSON != "" {
		content = c.ResponseJSON
	}

	result.Success = true
	result.Content = content
	result.ExecutionTime = time.Since(start)
	return result, nil
}

// RequestCount returns the number of Chat calls served.
func (c *MockClient) RequestCount() int {
	return int(c.requestCount.Load())
}

// Prompts returns the user-message content of every request, in order.
func (c *MockClient) Prompts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.prompts))
	copy(out, c.prompts)
	return out
}

func (c *MockClient) recordPrompt(req *ChatRequest) {
	var user string
	for _, m := range req.Messages {
		if m.Role == "user" {
			user = m.Content
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prompts = append(c.prompts, user)
}
