package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any) {
	m.infoMessages = append(m.infoMessages, fmt.Sprintf(template, args...))
}
func (m *mockLogger) Warn(ctx context.Context, args ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any) {
	m.warnMessages = append(m.warnMessages, fmt.Sprintf(template, args...))
}
func (m *mockLogger) Error(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {
}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any) {}

func testRequest() *Request {
	return &Request{
		Messages: []Message{
			{
				Role: "user",
				Parts: []Part{
					{Text: "Hello"},
				},
			},
		},
	}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	expectedResponse := &Response{
		Content: Message{
			Role: "assistant",
			Parts: []Part{
				{Text: "Hello from primary provider"},
			},
		},
		ProviderName: "primary",
		ModelName:    "primary-model",
		Usage: &Usage{
			InputTokens:  100,
			OutputTokens: 50,
			TotalTokens:  150,
		},
	}

	primary := &mockProvider{
		name:     "primary",
		model:    "primary-model",
		response: expectedResponse,
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      100 * time.Millisecond,
	}

	manager := NewManager([]Provider{primary}, config, logger)

	resp, err := manager.GenerateContent(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.ProviderName != "primary" {
		t.Errorf("Expected provider name 'primary', got: %s", resp.ProviderName)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}
	if len(logger.warnMessages) != 0 {
		t.Errorf("Expected 0 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	expectedResponse := &Response{
		Content: Message{
			Role:  "assistant",
			Parts: []Part{{Text: "Hello from secondary provider"}},
		},
		ProviderName: "secondary",
		ModelName:    "secondary-model",
		Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}

	primary := &mockProvider{
		name:       "primary",
		model:      "primary-model",
		shouldFail: true,
	}
	secondary := &mockProvider{
		name:     "secondary",
		model:    "secondary-model",
		response: expectedResponse,
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}

	manager := NewManager([]Provider{primary, secondary}, config, logger)

	resp, err := manager.GenerateContent(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}
	// Primary should be called RetryAttempts times (2)
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}
	if secondary.callCount != 1 {
		t.Errorf("Expected secondary provider to be called once, got: %d", secondary.callCount)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log message, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", shouldFail: true}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}

	manager := NewManager([]Provider{primary, secondary}, config, logger)

	resp, err := manager.GenerateContent(context.Background(), testRequest())
	if err == nil {
		t.Fatal("Expected error when all providers fail, got nil")
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %+v", resp)
	}
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("Expected ErrAllProvidersFailed, got: %v", err)
	}
}

func TestGenerateContent_FallbackDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model"}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
	}

	manager := NewManager([]Provider{primary, secondary}, config, logger)

	_, err := manager.GenerateContent(context.Background(), testRequest())
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if secondary.callCount != 0 {
		t.Errorf("Secondary must not be called when fallback is disabled, got %d calls", secondary.callCount)
	}
}

func TestGenerateContent_NoProviders(t *testing.T) {
	manager := NewManager(nil, &Config{RetryAttempts: 1}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), testRequest())
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   5,
		RetryDelay:      200 * time.Millisecond,
		MaxTotalTimeout: 50 * time.Millisecond,
	}

	manager := NewManager([]Provider{primary}, config, logger)

	start := time.Now()
	_, err := manager.GenerateContent(context.Background(), testRequest())
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Global timeout not honored, took %v", elapsed)
	}
}
