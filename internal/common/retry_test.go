package common

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetryRetriesRetryableErrors(t *testing.T) {
	attempts := 0
	err := WithRetry(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return &RetryableError{Err: errors.New("transient"), Retryable: true}
		}
		return nil
	}, RetryOptions{MaxAttempts: 3, InitialDelay: 1, MaxDelay: 1})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestWithRetryAbortsOnNonRetryable(t *testing.T) {
	attempts := 0
	wrapped := &RetryableError{Err: errors.New("bad request"), Retryable: false}
	err := WithRetry(context.Background(), func() error {
		attempts++
		return wrapped
	}, RetryOptions{MaxAttempts: 5, InitialDelay: 1})

	assert.Equal(t, 1, attempts)
	assert.Equal(t, wrapped, err)
}

func TestWithRetryAbortsOnUnclassifiedError(t *testing.T) {
	// Errors nothing has marked retryable do not burn attempts.
	attempts := 0
	plain := errors.New("unexpected")
	err := WithRetry(context.Background(), func() error {
		attempts++
		return plain
	}, RetryOptions{MaxAttempts: 5, InitialDelay: 1})

	assert.Equal(t, 1, attempts)
	assert.Equal(t, plain, err)
}

func TestWithRetryExhaustsAttempts(t *testing.T) {
	attempts := 0
	err := WithRetry(context.Background(), func() error {
		attempts++
		return &RetryableError{Err: errors.New("transient"), Retryable: true}
	}, RetryOptions{MaxAttempts: 2, InitialDelay: 1, MaxDelay: 1})

	assert.Equal(t, 2, attempts)
	assert.ErrorIs(t, err, ErrMaxRetries)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "rate limit", err: ErrRateLimit, want: true},
		{name: "wrapped rate limit", err: errors.Join(errors.New("api"), ErrRateLimit), want: true},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: true},
		{name: "retryable wrapper", err: &RetryableError{Err: errors.New("x"), Retryable: true}, want: true},
		{name: "non-retryable wrapper", err: &RetryableError{Err: errors.New("x"), Retryable: false}, want: false},
		{name: "plain error", err: errors.New("x"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestUserErrorUnwraps(t *testing.T) {
	err := NewUserError("Could not reach the API.", ErrRateLimit)

	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "Could not reach the API.", userErr.UserMessage)
	assert.ErrorIs(t, err, ErrRateLimit)
	assert.Contains(t, err.Error(), "rate limit")
}
