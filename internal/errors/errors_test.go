package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplarError(t *testing.T) {
	tests := []struct {
		name     string
		err      *TemplarError
		expected string
	}{
		{
			name: "basic error",
			err: &TemplarError{
				Type:    ErrorTypeValidation,
				Code:    "TEST_ERROR",
				Message: "test message",
			},
			expected: "[TEST_ERROR] test message",
		},
		{
			name: "error with component",
			err: &TemplarError{
				Type:      ErrorTypeValidation,
				Code:      "TEST_ERROR",
				Message:   "test message",
				Component: "toolbar",
			},
			expected: "[TEST_ERROR] component:toolbar test message",
		},
		{
			name: "error with file",
			err: &TemplarError{
				Type:     ErrorTypeConfig,
				Code:     "TEST_ERROR",
				Message:  "test message",
				FilePath: ".breakpoints.yml",
			},
			expected: "[TEST_ERROR] .breakpoints.yml test message",
		},
		{
			name: "error with cause",
			err: &TemplarError{
				Type:    ErrorTypeValidation,
				Code:    "TEST_ERROR",
				Message: "test message",
				Cause:   errors.New("underlying error"),
			},
			expected: "[TEST_ERROR] test message: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

type codedCause struct{ name string }

func (c *codedCause) Error() string { return "bad breakpoint " + c.name }

func TestWrapKeepsCauseReachable(t *testing.T) {
	cause := &codedCause{name: "sm"}
	wrapped := WrapValidation(cause, ErrCodeBreakpointInvalid, "invalid breakpoints")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrorTypeValidation, wrapped.Type)
	assert.True(t, wrapped.Recoverable)

	var target *codedCause
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "sm", target.name)

	// fmt wrapping on top must not hide the code
	outer := fmt.Errorf("setup: %w", wrapped)
	assert.Equal(t, ErrCodeBreakpointInvalid, GetCode(outer))
	assert.True(t, IsValidationError(outer))
}

func TestWrapExistingTemplarError(t *testing.T) {
	inner := NewValidationError(ErrCodeBreakpointDuplicate, "duplicate").WithComponent("normalizer")
	outer := WrapConfig(inner, ErrCodeConfigInvalid, "config rejected")

	assert.Equal(t, ErrorTypeConfig, outer.Type)
	assert.False(t, outer.Recoverable)
	assert.Equal(t, "normalizer", outer.Component)
	assert.Same(t, inner, outer.Cause)

	assert.True(t, HasCode(outer, ErrCodeBreakpointDuplicate))
	assert.True(t, HasCode(outer, ErrCodeConfigInvalid))
	assert.False(t, HasCode(outer, ErrCodeBreakpointsEmpty))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrorTypeIO, "X", "y"))
	assert.Nil(t, WrapIO(nil, "X", "y"))
	assert.Nil(t, WrapConfig(nil, "X", "y"))
	assert.Equal(t, "", GetCode(errors.New("plain")))
}

func TestIs(t *testing.T) {
	a := NewValidationError(ErrCodeBreakpointsEmpty, "one")
	b := NewValidationError(ErrCodeBreakpointsEmpty, "two")
	c := NewValidationError(ErrCodeBreakpointInvalid, "three")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}

func TestFields(t *testing.T) {
	err := NewValidationError(ErrCodeBreakpointInvalid, "bad").
		WithComponent("normalizer").
		WithContext("value", "abc").
		WithContext("name", "sm")

	assert.Equal(t, []interface{}{
		"type", "validation",
		"code", ErrCodeBreakpointInvalid,
		"component", "normalizer",
		"name", "sm",
		"value", "abc",
	}, err.Fields())
}

func TestValidationErrorCollection(t *testing.T) {
	collection := &ValidationErrorCollection{}
	assert.False(t, collection.HasErrors())
	assert.Nil(t, collection.ToTemplarError(ErrCodeAppInvalid))

	collection.AddField("id", "bad id!", "must be alphanumeric", "use dashes instead of spaces")
	require.True(t, collection.HasErrors())
	assert.Equal(t, "validation error in field 'id': must be alphanumeric", collection.Error())

	collection.AddField("name", "", "must not be empty")
	assert.Equal(t, "validation failed with 2 errors", collection.Error())

	templErr := collection.ToTemplarError(ErrCodeAppInvalid)
	require.NotNil(t, templErr)
	assert.Equal(t, ErrorTypeValidation, templErr.Type)
	assert.Equal(t, ErrCodeAppInvalid, templErr.Code)
	assert.Contains(t, templErr.Context, "id")
	assert.Contains(t, templErr.Context, "name")
}

type recordingLogger struct {
	level  string
	msg    string
	fields []interface{}
}

func (r *recordingLogger) Error(_ context.Context, _ error, msg string, fields ...interface{}) {
	r.level, r.msg, r.fields = "error", msg, fields
}

func (r *recordingLogger) Warn(_ context.Context, _ error, msg string, fields ...interface{}) {
	r.level, r.msg, r.fields = "warn", msg, fields
}

func TestErrorHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("validation errors warn", func(t *testing.T) {
		logger := &recordingLogger{}
		NewErrorHandler(logger).Handle(ctx, NewValidationError(ErrCodeBreakpointsEmpty, "empty"))
		assert.Equal(t, "warn", logger.level)
		assert.Equal(t, "Validation error occurred", logger.msg)
	})

	t.Run("config errors are errors", func(t *testing.T) {
		logger := &recordingLogger{}
		NewErrorHandler(logger).Handle(ctx, NewConfigError(ErrCodeConfigInvalid, "bad"))
		assert.Equal(t, "error", logger.level)
		assert.Equal(t, "Configuration error occurred", logger.msg)
	})

	t.Run("plain errors", func(t *testing.T) {
		logger := &recordingLogger{}
		NewErrorHandler(logger).Handle(ctx, errors.New("boom"))
		assert.Equal(t, "Unhandled error occurred", logger.msg)
	})

	t.Run("nil is ignored", func(t *testing.T) {
		logger := &recordingLogger{}
		NewErrorHandler(logger).Handle(ctx, nil)
		assert.Empty(t, logger.level)
	})
}
