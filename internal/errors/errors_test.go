package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_WithoutCause_FormatsCategoryAndSeverity(t *testing.T) {
	err := New(CategoryValidation, SeverityFatal, "missing title")

	require.Equal(t, "validation (fatal): missing title", err.Error())
	require.True(t, err.IsFatal())
}

func TestError_WithCause_IncludesCauseAndUnwraps(t *testing.T) {
	cause := errors.New("yaml: line 3: mapping values are not allowed")
	err := Wrap(cause, CategoryContent, SeverityFatal, "frontmatter parse failed")

	require.Contains(t, err.Error(), "frontmatter parse failed")
	require.Contains(t, err.Error(), cause.Error())
	require.True(t, errors.Is(err, cause))
}

func TestWithContext_AccumulatesFields(t *testing.T) {
	err := ValidationFailed("posts/hello.md", "date is required")

	require.Equal(t, "posts/hello.md", err.Context["subject"])
	require.Equal(t, "date is required", err.Context["reason"])
}

func TestErrorsAs_RecoversSiteError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", ContentLoadError("content/posts", errors.New("permission denied")))

	var serr *SiteError
	require.True(t, errors.As(wrapped, &serr))
	require.Equal(t, CategoryContent, serr.Category)
}

func TestSeriesAggregationWarning_IsNotFatal(t *testing.T) {
	err := SeriesAggregationWarning(errors.New("boom"))
	require.False(t, err.IsFatal())
	require.Equal(t, SeverityWarning, err.Severity)
}
