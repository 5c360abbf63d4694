package errors

// Convenience constructors for common error patterns

// Config errors

func ConfigNotFound(path string) *SiteError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *SiteError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file invalid").
		WithContext("path", path)
}

func ValidationFailed(subject, reason string) *SiteError {
	return New(CategoryValidation, SeverityFatal, "content validation failed").
		WithContext("subject", subject).
		WithContext("reason", reason)
}

// Content pipeline errors

func ContentLoadError(path string, cause error) *SiteError {
	return Wrap(cause, CategoryContent, SeverityFatal, "content load failed").
		WithContext("path", path)
}

func FrontmatterError(path string, cause error) *SiteError {
	return Wrap(cause, CategoryContent, SeverityFatal, "frontmatter parse failed").
		WithContext("path", path)
}

func GenerateError(artifact string, cause error) *SiteError {
	return Wrap(cause, CategoryGenerate, SeverityError, "generation failed").
		WithContext("artifact", artifact)
}

func SeriesAggregationWarning(cause error) *SiteError {
	return Wrap(cause, CategoryGenerate, SeverityWarning, "series aggregation degraded")
}

// Server errors

func ServerStartError(cause error) *SiteError {
	return Wrap(cause, CategoryServer, SeverityFatal, "http server startup failed")
}
