package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *ToolError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *ToolError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file invalid").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *ToolError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Generator action errors

func BuildFailed(cause error) *ToolError {
	return Wrap(cause, CategoryBuild, SeverityFatal, "documentation build failed")
}

func ServeFailed(cause error) *ToolError {
	return Wrap(cause, CategoryServe, SeverityFatal, "documentation server failed")
}

func DeployFailed(cause error) *ToolError {
	return Wrap(cause, CategoryDeploy, SeverityFatal, "documentation deploy failed")
}

// Toolchain errors

func ToolchainError(operation string, cause error) *ToolError {
	return Wrap(cause, CategoryToolchain, SeverityFatal, "toolchain operation failed").
		WithContext("operation", operation)
}
