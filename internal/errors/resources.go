package errors

// InsufficientResource reports a currency balance below an operation's cost.
func InsufficientResource(message string) *Error {
	return New(CodeResourceExhausted, message)
}

// InsufficientResourcef is InsufficientResource with a formatted message.
func InsufficientResourcef(format string, args ...any) *Error {
	return Newf(CodeResourceExhausted, format, args...)
}

// NoEligibleOptions reports that a random pick had nothing left to choose from.
func NoEligibleOptions(message string) *Error {
	return New(CodeNoEligibleOptions, message)
}

// NoEligibleOptionsf is NoEligibleOptions with a formatted message.
func NoEligibleOptionsf(format string, args ...any) *Error {
	return Newf(CodeNoEligibleOptions, format, args...)
}
