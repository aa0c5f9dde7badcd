// export_test.go exports private functions for white-box testing.
package logger

// Error chain helpers exported for tests.
var (
	CollectErrorChain = collectErrorChain
	FormatErrorChain  = formatErrorChain
)
