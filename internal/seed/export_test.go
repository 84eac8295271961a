package seed

// Re-export unexported constants for the external test package.
const (
	DemoCompanyCode = demoCompanyCode
	DemoCompanyName = demoCompanyName
)
