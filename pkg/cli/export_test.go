package cli

// Export for testing
var ReadInputs = readInputs
