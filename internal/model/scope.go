package model

// Scope carries the authenticated caller's identity through use cases.
// Only UID is required; DisplayName and Email are read for greeting text.
type Scope struct {
	UserID      string
	DisplayName string
	Email       string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
