package constants

// Deployment environments named in env.env.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
