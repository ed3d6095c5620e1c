package cli

var (
	EnvFileFromArgs = envFileFromArgs
	LoadEnvFile     = loadEnvFile
	Shutdown        = shutdown
)
