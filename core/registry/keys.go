package registry

// Core keys for GlobalRegistry and per-request values.
const (
	// Per-request keys
	KeyRequestLanguage = "request_language"
	KeyRequestUser     = "request_user"

	// Extension registries (cmd, cron, api) — stored in GlobalRegistry
	KeyRegistryCmd    = "registry:cmd"
	KeyRegistryCron   = "registry:cron"
	KeyRegistryAPI    = "registry:api"
	KeyRegistryRoutes = "registry:routes"
)
