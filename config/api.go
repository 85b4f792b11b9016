package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public paths: HTML pages and media are read-only, no auth
	return []string{"/", "/pages/:slug", "/media/*", "/healthz"}
}
