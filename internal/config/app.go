package config

import "os"

const defaultPort = ":8080"

// Port returns APP_PORT, ":8080" when unset.
func Port() string {
	port, ok := os.LookupEnv("APP_PORT")
	if !ok || port == "" {
		return defaultPort
	}
	return port
}
