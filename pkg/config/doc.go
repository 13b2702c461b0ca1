// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files; the default `.env` in the
//     working directory is read automatically on first Load.
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type, so repeated calls are cheap.
//   - MustLoad and MustLoadEnv panic on failure for startup code.
//   - ForceReload and ResetCache bypass the cache, mostly for tests.
//
// Types implementing encoding.TextUnmarshaler, such as rawcookie.Mode or
// slog.Level, are parsed through that interface.
//
// # Usage
//
//	type Config struct {
//		Addr     string         `env:"COOKIEWIRE_ADDR" envDefault:":8080"`
//		Mode     rawcookie.Mode `env:"COOKIEWIRE_MODE" envDefault:"tolerant"`
//		LogLevel slog.Level     `env:"COOKIEWIRE_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// # Error Handling
//
// Errors are joined with the package sentinels ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer and can be matched with errors.Is.
package config
