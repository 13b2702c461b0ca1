// Package environment names the deployment environments a binary can run in
// and normalizes the short aliases people put in env files ("dev", "prod",
// "stage").
//
//	var env environment.Environment
//	_ = env.UnmarshalText([]byte("prod")) // environment.Production
package environment
