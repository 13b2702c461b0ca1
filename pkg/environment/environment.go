package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Staging     Environment = "staging"
)

// Normalize maps aliases and letter case onto the canonical names. Unknown
// values come back trimmed and lower-cased.
func Normalize(env Environment) Environment {
	switch s := strings.ToLower(strings.TrimSpace(string(env))); s {
	case "", "dev", string(Development):
		return Development
	case "prod", string(Production):
		return Production
	case "stage", string(Staging):
		return Staging
	default:
		return Environment(s)
	}
}

func (e Environment) IsProduction() bool { return Normalize(e) == Production }

func (e Environment) IsDevelopment() bool { return Normalize(e) == Development }

// UnmarshalText normalizes values read from configuration.
func (e *Environment) UnmarshalText(text []byte) error {
	*e = Normalize(Environment(text))
	return nil
}
