package environment

import (
	"fmt"
	"strings"
)

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Parse maps a raw value, including the short aliases "dev", "stage" and
// "prod", onto one of the known environments. Matching is case-insensitive
// and ignores surrounding whitespace.
func Parse(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Development), "dev", "local":
		return Development, nil
	case string(Staging), "stage":
		return Staging, nil
	case string(Production), "prod":
		return Production, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknown, s)
	}
}

// UnmarshalText lets Environment be used directly in env-tagged config structs.
func (e *Environment) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func (e Environment) String() string {
	return string(e)
}

func (e Environment) IsProduction() bool  { return e == Production }
func (e Environment) IsStaging() bool     { return e == Staging }
func (e Environment) IsDevelopment() bool { return e == Development }
