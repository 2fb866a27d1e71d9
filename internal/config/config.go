// Package config loads the credentials envaudit needs from the process
// environment.
//
// There is no config file: every setting is read once at startup and the
// resulting Credentials are treated as immutable.
package config

import (
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/envaudit/internal/domain"
)

// LookupFunc matches the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Credentials holds the Datadog key pair used to authenticate every request.
type Credentials struct {
	APIKey string
	AppKey string
}

// MissingEnvError reports a required environment variable that is unset or blank.
type MissingEnvError struct {
	Name string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("config: %s must be set", e.Name)
}

// Is lets errors.Is match MissingEnvError against domain.ErrMissingConfig.
func (e *MissingEnvError) Is(target error) bool {
	return target == domain.ErrMissingConfig
}

// Load reads Credentials from the process environment.
func Load() (Credentials, error) {
	return FromEnv(os.LookupEnv)
}

// FromEnv reads Credentials using lookup. Variables are checked in the order
// they appear in Vars and the first missing one is reported.
func FromEnv(lookup LookupFunc) (Credentials, error) {
	var creds Credentials
	for _, v := range Vars {
		value, ok := lookup(v.Name)
		value = strings.TrimSpace(value)
		if !ok || value == "" {
			return Credentials{}, &MissingEnvError{Name: v.Name}
		}
		v.Set(&creds, value)
	}
	return creds, nil
}
