package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks if the configuration is usable in the given
// environment. Development and test are permissive since defaults fill the
// gaps; production never accepts the development JWT secret or an unset
// postgres user.
func ValidateConfig(cfg *Config, env Environment) error {
	var errs []ValidationError

	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DBPath == "" {
			errs = append(errs, ValidationError{Field: "DB_PATH", Message: "required for the sqlite driver"})
		}
	case DriverPostgres:
		if cfg.DBHost == "" {
			errs = append(errs, ValidationError{Field: "DB_HOST", Message: "required for the postgres driver"})
		}
		if cfg.DBUser == "" {
			errs = append(errs, ValidationError{Field: "DB_USER", Message: "required for the postgres driver"})
		}
		if cfg.DBName == "" {
			errs = append(errs, ValidationError{Field: "DB_NAME", Message: "required for the postgres driver"})
		}
	default:
		errs = append(errs, ValidationError{
			Field:   "DB_DRIVER",
			Message: fmt.Sprintf("unknown driver %q (want sqlite or postgres)", cfg.DBDriver),
		})
	}

	if cfg.JWTSecret == "" {
		errs = append(errs, ValidationError{Field: "JWT_SECRET", Message: "required"})
	}
	if env == Production && cfg.JWTSecret == "dev-only-secret" {
		errs = append(errs, ValidationError{Field: "JWT_SECRET", Message: "must be set explicitly in production"})
	}

	if len(errs) > 0 {
		messages := make([]string, len(errs))
		for i, e := range errs {
			messages[i] = e.Error()
		}
		return fmt.Errorf("%s", strings.Join(messages, "; "))
	}
	return nil
}
