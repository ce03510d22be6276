package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for storage driver %q", DriverPostgres)
		}
	default:
		return fmt.Errorf("storage.driver must be %q or %q (got %q)", DriverMemory, DriverPostgres, c.Storage.Driver)
	}

	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Export.validate(); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if err := c.Events.validate(); err != nil {
		return fmt.Errorf("events: %w", err)
	}

	if c.Notifications.RetentionDays <= 0 {
		return fmt.Errorf("notifications.retention_days must be > 0 (got %d)", c.Notifications.RetentionDays)
	}

	return nil
}

func (e *ExportConfig) validate() error {
	e.Driver = strings.ToLower(strings.TrimSpace(e.Driver))
	switch e.Driver {
	case DriverMemory:
		return nil
	case DriverMinIO:
		var missing []string
		if e.Endpoint == "" {
			missing = append(missing, "endpoint")
		}
		if e.AccessKey == "" {
			missing = append(missing, "access_key")
		}
		if e.SecretKey == "" {
			missing = append(missing, "secret_key")
		}
		if e.Bucket == "" {
			missing = append(missing, "bucket")
		}
		if len(missing) > 0 {
			return fmt.Errorf("minio driver requires %s", strings.Join(missing, ", "))
		}
		return nil
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", DriverMemory, DriverMinIO, e.Driver)
	}
}

func (e *EventsConfig) validate() error {
	e.Driver = strings.ToLower(strings.TrimSpace(e.Driver))
	switch e.Driver {
	case DriverMemory:
		return nil
	case DriverRabbitMQ:
		if e.URL == "" {
			return fmt.Errorf("url is required for driver %q", DriverRabbitMQ)
		}
		if e.Exchange == "" {
			return fmt.Errorf("exchange is required for driver %q", DriverRabbitMQ)
		}
		return nil
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", DriverMemory, DriverRabbitMQ, e.Driver)
	}
}

// RequirePersistentStorage rejects the memory driver for offline commands:
// their writes would vanish when the process exits.
func (c *Config) RequirePersistentStorage() error {
	if c.Storage.Driver == DriverMemory {
		return fmt.Errorf("storage.driver %q keeps no data between processes; set STORAGE_DRIVER=%s", DriverMemory, DriverPostgres)
	}
	return nil
}
