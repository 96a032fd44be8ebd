package logging

// Config holds logging-related configuration
type Config struct {
	File       string `json:"file"`        // Path to log file; empty means stdout only
	MaxSize    int    `json:"max_size"`    // Max size in MB before rotation
	MaxBackups int    `json:"max_backups"` // Number of rotated files to keep
	MaxAge     int    `json:"max_age"`     // Max age in days
}
