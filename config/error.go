package config

import "fmt"

// Error is a config loading or validation failure.
type Error struct {
	reason string
}

func (e Error) Error() string {
	return fmt.Sprintf("config error: %s", e.reason)
}
