package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// Settings holds the runtime values an operator can tune without rebuilding.
// A zero DefaultYear or DefaultMonth means "take it from the clock".
type Settings struct {
	Port         string `env:"DIALOG_CALENDAR_PORT"          envDefault:"18080"`
	BindAddr     string `env:"DIALOG_CALENDAR_BIND_ADDR"     envDefault:"127.0.0.1"`
	DefaultYear  int    `env:"DIALOG_CALENDAR_DEFAULT_YEAR"`
	DefaultMonth int    `env:"DIALOG_CALENDAR_DEFAULT_MONTH"`
}

// LoadSettings reads Settings from the environment and validates them.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", ErrSettings, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the port and the optional calendar defaults.
func (s Settings) Validate() error {
	if err := ValidatePort(s.Port); err != nil {
		return err
	}
	if s.DefaultYear != 0 && (s.DefaultYear < MinYear || s.DefaultYear > MaxYear) {
		return fmt.Errorf("%s: %s: %d", ErrSettings, ErrYearRange, s.DefaultYear)
	}
	if s.DefaultMonth < 0 || s.DefaultMonth > 12 {
		return fmt.Errorf("%s: %s: %d", ErrSettings, ErrMonthRange, s.DefaultMonth)
	}
	return nil
}

// ValidatePort ensures the port is a number within the TCP range.
func ValidatePort(port string) error {
	if port == "" {
		return errors.New(ErrPortRequired)
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return errors.New(ErrPortNumber)
	}
	if n < MinPort || n > MaxPort {
		return errors.New(ErrPortRange)
	}
	return nil
}
