package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Config holds the game settings. A zero MaxScore, like any zero field with
// an env-default, takes the default.
type Config struct {
	LogLevel   string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	Unbeatable bool   `yaml:"unbeatable" env:"TTT_UNBEATABLE" env-default:"false"`
	MaxScore   int    `yaml:"max-score" env:"TTT_MAX_SCORE" env-default:"3"`
	MaxRounds  int    `yaml:"max-rounds" env:"TTT_MAX_ROUNDS" env-default:"0"`
	Seed       uint64 `yaml:"seed" env:"TTT_SEED" env-default:"0"`
	Human      Player `yaml:"human" env-prefix:"TTT_HUMAN_"`
	Computer   Player `yaml:"computer" env-prefix:"TTT_COMPUTER_"`
}

type Player struct {
	Name   string `yaml:"name" env:"NAME"`
	Marker string `yaml:"marker" env:"MARKER"`
}

const (
	defaultHumanName      = "Human"
	defaultHumanMarker    = "X"
	defaultComputerName   = "Computer"
	defaultComputerMarker = "O"
)

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads path, or only the environment when path is empty or missing,
// then validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := read(path, config); err != nil {
		return nil, err
	}

	config.applyPlayerDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func read(path string, config *Config) error {
	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err = cleanenv.ReadConfig(path, config); err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			return nil
		case !errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	return nil
}

// applyPlayerDefaults fills names and markers left empty. cleanenv defaults
// cannot differ between two fields of the same nested type.
func (that *Config) applyPlayerDefaults() {
	if that.Human.Name == "" {
		that.Human.Name = defaultHumanName
	}
	if that.Human.Marker == "" {
		that.Human.Marker = defaultHumanMarker
	}
	if that.Computer.Name == "" {
		that.Computer.Name = defaultComputerName
	}
	if that.Computer.Marker == "" {
		that.Computer.Marker = defaultComputerMarker
	}
}

// Validate normalizes markers to upper case and checks that both sides can
// be told apart.
func (that *Config) Validate() error {
	var err error

	if that.Human.Marker, err = normalizeMarker(that.Human.Marker); err != nil {
		return fmt.Errorf("human: %w", err)
	}
	if that.Computer.Marker, err = normalizeMarker(that.Computer.Marker); err != nil {
		return fmt.Errorf("computer: %w", err)
	}
	if that.Human.Marker == that.Computer.Marker {
		return fmt.Errorf("%w: both are %q", apperror.ErrDuplicateMarker, that.Human.Marker)
	}

	if strings.TrimSpace(that.Human.Name) == "" {
		return fmt.Errorf("human: %w", apperror.ErrInvalidName)
	}
	if strings.TrimSpace(that.Computer.Name) == "" {
		return fmt.Errorf("computer: %w", apperror.ErrInvalidName)
	}
	if that.Human.Name == that.Computer.Name {
		return fmt.Errorf("%w: both are %q", apperror.ErrDuplicateName, that.Human.Name)
	}

	if that.MaxScore < 1 {
		return fmt.Errorf("max-score must be positive, got %d", that.MaxScore)
	}
	if that.MaxRounds < 0 {
		return fmt.Errorf("max-rounds must not be negative, got %d", that.MaxRounds)
	}

	return nil
}

func normalizeMarker(marker string) (string, error) {
	if utf8.RuneCountInString(marker) != 1 {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidMarker, marker)
	}

	r, _ := utf8.DecodeRuneInString(marker)
	if unicode.IsSpace(r) || !unicode.IsPrint(r) || r == '-' {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidMarker, marker)
	}

	return strings.ToUpper(marker), nil
}
