package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

const configFileName = "daybreak_config.yaml"

// PromptSchedule says which days carry a notes session for each cadence,
// expressed as recurrence rules.
type PromptSchedule struct {
	FrequentRRule   string `yaml:"frequentRRule" validate:"required"`
	InfrequentRRule string `yaml:"infrequentRRule" validate:"required"`
}

// Timers holds the study-session lengths in minutes.
type Timers struct {
	PrayerMinutes          int `yaml:"prayerMinutes" validate:"min=0"`
	HebrewPracticeMinutes  int `yaml:"hebrewPracticeMinutes" validate:"min=0"`
	GreekPracticeMinutes   int `yaml:"greekPracticeMinutes" validate:"min=0"`
	StudyMinutes           int `yaml:"studyMinutes" validate:"min=0"`
	SceneWritingMinutes    int `yaml:"sceneWritingMinutes" validate:"min=0"`
	ImageGenerationMinutes int `yaml:"imageGenerationMinutes" validate:"min=0"`
}

// Config is the application configuration. Secrets come from the environment
// (optionally a .env file), everything else from daybreak_config.yaml.
type Config struct {
	DataDir               string         `yaml:"dataDir" validate:"required"`
	DoseDir               string         `yaml:"doseDir" validate:"required"`
	Latitude              float64        `yaml:"latitude" validate:"min=-90,max=90"`
	Longitude             float64        `yaml:"longitude" validate:"min=-180,max=180"`
	HebrewTranslationFile string         `yaml:"hebrewTranslationFile,omitempty"`
	GreekTranslationFile  string         `yaml:"greekTranslationFile,omitempty"`
	PromptSchedule        PromptSchedule `yaml:"promptSchedule"`
	Timers                Timers         `yaml:"timers"`

	YouTubeAPIKey string `yaml:"-"`
	RapidAPIKey   string `yaml:"-"`
	RapidAPIHost  string `yaml:"-"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration used when no config file exists. The
// default schedule matches the long-standing routine: frequent-cadence notes
// on Monday and Tuesday, infrequent on Wednesday.
func Default() *Config {
	return &Config{
		DataDir:   "~/.daybreak",
		DoseDir:   "~/Desktop/Daily Dose",
		Latitude:  32.683556,
		Longitude: -97.414222,
		PromptSchedule: PromptSchedule{
			FrequentRRule:   "FREQ=WEEKLY;BYDAY=MO,TU",
			InfrequentRRule: "FREQ=WEEKLY;BYDAY=WE",
		},
		Timers: Timers{
			PrayerMinutes:          5,
			HebrewPracticeMinutes:  10,
			GreekPracticeMinutes:   10,
			StudyMinutes:           10,
			SceneWritingMinutes:    15,
			ImageGenerationMinutes: 15,
		},
	}
}

// Load reads the configuration: .env (if present), then daybreak_config.yaml
// from the current directory or the home directory, falling back to defaults
// when no file exists. Environment secrets are overlaid last.
func Load() (*Config, error) {
	// A missing .env is fine; secrets may come from the real environment.
	_ = godotenv.Load()

	path, err := findConfigFile()
	if err != nil {
		cfg := Default()
		return finish(cfg)
	}
	return LoadFromPath(path)
}

// LoadFromPath reads and validates the configuration at a specific path.
// Fields absent from the file keep their defaults.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	cfg.YouTubeAPIKey = os.Getenv("YOUTUBE_TOKEN")
	cfg.RapidAPIKey = os.Getenv("RAPIDAPI_KEY")
	cfg.RapidAPIHost = os.Getenv("RAPIDAPI_HOST")

	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.DoseDir = expandHome(cfg.DoseDir)
	cfg.HebrewTranslationFile = expandHome(cfg.HebrewTranslationFile)
	cfg.GreekTranslationFile = expandHome(cfg.GreekTranslationFile)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct constraints and the recurrence-rule syntax of
// the prompt schedule.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for name, rule := range map[string]string{
		"frequentRRule":   cfg.PromptSchedule.FrequentRRule,
		"infrequentRRule": cfg.PromptSchedule.InfrequentRRule,
	} {
		if _, err := rrule.StrToRRule(rule); err != nil {
			return fmt.Errorf("invalid rrule in promptSchedule.%s: %w", name, err)
		}
	}
	return nil
}

// StatePath returns the rotation state file path.
func (c *Config) StatePath() string {
	return filepath.Join(c.DataDir, "contacts_state.json")
}

// NotesPath returns the notes store file path.
func (c *Config) NotesPath() string {
	return filepath.Join(c.DataDir, "notes.json")
}

// ContactsPath returns the contact directory file path.
func (c *Config) ContactsPath() string {
	return filepath.Join(c.DataDir, "contacts.json")
}

func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}
	return "", fmt.Errorf("config file not found in current directory or home directory")
}

func expandHome(path string) string {
	if path == "" || !strings.HasPrefix(path, "~") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
