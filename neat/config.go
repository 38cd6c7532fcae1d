package neat

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// Config stores the configuration parameters for building and running networks.
type Config struct {
	Genome     GenomeConfig
	Evaluation EvaluationConfig
}

// GenomeConfig holds parameters describing the shape of decoded genomes.
type GenomeConfig struct {
	NumInputs         int    `ini:"num_inputs"`
	NumOutputs        int    `ini:"num_outputs"`
	ActivationDefault string `ini:"activation_default"` // Hidden-node activation, default 'sigmoid'
}

// EvaluationConfig holds parameters for time-stepped evaluation.
type EvaluationConfig struct {
	TimeSteps           int     `ini:"time_steps"`            // Evaluations per sample, default 1
	BiasValue           float64 `ini:"bias_value"`            // Value fed to the bias sensor, default 1.0
	ResetBetweenSamples bool    `ini:"reset_between_samples"` // Clear recurrent state per sample, default true
}

// NewDefaultConfig returns a Config with every default applied.
func NewDefaultConfig() *Config {
	return &Config{
		Genome: GenomeConfig{
			ActivationDefault: DefaultActivation,
		},
		Evaluation: EvaluationConfig{
			TimeSteps:           1,
			BiasValue:           1.0,
			ResetBetweenSamples: true,
		},
	}
}

// LoadConfig loads configuration parameters from an INI file.
func LoadConfig(filePath string) (*Config, error) {
	config, err := loadConfigSource(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}
	return config, nil
}

// ParseConfig loads configuration parameters from INI data held in memory.
func ParseConfig(data []byte) (*Config, error) {
	return loadConfigSource(data)
}

func loadConfigSource(source interface{}) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true, // Allow # comments starting with # or ;
		UnescapeValueCommentSymbols: true, // If # or ; appear in value, treat as value
	}, source)
	if err != nil {
		return nil, err
	}

	// Keys missing from the file keep these values.
	config := NewDefaultConfig()

	if err := cfg.Section("DefaultGenome").MapTo(&config.Genome); err != nil {
		return nil, fmt.Errorf("failed to map [DefaultGenome] section: %w", err)
	}
	if err := cfg.Section("Evaluation").MapTo(&config.Evaluation); err != nil {
		return nil, fmt.Errorf("failed to map [Evaluation] section: %w", err)
	}

	config.Genome.ActivationDefault = cleanIniString(config.Genome.ActivationDefault)
	if config.Genome.ActivationDefault == "" {
		config.Genome.ActivationDefault = DefaultActivation
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Genome.NumInputs <= 0 {
		return fmt.Errorf("config error: num_inputs must be positive")
	}
	if c.Genome.NumOutputs <= 0 {
		return fmt.Errorf("config error: num_outputs must be positive")
	}
	if _, err := GetActivation(c.Genome.ActivationDefault); err != nil {
		return fmt.Errorf("config error: activation_default: %w", err)
	}
	if c.Evaluation.TimeSteps <= 0 {
		return fmt.Errorf("config error: time_steps must be positive")
	}
	return nil
}

// cleanIniString removes inline comments and trims whitespace from a string read from INI.
func cleanIniString(s string) string {
	if idx := strings.IndexAny(s, "#;"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
