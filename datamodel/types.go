// Package datamodel defines the configuration structures parsed from the
// optional greeter YAML file.
package datamodel

// Config is the main configuration structure.
type Config struct {
	Greeting GreetingSettings `yaml:"greeting"`
	Logging  LoggingSettings  `yaml:"logging"`
}

// GreetingSettings controls how the CLI drives the greeting operation.
type GreetingSettings struct {
	Repeat int `yaml:"repeat"` // Times the greeting is issued per run; 0 means default
}

// LoggingSettings controls the ambient logger.
type LoggingSettings struct {
	Verbosity *int `yaml:"verbosity,omitempty"` // 0=errors only, 1=warnings, 2=info, 3=debug
}
