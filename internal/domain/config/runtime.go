package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	WorkDir string
	DataDir string

	// Upgrade settings
	Network     string // substituted for <NETWORK> in templates
	Variant     string // plan name, empty to infer from the input
	PlanFile    string
	TemplateDir string

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Resolved configurations
	Plans      Plans
	Signatures Signatures
}
