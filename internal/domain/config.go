package domain

// LocalConfig holds the project defaults stored in .osx-upgrade/config.json
type LocalConfig struct {
	Network   string `json:"network,omitempty"`
	Variant   string `json:"variant,omitempty"`
	Templates string `json:"templates,omitempty"`
	Plan      string `json:"plan,omitempty"`
}

// ConfigKey represents a configuration key
type ConfigKey string

const (
	ConfigKeyNetwork   ConfigKey = "network"
	ConfigKeyVariant   ConfigKey = "variant"
	ConfigKeyTemplates ConfigKey = "templates"
	ConfigKeyPlan      ConfigKey = "plan"
)

// ValidConfigKeys returns all valid configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeyNetwork,
		ConfigKeyVariant,
		ConfigKeyTemplates,
		ConfigKeyPlan,
	}
}

// IsValidConfigKey checks if a key is valid
func IsValidConfigKey(key string) bool {
	for _, validKey := range ValidConfigKeys() {
		if string(validKey) == key {
			return true
		}
	}
	return false
}

// Get returns the value stored under key
func (c *LocalConfig) Get(key ConfigKey) string {
	switch key {
	case ConfigKeyNetwork:
		return c.Network
	case ConfigKeyVariant:
		return c.Variant
	case ConfigKeyTemplates:
		return c.Templates
	case ConfigKeyPlan:
		return c.Plan
	}
	return ""
}

// Set stores value under key. An empty value clears it.
func (c *LocalConfig) Set(key ConfigKey, value string) {
	switch key {
	case ConfigKeyNetwork:
		c.Network = value
	case ConfigKeyVariant:
		c.Variant = value
	case ConfigKeyTemplates:
		c.Templates = value
	case ConfigKeyPlan:
		c.Plan = value
	}
}
