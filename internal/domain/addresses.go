package domain

// Module is a deployment module that receives its own configuration
type Module string

const (
	ModuleOSx         Module = "osx"
	ModuleTokenVoting Module = "tokenVoting"
	ModuleMultisig    Module = "multisig"
	ModuleAdmin       Module = "admin"
)

// AllModules returns the modules in output order
func AllModules() []Module {
	return []Module{ModuleOSx, ModuleTokenVoting, ModuleMultisig, ModuleAdmin}
}

// ParseModule parses a module name
func ParseModule(s string) (Module, bool) {
	for _, m := range AllModules() {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// AddressRoleMap maps a contract address to its role label.
// Keys are compared case-sensitively.
type AddressRoleMap map[string]string

// ModuleAddresses holds one AddressRoleMap per module
type ModuleAddresses map[Module]AddressRoleMap

// NewModuleAddresses returns a ModuleAddresses with an empty map for every module
func NewModuleAddresses() ModuleAddresses {
	result := make(ModuleAddresses, len(AllModules()))
	for _, m := range AllModules() {
		result[m] = AddressRoleMap{}
	}
	return result
}

// Set records a role for an address, replacing any previous label
func (m ModuleAddresses) Set(module Module, address, role string) {
	if m[module] == nil {
		m[module] = AddressRoleMap{}
	}
	m[module][address] = role
}

// UpgradeConfig is the generated deployment configuration, one template
// object per module. Field order is the output order.
type UpgradeConfig struct {
	OSx         map[string]any `json:"osx"`
	TokenVoting map[string]any `json:"tokenVoting"`
	Multisig    map[string]any `json:"multisig"`
	Admin       map[string]any `json:"admin"`
}

// Set stores the template for a module
func (c *UpgradeConfig) Set(module Module, template map[string]any) {
	switch module {
	case ModuleOSx:
		c.OSx = template
	case ModuleTokenVoting:
		c.TokenVoting = template
	case ModuleMultisig:
		c.Multisig = template
	case ModuleAdmin:
		c.Admin = template
	}
}

// Get returns the template for a module
func (c *UpgradeConfig) Get(module Module) map[string]any {
	switch module {
	case ModuleOSx:
		return c.OSx
	case ModuleTokenVoting:
		return c.TokenVoting
	case ModuleMultisig:
		return c.Multisig
	case ModuleAdmin:
		return c.Admin
	}
	return nil
}
