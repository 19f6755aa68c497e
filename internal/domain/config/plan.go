package config

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/trebuchet-org/osx-upgrade/internal/domain"
)

// ExpectedInitializeFromCalldata is the upgradeToAndCall payload of the
// management DAO upgrade: initializeFrom([1,3,0], "")
const ExpectedInitializeFromCalldata = "0x42d8e99e" +
	"0000000000000000000000000000000000000000000000000000000000000001" +
	"0000000000000000000000000000000000000000000000000000000000000003" +
	"0000000000000000000000000000000000000000000000000000000000000000" +
	"0000000000000000000000000000000000000000000000000000000000000080" +
	"0000000000000000000000000000000000000000000000000000000000000000"

// RoleField names the record field an address is read from
type RoleField string

const (
	FieldWho            RoleField = "who"
	FieldWhere          RoleField = "where"
	FieldImplementation RoleField = "implementation"
	FieldPluginSetup    RoleField = "pluginSetup"
)

// fieldKinds lists the action kinds each field can be read from
var fieldKinds = map[RoleField]domain.ActionKind{
	FieldWho:            domain.ActionApplyMultiTargetPermissions,
	FieldWhere:          domain.ActionApplyMultiTargetPermissions,
	FieldPluginSetup:    domain.ActionCreateVersion,
	FieldImplementation: "", // upgradeTo and upgradeToAndCall
}

// RoleAssignment labels the address found at a batch position
type RoleAssignment struct {
	Position int           `toml:"position" yaml:"position"`
	Target   int           `toml:"target" yaml:"target"` // permission target index
	Field    RoleField     `toml:"field" yaml:"field"`
	Module   domain.Module `toml:"module" yaml:"module"`
	Label    string        `toml:"label" yaml:"label"`
}

// ValidationRules are the values a batch must match
type ValidationRules struct {
	GrantPosition     int    `toml:"grant_position" yaml:"grant_position"`
	MigrationPosition int    `toml:"migration_position" yaml:"migration_position"`
	Calldata          string `toml:"calldata" yaml:"calldata"`
	Release           string `toml:"release" yaml:"release"`
	MetadataPrefix    string `toml:"metadata_prefix" yaml:"metadata_prefix"`
}

// UpgradePlan describes one deployment variant of the upgrade proposal
type UpgradePlan struct {
	Name        string              `toml:"-" yaml:"-"`
	Description string              `toml:"description" yaml:"description"`
	Schema      []domain.ActionKind `toml:"schema" yaml:"schema"`
	Rules       ValidationRules     `toml:"rules" yaml:"rules"`
	Roles       []RoleAssignment    `toml:"roles" yaml:"roles"`
	Templates   map[string]string   `toml:"templates" yaml:"templates"`
}

// ActionCount returns the number of actions the plan expects
func (p UpgradePlan) ActionCount() int {
	return len(p.Schema)
}

// Template returns the template file for a module
func (p UpgradePlan) Template(module domain.Module) string {
	return p.Templates[string(module)]
}

// Normalize resolves short method names in the schema (e.g. "upgradeTo")
// into full signatures and fills unset rule defaults.
func (p *UpgradePlan) Normalize() error {
	for i, raw := range p.Schema {
		kind, ok := domain.ParseActionKind(string(raw))
		if !ok {
			return fmt.Errorf("plan %s: unknown action %q at position %d", p.Name, raw, i)
		}
		p.Schema[i] = kind
	}
	if p.Rules.Release == "" {
		p.Rules.Release = "1"
	}
	if p.Rules.MetadataPrefix == "" {
		p.Rules.MetadataPrefix = "ipfs://"
	}
	return nil
}

// Validate checks that the rules and roles fit the schema
func (p UpgradePlan) Validate() error {
	if len(p.Schema) == 0 {
		return fmt.Errorf("plan %s: empty schema", p.Name)
	}
	for _, pos := range []int{p.Rules.GrantPosition, p.Rules.MigrationPosition} {
		if pos < 0 || pos >= len(p.Schema) || p.Schema[pos] != domain.ActionApplyMultiTargetPermissions {
			return fmt.Errorf("plan %s: position %d is not an applyMultiTargetPermissions action", p.Name, pos)
		}
	}
	if p.Rules.Calldata == "" {
		return fmt.Errorf("plan %s: missing expected calldata", p.Name)
	}
	for i, role := range p.Roles {
		if role.Position < 0 || role.Position >= len(p.Schema) {
			return fmt.Errorf("plan %s: role %d: position %d out of range", p.Name, i, role.Position)
		}
		if _, ok := domain.ParseModule(string(role.Module)); !ok {
			return fmt.Errorf("plan %s: role %d: unknown module %q", p.Name, i, role.Module)
		}
		want, ok := fieldKinds[role.Field]
		if !ok {
			return fmt.Errorf("plan %s: role %d: unknown field %q", p.Name, i, role.Field)
		}
		kind := p.Schema[role.Position]
		if role.Field == FieldImplementation {
			if kind != domain.ActionUpgradeTo && kind != domain.ActionUpgradeToAndCall {
				return fmt.Errorf("plan %s: role %d: %s has no implementation", p.Name, i, kind.Method())
			}
		} else if kind != want {
			return fmt.Errorf("plan %s: role %d: %s has no %s", p.Name, i, kind.Method(), role.Field)
		}
		if role.Target < 0 {
			return fmt.Errorf("plan %s: role %d: negative target index", p.Name, i)
		}
	}
	for _, module := range domain.AllModules() {
		if p.Template(module) == "" {
			return fmt.Errorf("plan %s: no template for module %s", p.Name, module)
		}
	}
	return nil
}

// DefaultTemplates returns the template file names of every module
func DefaultTemplates() map[string]string {
	return map[string]string{
		string(domain.ModuleOSx):         "template-osx.json",
		string(domain.ModuleTokenVoting): "template-token-voting.json",
		string(domain.ModuleMultisig):    "template-multisig.json",
		string(domain.ModuleAdmin):       "template-admin.json",
	}
}

func coreRoles() []RoleAssignment {
	return []RoleAssignment{
		// REGISTER_DAO_PERMISSION on the DAORegistry granted to the new DAOFactory
		{Position: 0, Target: 0, Field: FieldWho, Module: domain.ModuleOSx, Label: "DAOFactory"},
		// REGISTER_PLUGIN_REPO_PERMISSION moved to the new PluginRepoFactory
		{Position: 1, Target: 1, Field: FieldWho, Module: domain.ModuleOSx, Label: "PluginRepoFactory"},
		{Position: 2, Field: FieldImplementation, Module: domain.ModuleOSx, Label: "DAORegistry"},
		{Position: 3, Field: FieldImplementation, Module: domain.ModuleOSx, Label: "PluginRepoRegistry"},
		// management DAO
		{Position: 4, Field: FieldImplementation, Module: domain.ModuleOSx, Label: "DAO"},
	}
}

func coreSchema() []domain.ActionKind {
	return []domain.ActionKind{
		domain.ActionApplyMultiTargetPermissions,
		domain.ActionApplyMultiTargetPermissions,
		domain.ActionUpgradeTo,
		domain.ActionUpgradeTo,
		domain.ActionUpgradeToAndCall,
	}
}

func defaultRules() ValidationRules {
	return ValidationRules{
		GrantPosition:     0,
		MigrationPosition: 1,
		Calldata:          ExpectedInitializeFromCalldata,
		Release:           "1",
		MetadataPrefix:    "ipfs://",
	}
}

// DefaultPlan is the upgrade that also publishes the admin plugin
func DefaultPlan() UpgradePlan {
	schema := append(coreSchema(),
		domain.ActionCreateVersion,
		domain.ActionCreateVersion,
		domain.ActionCreateVersion,
	)
	roles := append(coreRoles(),
		RoleAssignment{Position: 5, Field: FieldPluginSetup, Module: domain.ModuleAdmin, Label: "AdminSetup"},
		RoleAssignment{Position: 6, Field: FieldPluginSetup, Module: domain.ModuleMultisig, Label: "MultisigSetup"},
		RoleAssignment{Position: 7, Field: FieldPluginSetup, Module: domain.ModuleTokenVoting, Label: "TokenVotingSetup"},
	)
	return UpgradePlan{
		Name:        "default",
		Description: "OSx framework upgrade publishing admin, multisig and token voting",
		Schema:      schema,
		Rules:       defaultRules(),
		Roles:       roles,
		Templates:   DefaultTemplates(),
	}
}

// ZkSyncPlan is the upgrade without the admin plugin publish, which is not
// present on ZkSync.
func ZkSyncPlan() UpgradePlan {
	schema := append(coreSchema(),
		domain.ActionCreateVersion,
		domain.ActionCreateVersion,
	)
	roles := append(coreRoles(),
		RoleAssignment{Position: 5, Field: FieldPluginSetup, Module: domain.ModuleMultisig, Label: "MultisigSetup"},
		RoleAssignment{Position: 6, Field: FieldPluginSetup, Module: domain.ModuleTokenVoting, Label: "TokenVotingSetup"},
	)
	return UpgradePlan{
		Name:        "zksync",
		Description: "OSx framework upgrade without the admin plugin (ZkSync)",
		Schema:      schema,
		Rules:       defaultRules(),
		Roles:       roles,
		Templates:   DefaultTemplates(),
	}
}

// Plans is a catalog of upgrade plans by name
type Plans map[string]UpgradePlan

// DefaultPlans returns the built-in plans
func DefaultPlans() Plans {
	return Plans{
		"default": DefaultPlan(),
		"zksync":  ZkSyncPlan(),
	}
}

// Names returns the plan names sorted alphabetically
func (p Plans) Names() []string {
	names := lo.Keys(p)
	sort.Strings(names)
	return names
}

// Get returns the named plan
func (p Plans) Get(name string) (UpgradePlan, error) {
	plan, ok := p[name]
	if !ok {
		return UpgradePlan{}, fmt.Errorf("unknown upgrade plan %q (available: %v)", name, p.Names())
	}
	return plan, nil
}

// ByActionCount returns the plans expecting exactly n actions
func (p Plans) ByActionCount(n int) []UpgradePlan {
	return lo.FilterMap(p.Names(), func(name string, _ int) (UpgradePlan, bool) {
		return p[name], p[name].ActionCount() == n
	})
}
