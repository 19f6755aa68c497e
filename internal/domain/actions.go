package domain

// ActionKind identifies one of the supported governance calls
type ActionKind string

const (
	ActionApplyMultiTargetPermissions ActionKind = "applyMultiTargetPermissions((uint8,address,address,address,bytes32)[])"
	ActionUpgradeTo                   ActionKind = "upgradeTo(address)"
	ActionUpgradeToAndCall            ActionKind = "upgradeToAndCall(address,bytes)"
	ActionCreateVersion               ActionKind = "createVersion(uint8,address,bytes,bytes)"
)

// AllActionKinds returns the supported kinds in a stable order
func AllActionKinds() []ActionKind {
	return []ActionKind{
		ActionApplyMultiTargetPermissions,
		ActionUpgradeTo,
		ActionUpgradeToAndCall,
		ActionCreateVersion,
	}
}

// ParseActionKind accepts either the full signature or the bare method name
// (e.g. "upgradeTo") and returns the matching kind.
func ParseActionKind(s string) (ActionKind, bool) {
	for _, kind := range AllActionKinds() {
		if string(kind) == s || kind.Method() == s {
			return kind, true
		}
	}
	return "", false
}

// Method returns the method name without its parameter list
func (k ActionKind) Method() string {
	for i, c := range k {
		if c == '(' {
			return string(k[:i])
		}
	}
	return string(k)
}

// DecodedEntry is one element produced by the external calldata decoder
type DecodedEntry struct {
	Decoded string `json:"decoded"`
}

// Action is a decoded governance call
type Action interface {
	Kind() ActionKind
}

// PermissionOperation is the operation of a single permission target
type PermissionOperation string

const (
	OperationGrant              PermissionOperation = "Grant"
	OperationRevoke             PermissionOperation = "Revoke"
	OperationGrantWithCondition PermissionOperation = "GrantWithCondition"
)

// ParsePermissionOperation maps the uint8 operation literal. Anything other
// than "0" or "1" is treated as a conditional grant.
func ParsePermissionOperation(s string) PermissionOperation {
	switch s {
	case "0":
		return OperationGrant
	case "1":
		return OperationRevoke
	default:
		return OperationGrantWithCondition
	}
}

// PermissionTarget is one row of an applyMultiTargetPermissions call
type PermissionTarget struct {
	Operation    PermissionOperation `json:"operation"`
	Where        string              `json:"where"`
	Who          string              `json:"who"`
	Condition    string              `json:"condition"`
	PermissionID string              `json:"permissionId"`
}

// PermissionTargets is the ordered list of targets of a single call.
// Order matches the call order.
type PermissionTargets []PermissionTarget

func (PermissionTargets) Kind() ActionKind { return ActionApplyMultiTargetPermissions }

// Upgrade is the decoded form of upgradeTo(address)
type Upgrade struct {
	Implementation string `json:"implementation"`
}

func (Upgrade) Kind() ActionKind { return ActionUpgradeTo }

// UpgradeAndCall is the decoded form of upgradeToAndCall(address,bytes)
type UpgradeAndCall struct {
	Implementation string `json:"implementation"`
	Data           string `json:"data"`
}

func (UpgradeAndCall) Kind() ActionKind { return ActionUpgradeToAndCall }

// CreateVersion is the decoded form of createVersion(uint8,address,bytes,bytes)
type CreateVersion struct {
	Release         string `json:"release"`
	PluginSetup     string `json:"pluginSetup"`
	BuildMetadata   string `json:"buildMetadata"`
	ReleaseMetadata string `json:"releaseMetadata"`
}

func (CreateVersion) Kind() ActionKind { return ActionCreateVersion }
