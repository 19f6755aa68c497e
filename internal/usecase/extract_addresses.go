package usecase

import (
	"fmt"

	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
)

// AddressExtractor labels the contract addresses referenced by a validated batch
type AddressExtractor struct {
	roles []config.RoleAssignment
}

// NewAddressExtractor creates an extractor for the given role table
func NewAddressExtractor(roles []config.RoleAssignment) *AddressExtractor {
	return &AddressExtractor{roles: roles}
}

// Extract applies the roles in order. A later role at the same address
// replaces the earlier label in that module. Errors only occur when the role
// table does not fit the batch, which a validated plan rules out.
func (e *AddressExtractor) Extract(batch domain.Batch) (domain.ModuleAddresses, error) {
	result := domain.NewModuleAddresses()
	for _, role := range e.roles {
		address, err := readField(batch, role)
		if err != nil {
			return nil, fmt.Errorf("role %s: %w", role.Label, err)
		}
		result.Set(role.Module, address, role.Label)
	}
	return result, nil
}

func readField(batch domain.Batch, role config.RoleAssignment) (string, error) {
	action, err := batch.At(role.Position)
	if err != nil {
		return "", err
	}

	switch record := action.(type) {
	case domain.PermissionTargets:
		if role.Target >= len(record) {
			return "", fmt.Errorf("action %d has no target %d", role.Position+1, role.Target+1)
		}
		switch role.Field {
		case config.FieldWho:
			return record[role.Target].Who, nil
		case config.FieldWhere:
			return record[role.Target].Where, nil
		}
	case domain.Upgrade:
		if role.Field == config.FieldImplementation {
			return record.Implementation, nil
		}
	case domain.UpgradeAndCall:
		if role.Field == config.FieldImplementation {
			return record.Implementation, nil
		}
	case domain.CreateVersion:
		if role.Field == config.FieldPluginSetup {
			return record.PluginSetup, nil
		}
	}
	return "", fmt.Errorf("action %d (%s) has no field %s", role.Position+1, action.Kind().Method(), role.Field)
}
