package usecase

import (
	"fmt"
	"strings"

	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
)

// BatchValidator checks a decoded batch against the rules of an upgrade plan.
// It stops at the first broken rule and never modifies the batch.
type BatchValidator struct {
	rules config.ValidationRules
}

// NewBatchValidator creates a validator for the given rules
func NewBatchValidator(rules config.ValidationRules) *BatchValidator {
	return &BatchValidator{rules: rules}
}

// Validate runs every rule in order
func (v *BatchValidator) Validate(batch domain.Batch) error {
	checks := []func(domain.Batch) error{
		v.checkGrant,
		v.checkMigration,
		v.checkCalldata,
		v.checkReleases,
		v.checkBuildMetadata,
		v.checkReleaseMetadata,
	}
	for _, check := range checks {
		if err := check(batch); err != nil {
			return err
		}
	}
	return nil
}

// checkGrant requires the grant action to start with a Grant
func (v *BatchValidator) checkGrant(batch domain.Batch) error {
	pos := v.rules.GrantPosition
	targets, err := batch.Permissions(pos)
	if err != nil {
		return err
	}
	return expectOperation(targets, pos, 0, domain.OperationGrant)
}

// checkMigration requires a Revoke followed by a Grant
func (v *BatchValidator) checkMigration(batch domain.Batch) error {
	pos := v.rules.MigrationPosition
	targets, err := batch.Permissions(pos)
	if err != nil {
		return err
	}
	if err := expectOperation(targets, pos, 0, domain.OperationRevoke); err != nil {
		return err
	}
	return expectOperation(targets, pos, 1, domain.OperationGrant)
}

func expectOperation(targets domain.PermissionTargets, pos, index int, want domain.PermissionOperation) error {
	label := fmt.Sprintf("%d.%d", pos+1, index+1)
	if index >= len(targets) {
		return &domain.ValidationError{
			Action: label,
			Rule:   "should " + strings.ToLower(string(want)),
			Value:  fmt.Sprintf("missing (action has %d targets)", len(targets)),
		}
	}
	if got := targets[index].Operation; got != want {
		return &domain.ValidationError{
			Action: label,
			Rule:   "should " + strings.ToLower(string(want)),
			Value:  string(got),
		}
	}
	return nil
}

func (v *BatchValidator) checkCalldata(batch domain.Batch) error {
	for _, pos := range batch.Positions(domain.ActionUpgradeToAndCall) {
		record, err := batch.UpgradeAndCall(pos)
		if err != nil {
			return err
		}
		if record.Data != v.rules.Calldata {
			return &domain.ValidationError{
				Action: fmt.Sprint(pos + 1),
				Rule:   "incorrect upgradeToAndCall calldata",
				Value:  record.Data,
			}
		}
	}
	return nil
}

func (v *BatchValidator) checkReleases(batch domain.Batch) error {
	return v.eachVersion(batch, func(pos int, record domain.CreateVersion) error {
		if record.Release != v.rules.Release {
			return &domain.ValidationError{
				Action: fmt.Sprint(pos + 1),
				Rule:   "incorrect release",
				Value:  record.Release,
			}
		}
		return nil
	})
}

func (v *BatchValidator) checkBuildMetadata(batch domain.Batch) error {
	return v.eachVersion(batch, func(pos int, record domain.CreateVersion) error {
		if !strings.HasPrefix(record.BuildMetadata, v.rules.MetadataPrefix) {
			return &domain.ValidationError{
				Action: fmt.Sprint(pos + 1),
				Rule:   "incorrect build metadata link",
				Value:  record.BuildMetadata,
			}
		}
		return nil
	})
}

func (v *BatchValidator) checkReleaseMetadata(batch domain.Batch) error {
	return v.eachVersion(batch, func(pos int, record domain.CreateVersion) error {
		if !strings.HasPrefix(record.ReleaseMetadata, v.rules.MetadataPrefix) {
			return &domain.ValidationError{
				Action: fmt.Sprint(pos + 1),
				Rule:   "incorrect release metadata link",
				Value:  record.ReleaseMetadata,
			}
		}
		return nil
	})
}

func (v *BatchValidator) eachVersion(batch domain.Batch, fn func(pos int, record domain.CreateVersion) error) error {
	for _, pos := range batch.Positions(domain.ActionCreateVersion) {
		record, err := batch.CreateVersion(pos)
		if err != nil {
			return err
		}
		if err := fn(pos, record); err != nil {
			return err
		}
	}
	return nil
}
