package domain

import "fmt"

// Batch is a decoded upgrade proposal. Position i holds the action decoded
// from the i-th entry of the input.
type Batch struct {
	Actions []Action
}

// Len returns the number of actions in the batch
func (b Batch) Len() int {
	return len(b.Actions)
}

// At returns the action at position i
func (b Batch) At(i int) (Action, error) {
	if i < 0 || i >= len(b.Actions) {
		return nil, fmt.Errorf("position %d out of range (batch has %d actions)", i, len(b.Actions))
	}
	return b.Actions[i], nil
}

// Permissions returns the permission targets at position i
func (b Batch) Permissions(i int) (PermissionTargets, error) {
	return actionAt[PermissionTargets](b, i)
}

// Upgrade returns the upgradeTo record at position i
func (b Batch) Upgrade(i int) (Upgrade, error) {
	return actionAt[Upgrade](b, i)
}

// UpgradeAndCall returns the upgradeToAndCall record at position i
func (b Batch) UpgradeAndCall(i int) (UpgradeAndCall, error) {
	return actionAt[UpgradeAndCall](b, i)
}

// CreateVersion returns the createVersion record at position i
func (b Batch) CreateVersion(i int) (CreateVersion, error) {
	return actionAt[CreateVersion](b, i)
}

// Positions returns the positions holding actions of the given kind
func (b Batch) Positions(kind ActionKind) []int {
	var positions []int
	for i, action := range b.Actions {
		if action.Kind() == kind {
			positions = append(positions, i)
		}
	}
	return positions
}

func actionAt[T Action](b Batch, i int) (T, error) {
	var zero T
	action, err := b.At(i)
	if err != nil {
		return zero, err
	}
	typed, ok := action.(T)
	if !ok {
		return zero, fmt.Errorf("position %d holds %s, not %s", i, action.Kind().Method(), zero.Kind().Method())
	}
	return typed, nil
}
