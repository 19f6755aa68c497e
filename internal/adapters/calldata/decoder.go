package calldata

import (
	"strings"

	"github.com/trebuchet-org/osx-upgrade/internal/domain"
)

// Decoder turns one decoded entry of a single call shape into a typed record
type Decoder interface {
	Kind() domain.ActionKind
	Header() string
	Decode(data string) (domain.Action, error)
}

// splitParams strips the signature header and splits the parameters, one per line
func splitParams(kind domain.ActionKind, header, data string, count int) ([]string, error) {
	if !strings.HasPrefix(data, header) {
		return nil, domain.NewFormatError(kind, "invalid signature")
	}

	params := strings.Split(strings.TrimPrefix(data, header), "\n")
	if len(params) != count {
		return nil, domain.NewFormatError(kind, "invalid param count: got %d, expected %d", len(params), count)
	}
	return params, nil
}

// PermissionsDecoder decodes applyMultiTargetPermissions((uint8,address,address,address,bytes32)[])
type PermissionsDecoder struct {
	header string
}

// NewPermissionsDecoder creates a decoder for the given header
func NewPermissionsDecoder(header string) *PermissionsDecoder {
	return &PermissionsDecoder{header: header}
}

func (d *PermissionsDecoder) Kind() domain.ActionKind { return domain.ActionApplyMultiTargetPermissions }
func (d *PermissionsDecoder) Header() string          { return d.header }

func (d *PermissionsDecoder) Decode(data string) (domain.Action, error) {
	return d.DecodePermissions(data)
}

// DecodePermissions returns the permission targets in call order
func (d *PermissionsDecoder) DecodePermissions(data string) (domain.PermissionTargets, error) {
	params, err := splitParams(d.Kind(), d.header, data, 1)
	if err != nil {
		return nil, err
	}

	list := params[0]
	if len(list) < 4 || !strings.HasPrefix(list, "[(") || !strings.HasSuffix(list, ")]") {
		return nil, domain.NewFormatError(d.Kind(), "expected a list of tuples, got %q", list)
	}

	// [(a, b, c, d, e), (a, b, c, d, e)]
	tuples := strings.Split(list[2:len(list)-2], "), (")
	result := make(domain.PermissionTargets, 0, len(tuples))
	for i, tuple := range tuples {
		tuple = strings.TrimSuffix(strings.TrimPrefix(tuple, "("), ")")
		fields := strings.Split(tuple, ", ")
		if len(fields) != 5 {
			return nil, domain.NewFormatError(d.Kind(), "invalid item count in target %d: got %d, expected 5", i, len(fields))
		}

		result = append(result, domain.PermissionTarget{
			Operation:    domain.ParsePermissionOperation(fields[0]),
			Where:        fields[1],
			Who:          fields[2],
			Condition:    fields[3],
			PermissionID: fields[4],
		})
	}
	return result, nil
}

// UpgradeDecoder decodes upgradeTo(address)
type UpgradeDecoder struct {
	header string
}

// NewUpgradeDecoder creates a decoder for the given header
func NewUpgradeDecoder(header string) *UpgradeDecoder {
	return &UpgradeDecoder{header: header}
}

func (d *UpgradeDecoder) Kind() domain.ActionKind { return domain.ActionUpgradeTo }
func (d *UpgradeDecoder) Header() string          { return d.header }

func (d *UpgradeDecoder) Decode(data string) (domain.Action, error) {
	return d.DecodeUpgrade(data)
}

// DecodeUpgrade returns the new implementation
func (d *UpgradeDecoder) DecodeUpgrade(data string) (domain.Upgrade, error) {
	params, err := splitParams(d.Kind(), d.header, data, 1)
	if err != nil {
		return domain.Upgrade{}, err
	}
	return domain.Upgrade{Implementation: params[0]}, nil
}

// UpgradeAndCallDecoder decodes upgradeToAndCall(address,bytes)
type UpgradeAndCallDecoder struct {
	header string
}

// NewUpgradeAndCallDecoder creates a decoder for the given header
func NewUpgradeAndCallDecoder(header string) *UpgradeAndCallDecoder {
	return &UpgradeAndCallDecoder{header: header}
}

func (d *UpgradeAndCallDecoder) Kind() domain.ActionKind { return domain.ActionUpgradeToAndCall }
func (d *UpgradeAndCallDecoder) Header() string          { return d.header }

func (d *UpgradeAndCallDecoder) Decode(data string) (domain.Action, error) {
	return d.DecodeUpgradeAndCall(data)
}

// DecodeUpgradeAndCall returns the new implementation and the raw call payload
func (d *UpgradeAndCallDecoder) DecodeUpgradeAndCall(data string) (domain.UpgradeAndCall, error) {
	params, err := splitParams(d.Kind(), d.header, data, 2)
	if err != nil {
		return domain.UpgradeAndCall{}, err
	}
	return domain.UpgradeAndCall{
		Implementation: params[0],
		Data:           params[1],
	}, nil
}

// CreateVersionDecoder decodes createVersion(uint8,address,bytes,bytes)
type CreateVersionDecoder struct {
	header string
}

// NewCreateVersionDecoder creates a decoder for the given header
func NewCreateVersionDecoder(header string) *CreateVersionDecoder {
	return &CreateVersionDecoder{header: header}
}

func (d *CreateVersionDecoder) Kind() domain.ActionKind { return domain.ActionCreateVersion }
func (d *CreateVersionDecoder) Header() string          { return d.header }

func (d *CreateVersionDecoder) Decode(data string) (domain.Action, error) {
	return d.DecodeCreateVersion(data)
}

// DecodeCreateVersion returns the version record with both metadata links decoded to text
func (d *CreateVersionDecoder) DecodeCreateVersion(data string) (domain.CreateVersion, error) {
	params, err := splitParams(d.Kind(), d.header, data, 4)
	if err != nil {
		return domain.CreateVersion{}, err
	}

	buildMetadata, err := HexToString(params[2])
	if err != nil {
		return domain.CreateVersion{}, withKind(err, d.Kind(), "build metadata")
	}
	releaseMetadata, err := HexToString(params[3])
	if err != nil {
		return domain.CreateVersion{}, withKind(err, d.Kind(), "release metadata")
	}

	return domain.CreateVersion{
		Release:         params[0],
		PluginSetup:     params[1],
		BuildMetadata:   buildMetadata,
		ReleaseMetadata: releaseMetadata,
	}, nil
}

// withKind attaches the call kind and field to a hex decoding error
func withKind(err error, kind domain.ActionKind, field string) error {
	if fe, ok := err.(*domain.FormatError); ok {
		return &domain.FormatError{Kind: kind, Message: field + ": " + fe.Message, Err: fe.Err}
	}
	return err
}
