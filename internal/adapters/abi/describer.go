package abi

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

// UpgradeCallsABI lists the calls made through upgradeToAndCall during an OSx upgrade
const UpgradeCallsABI = `[
	{
		"type": "function",
		"name": "initializeFrom",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "_previousProtocolVersion", "type": "uint8[3]"},
			{"name": "_initData", "type": "bytes"}
		],
		"outputs": []
	}
]`

// CalldataDescriber decodes call payloads of known methods
type CalldataDescriber struct {
	abi *abi.ABI
}

// NewCalldataDescriber creates a describer for the upgrade calls ABI
func NewCalldataDescriber() (*CalldataDescriber, error) {
	return NewCalldataDescriberFromJSON(UpgradeCallsABI)
}

// NewCalldataDescriberFromJSON creates a describer for the given ABI
func NewCalldataDescriberFromJSON(abiJSON string) (*CalldataDescriber, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}
	return &CalldataDescriber{abi: &parsed}, nil
}

// Describe decodes the payload. Payloads of unknown methods only carry the
// selector.
func (d *CalldataDescriber) Describe(data string) (*domain.CallDescription, error) {
	if !strings.HasPrefix(data, "0x") {
		data = "0x" + data
	}
	raw, err := hexutil.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("invalid calldata: %w", err)
	}
	if len(raw) < 4 {
		return nil, fmt.Errorf("calldata too short: %d bytes", len(raw))
	}

	desc := &domain.CallDescription{Selector: hexutil.Encode(raw[:4])}

	method, err := d.abi.MethodById(raw[:4])
	if err != nil {
		return desc, nil
	}

	values, err := method.Inputs.Unpack(raw[4:])
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s arguments: %w", method.Name, err)
	}

	desc.Method = method.Sig
	for i, input := range method.Inputs {
		value := values[i]
		if b, ok := value.([]byte); ok {
			value = hexutil.Bytes(b)
		}
		desc.Args = append(desc.Args, domain.CallArgument{
			Name:  input.Name,
			Type:  input.Type.String(),
			Value: value,
		})
	}
	return desc, nil
}

// Ensure CalldataDescriber implements CalldataDescriber
var _ usecase.CalldataDescriber = (*CalldataDescriber)(nil)
