package proposal

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

// TupleParser parses the action list of a proposal as printed by cast,
// e.g. "[(0xabc…, 0, 0x3659cfe6…), (0xdef…, 0, 0x)]"
type TupleParser struct{}

// NewTupleParser creates a new TupleParser
func NewTupleParser() *TupleParser {
	return &TupleParser{}
}

// ParseActions parses every (to, value, data) tuple in order
func (p *TupleParser) ParseActions(input string) ([]domain.ProposalAction, error) {
	if len(input) < 4 || !strings.HasPrefix(input, "[(") || !strings.HasSuffix(input, ")]") {
		return nil, domain.NewFormatError("", "invalid proposal actions: expected a list of tuples, got %q", input)
	}

	tuples := strings.Split(input[2:len(input)-2], "), (")
	actions := make([]domain.ProposalAction, 0, len(tuples))
	for _, tuple := range tuples {
		values := strings.Split(tuple, ", ")
		if len(values) != 3 {
			return nil, domain.NewFormatError("", "invalid tuple contents: %s", tuple)
		}

		if !common.IsHexAddress(values[0]) {
			return nil, domain.NewFormatError("", "invalid action target %q", values[0])
		}
		value, ok := new(big.Int).SetString(values[1], 10)
		if !ok {
			return nil, domain.NewFormatError("", "invalid action value %q", values[1])
		}
		data, err := hexutil.Decode(values[2])
		if err != nil {
			return nil, &domain.FormatError{Message: "invalid action data " + values[2], Err: err}
		}

		actions = append(actions, domain.ProposalAction{
			To:       common.HexToAddress(values[0]),
			Value:    value,
			Data:     data,
			ToText:   values[0],
			DataText: values[2],
		})
	}
	return actions, nil
}

// Ensure TupleParser implements ProposalActionParser
var _ usecase.ProposalActionParser = (*TupleParser)(nil)
