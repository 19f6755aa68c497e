package domain

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ProposalAction is one raw action of a governance proposal. To and Data
// are the parsed values; ToText and DataText keep the text they came from
// so the output matches the input casing.
type ProposalAction struct {
	To    common.Address
	Value *big.Int
	Data  hexutil.Bytes

	ToText   string
	DataText string

	// Signature is set when the calldata selector matches a supported call
	Signature ActionKind
}

// MarshalJSON writes to and data as they appeared in the proposal
func (a ProposalAction) MarshalJSON() ([]byte, error) {
	to := a.ToText
	if to == "" {
		to = a.To.Hex()
	}
	data := a.DataText
	if data == "" {
		data = a.Data.String()
	}
	return json.Marshal(struct {
		To        string     `json:"to"`
		Value     *big.Int   `json:"value"`
		Data      string     `json:"data"`
		Signature ActionKind `json:"signature,omitempty"`
	}{
		To:        to,
		Value:     a.Value,
		Data:      data,
		Signature: a.Signature,
	})
}

// CallDescription is a human readable view of a call payload
type CallDescription struct {
	Selector string         `json:"selector"`
	Method   string         `json:"method,omitempty"`
	Args     []CallArgument `json:"args,omitempty"`
}

// CallArgument is one decoded argument of a call payload
type CallArgument struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}
