package abi

import (
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

// SelectorIndex maps function selectors to the supported calls
type SelectorIndex struct {
	selectors map[[4]byte]domain.ActionKind
}

// NewSelectorIndex indexes the selector of every call the decoder supports
func NewSelectorIndex(decoder usecase.ActionDecoder) *SelectorIndex {
	index := &SelectorIndex{selectors: make(map[[4]byte]domain.ActionKind)}
	for _, kind := range decoder.Kinds() {
		index.selectors[Selector(kind)] = kind
	}
	return index
}

// Selector returns the first 4 bytes of the keccak256 hash of the signature
func Selector(kind domain.ActionKind) [4]byte {
	var sel [4]byte
	copy(sel[:], crypto.Keccak256([]byte(kind))[:4])
	return sel
}

// Lookup returns the call whose selector prefixes data
func (s *SelectorIndex) Lookup(data []byte) (domain.ActionKind, bool) {
	if len(data) < 4 {
		return "", false
	}
	var sel [4]byte
	copy(sel[:], data[:4])
	kind, ok := s.selectors[sel]
	return kind, ok
}

// Ensure SelectorIndex implements SelectorIndex
var _ usecase.SelectorIndex = (*SelectorIndex)(nil)
