package calldata

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/osx-upgrade/internal/domain"
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
)

// Registry holds the decoder of every supported call, keyed by its header.
// It serves both positional decoding and header sniffing.
type Registry struct {
	decoders []Decoder
	byKind   map[domain.ActionKind]Decoder
}

// NewRegistry creates the registry for the given signature headers
func NewRegistry(sigs config.Signatures) *Registry {
	decoders := []Decoder{
		NewPermissionsDecoder(sigs.Header(domain.ActionApplyMultiTargetPermissions)),
		NewUpgradeDecoder(sigs.Header(domain.ActionUpgradeTo)),
		NewUpgradeAndCallDecoder(sigs.Header(domain.ActionUpgradeToAndCall)),
		NewCreateVersionDecoder(sigs.Header(domain.ActionCreateVersion)),
	}
	return &Registry{
		decoders: decoders,
		byKind:   lo.KeyBy(decoders, func(d Decoder) domain.ActionKind { return d.Kind() }),
	}
}

// Kinds returns the supported call kinds
func (r *Registry) Kinds() []domain.ActionKind {
	return lo.Map(r.decoders, func(d Decoder, _ int) domain.ActionKind { return d.Kind() })
}

// Decode decodes an entry that is expected to be of the given kind
func (r *Registry) Decode(kind domain.ActionKind, data string) (domain.Action, error) {
	decoder, ok := r.byKind[kind]
	if !ok {
		return nil, fmt.Errorf("no decoder registered for %s", kind)
	}
	return decoder.Decode(data)
}

// Match returns the decoder whose header starts the entry
func (r *Registry) Match(data string) (Decoder, bool) {
	return lo.Find(r.decoders, func(d Decoder) bool {
		return d.Header() != "" && strings.HasPrefix(data, d.Header())
	})
}

// Sniff decodes an entry using the decoder matching its header
func (r *Registry) Sniff(data string) (domain.Action, error) {
	decoder, ok := r.Match(data)
	if !ok {
		return nil, domain.NewFormatError("", "unrecognized action details: %s", data)
	}
	return decoder.Decode(data)
}
