package config

import (
	"fmt"
	"strings"

	"github.com/trebuchet-org/osx-upgrade/internal/domain"
)

// DefaultHeaderFormat is the line the calldata decoder prints before the
// parameters of a call. It is formatted with the function signature.
const DefaultHeaderFormat = "1) \"%s\"\n"

// Signatures holds the literal header that introduces each supported call
type Signatures struct {
	Headers map[domain.ActionKind]string
}

// NewSignatures builds the headers for every supported call from a format
// string containing a single %s verb.
func NewSignatures(headerFormat string) Signatures {
	headers := make(map[domain.ActionKind]string, len(domain.AllActionKinds()))
	for _, kind := range domain.AllActionKinds() {
		headers[kind] = fmt.Sprintf(headerFormat, kind)
	}
	return Signatures{Headers: headers}
}

// ValidateHeaderFormat accepts formats with a single %s and no other verb.
// Escaped percent signs are allowed.
func ValidateHeaderFormat(headerFormat string) error {
	verbs := strings.ReplaceAll(headerFormat, "%%", "")
	if strings.Count(verbs, "%") != 1 || strings.Count(verbs, "%s") != 1 {
		return fmt.Errorf("header format %q must contain exactly one %%s and no other verbs", headerFormat)
	}
	return nil
}

// DefaultSignatures returns the headers printed by the calldata decoder
func DefaultSignatures() Signatures {
	return NewSignatures(DefaultHeaderFormat)
}

// Header returns the header of the given call
func (s Signatures) Header(kind domain.ActionKind) string {
	return s.Headers[kind]
}
