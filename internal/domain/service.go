package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ServiceKey is the canonical identifier of a service category:
// lowercase, accent-stripped, trimmed. The known categories get
// constants below; free-form names normalize into the same type, so
// unknown services flow through the system unchanged.
type ServiceKey string

const (
	ServiceVeterinary ServiceKey = "veterinaria"
	ServiceGrooming   ServiceKey = "bano"
)

// serviceFold decomposes to NFD, drops combining marks and recomposes,
// turning "baño" into "bano".
var serviceFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeService canonicalizes a free-form service name into a
// ServiceKey. It trims, lowercases and strips diacritic marks. It is
// total: any input yields a key, the empty input yields the empty key,
// and it never fails. If the transform cannot fold a mark the rune is
// kept as-is rather than surfacing an error.
func NormalizeService(raw string) ServiceKey {
	s := strings.ToLower(strings.TrimSpace(raw))
	folded, _, err := transform.String(serviceFold, s)
	if err != nil {
		return ServiceKey(s)
	}
	return ServiceKey(folded)
}

// Known reports whether the key is one of the recognized service
// categories.
func (k ServiceKey) Known() bool {
	return k == ServiceVeterinary || k == ServiceGrooming
}

// DisplayName returns the human-facing name of the service. Unknown
// keys display as themselves.
func (k ServiceKey) DisplayName() string {
	switch k {
	case ServiceVeterinary:
		return "Veterinaria"
	case ServiceGrooming:
		return "Estética/Baño"
	default:
		return string(k)
	}
}
