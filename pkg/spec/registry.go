package spec

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// cacheSize bounds the composite-definition cache: at most 128 fields
// times a handful of versions times the closed network set is a few
// thousand entries, so a modest LRU never evicts a combination a
// well-behaved caller actually cycles through, while still bounding
// memory for a caller that synthesizes unbounded version/network pairs.
const cacheSize = 4096

// Registry resolves the effective FieldDefinition for a field number by
// overlaying the base ISO8583:1987 schema with a version overlay and a
// network overlay, later overlays winning per field. Lookups are O(1)
// (a handful of map reads) and the composite result is cached per
// (field, version, network) on first use.
//
// A Registry holds no mutable schema state beyond its cache and is safe
// for concurrent use by multiple parsers, builders, and validators.
type Registry struct {
	cache *lru.Cache
}

// NewRegistry constructs a Registry with its composite-definition cache
// ready to use.
func NewRegistry() *Registry {
	cache, err := lru.New(cacheSize)
	if err != nil {
		// lru.New only errors for a non-positive size, which cacheSize
		// never is; a panic here would indicate a programming error.
		panic(fmt.Sprintf("spec: failed to construct registry cache: %v", err))
	}

	return &Registry{cache: cache}
}

type cacheKey struct {
	field   int
	version Version
	network Network
}

// DefinitionOf returns the effective FieldDefinition for fieldNumber
// under version and network, composing base ⊕ version-overlay ⊕
// network-overlay (later overlays win per field). The second return
// value is false if no schema at any layer defines the field.
func (r *Registry) DefinitionOf(fieldNumber int, version Version, network Network) (FieldDefinition, bool) {
	key := cacheKey{field: fieldNumber, version: version, network: network}

	if cached, ok := r.cache.Get(key); ok {
		def, ok := cached.(FieldDefinition)

		return def, ok
	}

	def, ok := r.resolve(fieldNumber, version, network)
	if ok {
		r.cache.Add(key, def)
	}

	return def, ok
}

func (r *Registry) resolve(fieldNumber int, version Version, network Network) (FieldDefinition, bool) {
	def, found := baseFields[fieldNumber]

	if overlay, ok := versionOverlays[version]; ok {
		if v, ok := overlay[fieldNumber]; ok {
			def = v
			found = true
		}
	}

	if overlay, ok := networkOverlays[network]; ok {
		if v, ok := overlay[fieldNumber]; ok {
			def = v
			found = true
		}
	}

	if found && def.Padding == PaddingNone && def.PadChar == 0 && def.DataType != DataTypeBinary {
		def.Padding, def.PadChar = DefaultPadding(def.DataType)
	}

	return def, found
}

// RequiredFields returns the required-field set for network, or nil if
// the network is unknown.
func (r *Registry) RequiredFields(network Network) []int {
	return RequiredFields(network)
}

// DetectNetwork runs prefix-based network detection on a PAN.
func (r *Registry) DetectNetwork(pan string) Network {
	return DetectNetwork(pan)
}
