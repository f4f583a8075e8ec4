package blocks

import (
	"encoding/json"
	"sync"
)

// DecodeFunc turns a raw JSON block into its typed form. It is called
// with the complete block object, including the blockKind discriminant.
type DecodeFunc func(data json.RawMessage) (Block, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]DecodeFunc{}
)

// Register adds a decoder for a block kind, replacing any previous one.
// Call it from an init function; the registry must not change while
// pages are being decoded or rendered.
func Register(kind string, decode DecodeFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[kind] = decode
}

// lookup returns the decoder for kind, if one is registered.
func lookup(kind string) (DecodeFunc, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := registry[kind]
	return fn, ok
}

func init() {
	Register(KindColumns, decodeColumns)
	Register(KindMedia, decodeMedia)
	Register(KindPromo, decodePromo)
}
