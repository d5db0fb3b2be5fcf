package cache

import (
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/cespare/xxhash/v2"
)

// canonical serializes with sorted map keys so equal values always yield
// identical bytes.
var canonical = sonic.Config{SortMapKeys: true}.Froze()

type keyPayload struct {
	Op   string `json:"op"`
	Args []any  `json:"args"`
}

// Key builds a deterministic fingerprint for an operation and its
// arguments. Values that cannot be serialized (channels, functions) fail
// the operation rather than producing a degenerate key.
func Key(op string, args ...any) (string, error) {
	data, err := canonical.Marshal(keyPayload{Op: op, Args: args})
	if err != nil {
		return "", fmt.Errorf("failed to build cache key for %s: %w", op, err)
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16), nil
}
