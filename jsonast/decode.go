package jsonast

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// decodeSingleKeyObject decodes the single-key-object encoding shared by
// Type, Place, Expression and Statement (spec §6.1): a JSON object with
// exactly one member, whose key is the constructor tag and whose value
// is the constructor's payload.
func decodeSingleKeyObject(data json.RawMessage) (key string, val json.RawMessage, err error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return "", nil, errors.Wrap(err, "expected a single-key object")
	}
	if len(m) != 1 {
		return "", nil, errors.Errorf("expected exactly one key, got %d", len(m))
	}
	for k, v := range m {
		key, val = k, v
	}
	return key, val, nil
}

func isJSONNull(data json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func isEmptyJSONArray(data json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("[]"))
}
