// JSON payload codec for the session store. All structured payloads
// (breadcrumb payloads, interaction input/transfers/output, snapshot token
// lists) cross the row boundary as self-describing JSON text.
package sqlite

import (
	"encoding/json"
	"fmt"
)

// serializeItem encodes a payload as JSON text. A nil payload serializes to
// the empty-object sentinel, never to a null encoding, so that reading an
// absent payload round-trips to an empty mapping instead of an error.
func serializeItem(item any) (string, error) {
	if item == nil {
		return "{}", nil
	}
	data, err := json.Marshal(item)
	if err != nil {
		return "", fmt.Errorf("serializing payload: %w", err)
	}
	return string(data), nil
}

// deserializeItem decodes JSON text into the equivalent structured value.
func deserializeItem(text string) (any, error) {
	if text == "" {
		return map[string]any{}, nil
	}
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, fmt.Errorf("deserializing payload: %w", err)
	}
	return value, nil
}

// deserializeInto decodes JSON text into a caller-supplied shape. Used where
// the store knows the schema of a column, such as snapshot token lists.
func deserializeInto(text string, dest any) error {
	if text == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(text), dest); err != nil {
		return fmt.Errorf("deserializing payload: %w", err)
	}
	return nil
}
