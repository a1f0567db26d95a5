// ABOUTME: JSON marshal helpers for blob serialization.
package store

import "encoding/json"

func unmarshalJSON[T any](data []byte) (*T, error) {
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func marshalJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}
