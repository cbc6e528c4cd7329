package database

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// EncodeMetadata returns nil for an empty map so the column stays NULL.
func EncodeMetadata(metadata map[string]string) (datatypes.JSON, error) {
	if len(metadata) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("could not marshal metadata: %w", err)
	}
	return datatypes.JSON(b), nil
}

func DecodeMetadata(raw datatypes.JSON) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var metadata map[string]string
	if err := json.Unmarshal(raw, &metadata); err != nil {
		return nil, fmt.Errorf("invalid metadata JSON: %w", err)
	}
	return metadata, nil
}
