package config

import (
	"fmt"
	"os"
	"strconv"
)

const DefaultDynamoTtlMinutes = 7 * 24 * 60

type DynamoConfig struct {
	TableName  string
	Region     string
	TtlMinutes int
}

// GetDynamoConfig returns nil when DYNAMO_TABLE_NAME is unset; the segment
// manifest is optional.
func GetDynamoConfig() (*DynamoConfig, error) {
	tableName := os.Getenv("DYNAMO_TABLE_NAME")
	if tableName == "" {
		return nil, nil
	}

	region := os.Getenv("REGION")
	if region == "" {
		return nil, fmt.Errorf("REGION must be set when DYNAMO_TABLE_NAME is set")
	}

	ttlMinutes := DefaultDynamoTtlMinutes
	if raw := os.Getenv("DYNAMO_TTL_MINUTES"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("DYNAMO_TTL_MINUTES must be a positive integer, got %q", raw)
		}
		ttlMinutes = n
	}

	return &DynamoConfig{
		TableName:  tableName,
		Region:     region,
		TtlMinutes: ttlMinutes,
	}, nil
}
