// Package cache names the Redis keys written by the console.
package cache

import "fmt"

type EntityType string

const EntitySession EntityType = "session"

type KeyType string

const (
	KeyToken KeyType = "token"
	KeyUser  KeyType = "user"
)

// GenerateKey creates a standardized cache key
func GenerateKey(entity EntityType, keyType KeyType, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entity, keyType, value)
}
