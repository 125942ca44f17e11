package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/whattowear/internal/flagx"
	"github.com/dmitrijs2005/whattowear/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Pointer fields
// distinguish "absent" from zero values so a partial file only overrides
// what it names. CacheTTL accepts "30s" or integer nanoseconds.
type JsonConfig struct {
	Addr            *string         `json:"addr"`
	StorageDriver   *string         `json:"storage_driver"`
	DatabaseDSN     *string         `json:"database_dsn"`
	MongoURI        *string         `json:"mongo_uri"`
	MongoDatabase   *string         `json:"mongo_database"`
	SecretKey       *string         `json:"secret_key"`
	HashAlgorithm   *string         `json:"hash_algorithm"`
	BcryptCost      *int            `json:"bcrypt_cost"`
	HashConcurrency *int            `json:"hash_concurrency"`
	RedisAddr       *string         `json:"redis_addr"`
	RedisPassword   *string         `json:"redis_password"`
	RedisDB         *int            `json:"redis_db"`
	CacheTTL        *timex.Duration `json:"cache_ttl"`
	S3RootUser      *string         `json:"s3_root_user"`
	S3RootPassword  *string         `json:"s3_root_password"`
	S3Bucket        *string         `json:"s3_bucket"`
	S3Region        *string         `json:"s3_region"`
	S3BaseEndpoint  *string         `json:"s3_base_endpoint"`
	S3PublicBaseURL *string         `json:"s3_public_base_url"`
	LogLevel        *string         `json:"log_level"`
	LogFormat       *string         `json:"log_format"`
	DegradedItems   *bool           `json:"degraded_items"`
	CORSOrigins     []string        `json:"cors_origins"`
}

// parseJson loads the file named by -c or -config, if any, and copies the
// fields it sets into config. An unreadable file or invalid JSON panics.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setStr := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	setInt := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}

	setStr(&config.Addr, c.Addr)
	setStr(&config.StorageDriver, c.StorageDriver)
	setStr(&config.DatabaseDSN, c.DatabaseDSN)
	setStr(&config.MongoURI, c.MongoURI)
	setStr(&config.MongoDatabase, c.MongoDatabase)
	setStr(&config.SecretKey, c.SecretKey)
	setStr(&config.HashAlgorithm, c.HashAlgorithm)
	setInt(&config.BcryptCost, c.BcryptCost)
	setInt(&config.HashConcurrency, c.HashConcurrency)
	setStr(&config.RedisAddr, c.RedisAddr)
	setStr(&config.RedisPassword, c.RedisPassword)
	setInt(&config.RedisDB, c.RedisDB)
	setStr(&config.S3RootUser, c.S3RootUser)
	setStr(&config.S3RootPassword, c.S3RootPassword)
	setStr(&config.S3Bucket, c.S3Bucket)
	setStr(&config.S3Region, c.S3Region)
	setStr(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setStr(&config.S3PublicBaseURL, c.S3PublicBaseURL)
	setStr(&config.LogLevel, c.LogLevel)
	setStr(&config.LogFormat, c.LogFormat)

	if c.CacheTTL != nil {
		config.CacheTTL = c.CacheTTL.Duration
	}
	if c.DegradedItems != nil {
		config.DegradedItems = *c.DegradedItems
	}
	if c.CORSOrigins != nil {
		config.CORSOrigins = c.CORSOrigins
	}
}
