package config

import (
	"errors"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays values from the environment. Variables already set in
// the process take precedence over the same names in dotenvPath; a missing
// dotenv file is not an error.
//
// PORT and JWT_SECRET are honoured for compatibility with existing
// deployments; the WTWR_* names win when both are present.
func parseEnv(cfg *Config, dotenvPath string, lookup func(string) (string, bool)) {
	file := map[string]string{}
	if dotenvPath != "" {
		m, err := godotenv.Read(dotenvPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
		if m != nil {
			file = m
		}
	}

	get := func(name string) (string, bool) {
		if v, ok := lookup(name); ok {
			return v, true
		}
		v, ok := file[name]
		return v, ok
	}

	str := func(name string, dst *string) {
		if v, ok := get(name); ok {
			*dst = v
		}
	}
	num := func(name string, dst *int) {
		if v, ok := get(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				panic(errors.New(name + ": " + err.Error()))
			}
			*dst = n
		}
	}

	if v, ok := get("PORT"); ok {
		cfg.Addr = ":" + v
	}
	str("JWT_SECRET", &cfg.SecretKey)

	str("WTWR_ADDR", &cfg.Addr)
	str("WTWR_STORAGE", &cfg.StorageDriver)
	str("WTWR_DATABASE_DSN", &cfg.DatabaseDSN)
	str("WTWR_MONGO_URI", &cfg.MongoURI)
	str("WTWR_MONGO_DATABASE", &cfg.MongoDatabase)
	str("WTWR_SECRET_KEY", &cfg.SecretKey)
	str("WTWR_HASH_ALGORITHM", &cfg.HashAlgorithm)
	num("WTWR_BCRYPT_COST", &cfg.BcryptCost)
	num("WTWR_HASH_CONCURRENCY", &cfg.HashConcurrency)
	str("WTWR_REDIS_ADDR", &cfg.RedisAddr)
	str("WTWR_REDIS_PASSWORD", &cfg.RedisPassword)
	num("WTWR_REDIS_DB", &cfg.RedisDB)
	str("WTWR_S3_ROOT_USER", &cfg.S3RootUser)
	str("WTWR_S3_ROOT_PASSWORD", &cfg.S3RootPassword)
	str("WTWR_S3_BUCKET", &cfg.S3Bucket)
	str("WTWR_S3_REGION", &cfg.S3Region)
	str("WTWR_S3_BASE_ENDPOINT", &cfg.S3BaseEndpoint)
	str("WTWR_S3_PUBLIC_BASE_URL", &cfg.S3PublicBaseURL)
	str("WTWR_LOG_LEVEL", &cfg.LogLevel)
	str("WTWR_LOG_FORMAT", &cfg.LogFormat)

	if v, ok := get("WTWR_CACHE_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(errors.New("WTWR_CACHE_TTL: " + err.Error()))
		}
		cfg.CacheTTL = d
	}
	if v, ok := get("WTWR_DEGRADED_ITEMS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(errors.New("WTWR_DEGRADED_ITEMS: " + err.Error()))
		}
		cfg.DegradedItems = b
	}
	if v, ok := get("WTWR_CORS_ORIGINS"); ok {
		cfg.CORSOrigins = splitList(v)
	}
}
