package config

import (
	"flag"
	"io"
	"strings"

	"github.com/dmitrijs2005/whattowear/internal/flagx"
)

// serverFlags lists every flag parseFlags defines, for flagx.FilterArgs.
var serverFlags = []string{
	"-a", "-t", "-d", "-m", "-n", "-s", "-algo", "-cost", "-r", "-ttl",
	"-u", "-p", "-b", "-g", "-e", "-public", "-l", "-f", "-degraded", "-cors",
}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string       HTTP bind address (e.g. ":3001")
//	-t string       storage driver: memory, postgres, mongo
//	-d string       PostgreSQL DSN
//	-m string       MongoDB URI
//	-n string       MongoDB database name
//	-s string       JWT HMAC secret key
//	-algo string    password hash algorithm: bcrypt, argon2id
//	-cost int       bcrypt cost
//	-r string       redis address; empty disables the items cache
//	-ttl duration   items cache TTL (e.g. "30s")
//	-u string       S3 root user
//	-p string       S3 root password
//	-b string       S3 bucket; empty disables image uploads
//	-g string       S3 region
//	-e string       S3 base endpoint
//	-public string  public base URL for uploaded images
//	-l string       log level
//	-f string       log format: json, text, zap
//	-degraded bool  serve an empty item list when storage fails
//	-cors string    comma-separated allowed origins
//
// Only the flags above are taken from args (see flagx.FilterArgs); -c and
// -config are handled by parseJson.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, serverFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.StorageDriver, "t", config.StorageDriver, "storage driver")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.MongoURI, "m", config.MongoURI, "mongo URI")
	fs.StringVar(&config.MongoDatabase, "n", config.MongoDatabase, "mongo database")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.HashAlgorithm, "algo", config.HashAlgorithm, "password hash algorithm")
	fs.IntVar(&config.BcryptCost, "cost", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")
	fs.DurationVar(&config.CacheTTL, "ttl", config.CacheTTL, "items cache TTL")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3PublicBaseURL, "public", config.S3PublicBaseURL, "public base URL for images")

	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format")
	fs.BoolVar(&config.DegradedItems, "degraded", config.DegradedItems, "degraded GET /items on storage failure")
	cors := fs.String("cors", strings.Join(config.CORSOrigins, ","), "allowed CORS origins")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.CORSOrigins = splitList(*cors)
}
