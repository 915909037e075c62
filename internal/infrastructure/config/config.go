package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the API. Values come from the
// environment (optionally via a .env file loaded by godotenv), with
// local-friendly defaults so the service boots against DynamoDB Local
// with no configuration at all.
type Config struct {
	Port               int
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
}

func Load() Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("PORT", 8080)
	v.SetDefault("AWS_REGION", "us-east-1")
	// DynamoDB Local does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")

	return Config{
		Port:               v.GetInt("PORT"),
		AWSRegion:          v.GetString("AWS_REGION"),
		AWSAccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		DynamoDBEndpoint:   v.GetString("DYNAMODB_ENDPOINT"),
	}
}
