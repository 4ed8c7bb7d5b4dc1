package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// minVaultKeyLength is the minimum byte length accepted for VAULT_SECRET_KEY.
const minVaultKeyLength = 32

// ErrVaultKeyMissing is returned when VAULT_SECRET_KEY is absent or too short.
// There is deliberately no fallback key: the server refuses to start instead.
var ErrVaultKeyMissing = errors.New("config: VAULT_SECRET_KEY must be set and at least 32 bytes")

type Config struct {
	Port             string
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
	VaultSecretKey   string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A local .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:             "9446",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
	}

	envPort := os.Getenv("PORT")
	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envVaultSecretKey := os.Getenv("VAULT_SECRET_KEY")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envVaultSecretKey) < minVaultKeyLength {
		return nil, ErrVaultKeyMissing
	}
	env.VaultSecretKey = envVaultSecretKey

	return &env, nil
}

// ConnectionString builds the postgres DSN used by the server and the migration runner.
func (c *Config) ConnectionString() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
