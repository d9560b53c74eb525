package config

import (
	"os"
	"strings"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/joho/godotenv"
)

const (
	EnvAccessKeyID     = "AWS_ACCESS_KEY_ID"
	EnvSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	EnvSessionToken    = "AWS_SESSION_TOKEN"
	EnvRegion          = "AWS_REGION"

	DefaultEnvFile = ".env"
)

// Credentials are the static AWS credentials and default region the tool runs with. They are built
// once at startup and passed explicitly to whatever constructs AWS clients; the process environment
// is never modified.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Region          string
}

// LookupFunc resolves a named value, reporting whether it was set.
type LookupFunc func(key string) (string, bool)

// LoadCredentials reads credentials from the process environment, falling back to the values in
// envFile. A missing envFile is not an error as long as the environment has everything. Missing
// required values are reported as a MissingCredentialError.
func LoadCredentials(envFile string) (Credentials, error) {
	fileValues := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileValues = values
		case os.IsNotExist(err):
		default:
			return Credentials{}, errors.WithStackTrace(EnvFileReadError{FilePath: envFile, Underlying: err})
		}
	}

	return CredentialsFrom(chainLookups(os.LookupEnv, mapLookup(fileValues)))
}

// CredentialsFrom builds Credentials from lookup, failing on the first required value that is
// missing or blank.
func CredentialsFrom(lookup LookupFunc) (Credentials, error) {
	required := func(key string) (string, error) {
		value, ok := lookup(key)
		value = strings.TrimSpace(value)
		if !ok || value == "" {
			return "", errors.WithStackTrace(MissingCredentialError{Name: key})
		}
		return value, nil
	}

	accessKeyID, err := required(EnvAccessKeyID)
	if err != nil {
		return Credentials{}, err
	}
	secretAccessKey, err := required(EnvSecretAccessKey)
	if err != nil {
		return Credentials{}, err
	}
	region, err := required(EnvRegion)
	if err != nil {
		return Credentials{}, err
	}
	sessionToken, _ := lookup(EnvSessionToken)

	return Credentials{
		AccessKeyID:     accessKeyID,
		SecretAccessKey: secretAccessKey,
		SessionToken:    strings.TrimSpace(sessionToken),
		Region:          region,
	}, nil
}

func mapLookup(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

// chainLookups returns the first non-blank value found, checking lookups in order.
func chainLookups(lookups ...LookupFunc) LookupFunc {
	return func(key string) (string, bool) {
		for _, lookup := range lookups {
			if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
				return value, true
			}
		}
		return "", false
	}
}
