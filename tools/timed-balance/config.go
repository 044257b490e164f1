package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// CfgNodeURL contains the name of the parameter for the url of the node to query.
	CfgNodeURL = "node-url"

	// CfgKeys contains the name of the parameter for the comma separated base58 encoded private keys.
	CfgKeys = "keys"

	// CfgCurrency contains the name of the parameter for the currency that the balances are priced in.
	CfgCurrency = "currency"
)

// Config holds the validated start parameters of the program.
type Config struct {
	NodeURL  string
	Keys     []string
	Currency string
}

func init() {
	flag.StringP(CfgNodeURL, "n", "", "url of the node to query")
	flag.String(CfgKeys, "", "comma separated base58 encoded private keys")
	flag.StringP(CfgCurrency, "c", "eur", "currency to display the value in")
}

// loadConfig reads the parameters from an optional .env file, the environment and the command line flags (in ascending
// order of precedence).
func loadConfig() (config *Config, err error) {
	// the .env file only feeds the environment, missing files are fine
	_ = godotenv.Load()

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	// the keys parameter is read from PRIVATE_KEYS in the environment
	if err = viper.BindEnv(CfgKeys, "PRIVATE_KEYS", "KEYS"); err != nil {
		return nil, errors.Errorf("failed to bind environment variables: %w", err)
	}

	flag.Parse()
	if err = viper.BindPFlags(flag.CommandLine); err != nil {
		return nil, errors.Errorf("failed to bind flags: %w", err)
	}

	config = &Config{
		NodeURL:  viper.GetString(CfgNodeURL),
		Currency: viper.GetString(CfgCurrency),
	}
	for _, key := range strings.Split(viper.GetString(CfgKeys), ",") {
		if key = strings.TrimSpace(key); key != "" {
			config.Keys = append(config.Keys, key)
		}
	}

	if config.NodeURL == "" {
		return nil, errors.Errorf("missing required parameter '%s'", CfgNodeURL)
	}
	if len(config.Keys) == 0 {
		return nil, errors.Errorf("missing required parameter '%s'", CfgKeys)
	}

	return config, nil
}
