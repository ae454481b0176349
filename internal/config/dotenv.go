package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// LoadDotEnv reads KEY=VALUE lines from path (e.g. ".env") and exports the PORTFOLIO_* ones so
// Load picks them up as overrides. Variables already set in the environment win. The file may be
// missing; that is not an error.
func LoadDotEnv(path string) (int, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return 0, nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return 0, fmt.Errorf("error reading env file: %w", err)
	}
	set := 0
	for _, k := range v.AllKeys() {
		key := strings.ToUpper(k)
		if !strings.HasPrefix(key, EnvPrefix+"_") {
			continue
		}
		if _, ok := os.LookupEnv(key); ok {
			continue
		}
		if err := os.Setenv(key, v.GetString(k)); err != nil {
			return set, err
		}
		set++
	}
	return set, nil
}
