package util

import (
	"os"
	"strings"
)

func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		key, value, _ := strings.Cut(variable, "=")

		environmentVariables[key] = value
	}

	return environmentVariables
}

// OverrideFromEnvironment replaces target with env[key] when that is set
func OverrideFromEnvironment(env map[string]string, key string, target *string) {
	if value := env[key]; value != "" {
		*target = value
	}
}
