package resource

import (
	"fmt"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/spf13/viper"

	"weather-api/pkg/log"
)

const DefaultPropertiesFilePath = "configs/application.yml"

var (
	mu         sync.RWMutex
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// FilePath returns the properties file location, honouring PROPERTIES_FILE_PATH.
func FilePath() string {
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok && value != "" {
		return value
	}
	return DefaultPropertiesFilePath
}

// Init loads application properties from the YAML file at filepath, resolving
// ${ENV} and ${ENV:default} placeholders against the process environment.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties %s: %w", filepath, err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)

	next := viper.New()
	for key, value := range resolved {
		next.Set(key, value)
	}

	mu.Lock()
	properties = next
	mu.Unlock()
	return nil
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case []any:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Warnf("Ignoring property '%s' with unsupported type", fullKey)
		}
	}
}

// resolveEnvVariable replaces every placeholder in value with the environment
// variable it names, or its default when the variable is unset.
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(placeholder string) string {
		matches := envPattern.FindStringSubmatch(placeholder)
		if envValue, exists := os.LookupEnv(matches[1]); exists {
			return envValue
		}
		return matches[2]
	})
}

func current() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return properties
}

func GetString(key string) string {
	return current().GetString(key)
}

// GetStringOrDefault returns the property or defaultValue when it is missing or blank.
func GetStringOrDefault(key, defaultValue string) string {
	if value := current().GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDuration(key string) time.Duration {
	return current().GetDuration(key)
}

// GetDurationOrDefault returns the property or defaultValue when it is missing or not positive.
func GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := current().GetDuration(key); value > 0 {
		return value
	}
	return defaultValue
}

func GetInt(key string) int {
	return current().GetInt(key)
}

// GetIntOrDefault returns the property or defaultValue when it is missing or not positive.
func GetIntOrDefault(key string, defaultValue int) int {
	if value := current().GetInt(key); value > 0 {
		return value
	}
	return defaultValue
}
