package resource

import (
	"bytes"
	"io"
	"log"
	"os"
	"regexp"

	"github.com/spf13/viper"

	"todo-api/configs"
)

var properties = viper.New()
var envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)

// init loads application properties from PROPERTIES_FILE_PATH or the embedded configs/application.yml
func init() {
	if configs.Env.PropertiesFilePath != "" {
		Init(configs.Env.PropertiesFilePath)
		return
	}
	if err := Load(bytes.NewReader(configs.Application)); err != nil {
		log.Fatalf("Fail to read embedded properties: %v", err)
	}
}

// Init replaces the loaded properties with the YAML file at filepath.
func Init(filepath string) {
	file, err := os.Open(filepath)
	if err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
	defer file.Close()

	if err := Load(file); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
}

// Load reads YAML properties from reader and resolves ${ENV:default} placeholders.
func Load(reader io.Reader) error {
	raw := viper.New()
	raw.SetConfigType("yml")
	if err := raw.ReadConfig(reader); err != nil {
		return err
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", raw.AllSettings(), resolved)

	next := viper.New()
	for key, value := range resolved {
		next.Set(key, value)
	}
	properties = next
	return nil
}

// parsePropertiesMap reads recursively the YAML tree into dotted keys
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
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces a ${ENV:default} value with the environment value or its default
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if matches == nil {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}
