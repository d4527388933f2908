package configs

import (
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName    string
	PropertiesFilePath string
	MessagesFilePath   string
}

var Env *EnvConfig

func init() {
	env := viper.New()
	env.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName:    getStringOrDefault(env, "APPLICATION_NAME", "todo-api"),
		PropertiesFilePath: env.GetString("PROPERTIES_FILE_PATH"),
		MessagesFilePath:   env.GetString("MESSAGES_FILE_PATH"),
	}
}

func getStringOrDefault(env *viper.Viper, key, defaultValue string) string {
	value := env.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
