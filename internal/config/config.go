// Package config загружает настройки клиента и сервера из флагов,
// переменных окружения (CARDCONNECT_*), .env и YAML файла.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix - префикс переменных окружения
const EnvPrefix = "CARDCONNECT"

// Source описывает, откуда читать настройки
type Source struct {
	Flags      *pflag.FlagSet // флаги cobra, имеют наивысший приоритет
	ConfigFile string         // YAML файл, необязательный
	EnvFile    string         // .env файл; отсутствие файла не ошибка
}

// newViper собирает viper с приоритетом: флаги > env > файл > defaults
func newViper(src Source, defaults map[string]any) (*viper.Viper, error) {
	envFile := src.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if src.ConfigFile != "" {
		v.SetConfigFile(src.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", src.ConfigFile, err)
		}
	}

	if src.Flags != nil {
		// имена флагов с дефисом, ключи конфига с подчеркиванием
		var bindErr error
		src.Flags.VisitAll(func(f *pflag.Flag) {
			if bindErr != nil {
				return
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if _, known := defaults[key]; !known {
				return
			}
			bindErr = v.BindPFlag(key, f)
		})
		if bindErr != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", bindErr)
		}
	}

	return v, nil
}

// validateLog проверяет общие параметры логирования
func validateLog(level, format string) error {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", level)
	}
	switch strings.ToLower(format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q", format)
	}
	return nil
}
