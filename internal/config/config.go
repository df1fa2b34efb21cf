// Package config загружает настройки API и бота из переменных окружения,
// файла .env и (опционально) YAML-файла.
//
// Приоритет: переменные окружения > файл конфигурации > значения по умолчанию.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Поддерживаемые драйверы базы данных.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config объединяет все настройки приложения.
type Config struct {
	DB  DBConfig  `mapstructure:"db"`
	API APIConfig `mapstructure:"api"`
	Bot BotConfig `mapstructure:"bot"`
	Log LogConfig `mapstructure:"log"`
}

// DBConfig содержит параметры подключения к базе данных.
// Имена переменных окружения совпадают с прежними: DB_HOST, DB_PORT и т.д.
type DBConfig struct {
	Driver  string `mapstructure:"driver"`
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
	User    string `mapstructure:"user"`
	Pass    string `mapstructure:"pass"`
	Name    string `mapstructure:"name"`
	SSLMode string `mapstructure:"sslmode"`
	// DSN, если задан, используется как есть вместо собранной строки.
	DSN string `mapstructure:"dsn"`
}

// APIConfig содержит настройки HTTP-сервера.
type APIConfig struct {
	Port string `mapstructure:"port"`
}

// BotConfig содержит настройки Telegram-бота.
type BotConfig struct {
	Token string `mapstructure:"token"`
}

// LogConfig задает уровень и формат логов (text или json).
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Defaults возвращает конфигурацию по умолчанию.
func Defaults() Config {
	return Config{
		DB: DBConfig{
			Driver:  DriverPostgres,
			Host:    "localhost",
			Port:    "5432",
			Name:    "parky",
			SSLMode: "disable",
		},
		API: APIConfig{Port: "8080"},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load читает конфигурацию. Пустой path означает: только .env, окружение и значения по умолчанию.
func Load(path string) (*Config, error) {
	// .env нужен только при локальной разработке, его отсутствие не ошибка
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// значения по умолчанию должны быть заданы до Unmarshal, иначе AutomaticEnv не увидит ключи
	d := Defaults()
	v.SetDefault("db.driver", d.DB.Driver)
	v.SetDefault("db.host", d.DB.Host)
	v.SetDefault("db.port", d.DB.Port)
	v.SetDefault("db.user", d.DB.User)
	v.SetDefault("db.pass", d.DB.Pass)
	v.SetDefault("db.name", d.DB.Name)
	v.SetDefault("db.sslmode", d.DB.SSLMode)
	v.SetDefault("db.dsn", d.DB.DSN)
	v.SetDefault("api.port", d.API.Port)
	v.SetDefault("bot.token", d.Bot.Token)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("не удалось прочитать файл конфигурации %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("не удалось разобрать конфигурацию: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет значения, которые нельзя молча заменить на значения по умолчанию.
func (c *Config) Validate() error {
	switch strings.ToLower(c.DB.Driver) {
	case DriverPostgres, DriverSQLite:
		c.DB.Driver = strings.ToLower(c.DB.Driver)
	default:
		return fmt.Errorf("неизвестный драйвер базы данных %q", c.DB.Driver)
	}
	if c.API.Port == "" {
		return errors.New("не указан порт API (API_PORT)")
	}
	return nil
}

// DataSourceName возвращает строку подключения для выбранного драйвера.
func (c DBConfig) DataSourceName() string {
	if c.DSN != "" {
		return c.DSN
	}
	if c.Driver == DriverSQLite {
		// _time_format=sqlite: время пишется в формате, который драйвер читает обратно
		return c.Name + "?_pragma=foreign_keys(1)&_time_format=sqlite"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Pass, c.Name, c.SSLMode,
	)
}
