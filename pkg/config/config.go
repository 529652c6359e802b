package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Feed   FeedConfig
	Assets AssetsConfig
	Status StatusConfig
	DB     DBConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string
	SwaggerPath string // vacío = sin Swagger UI
}

// Tipos de fuente del directorio.
const (
	FeedKindFile     = "file"
	FeedKindHTTP     = "http"
	FeedKindPostgres = "postgres"
)

// FeedConfig origen del listado de negocios.
type FeedConfig struct {
	Kind     string        // file, http, postgres
	URL      string        // para http
	FilePath string        // para file
	Timeout  time.Duration // 0 = sin límite (la carga puede quedar pendiente indefinidamente)
}

// AssetsConfig ubicación de las imágenes.
type AssetsConfig struct {
	Dir       string // directorio en disco servido en /assets
	ImageBase string // prefijo con el que se reescriben las rutas de imagen
}

// StatusConfig etiquetas del selector statusFilter.
type StatusConfig struct {
	CompanyLabel    string
	IndividualLabel string
}

// DBConfig configuración de PostgreSQL (solo para FEED_KIND=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host     string
	Port     int
	LoadWait time.Duration // espera máxima de la página por la carga inicial; 0 = no esperar
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, FEED_KIND, FEED_URL, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env en el directorio actual
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

// fromViper construye la configuración a partir de una instancia ya poblada.
func fromViper(v *viper.Viper) (*Config, error) {
	timeout, err := getDuration(v, "FEED_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}
	loadWait, err := getDuration(v, "HTTP_LOAD_WAIT", 3*time.Second)
	if err != nil {
		return nil, err
	}
	httpPort, err := getInt(v, "HTTP_PORT", 8080)
	if err != nil {
		return nil, err
	}
	dbPort, err := getInt(v, "DB_PORT", 5432)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "directorio-negocios"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			SwaggerPath: getString(v, "SWAGGER_PATH", "./docs/swagger.json"),
		},
		HTTP: HTTPConfig{
			Host:     getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:     httpPort,
			LoadWait: loadWait,
		},
		Feed: FeedConfig{
			Kind:     strings.ToLower(getString(v, "FEED_KIND", FeedKindFile)),
			URL:      getString(v, "FEED_URL", ""),
			FilePath: getString(v, "FEED_FILE", "data/businesses.json"),
			Timeout:  timeout,
		},
		Assets: AssetsConfig{
			Dir:       getString(v, "ASSETS_DIR", "./assets"),
			ImageBase: getString(v, "ASSETS_BASE_PATH", "assets/images"),
		},
		Status: StatusConfig{
			CompanyLabel:    getString(v, "STATUS_LABEL_COMPANY", "Home Furniture"),
			IndividualLabel: getString(v, "STATUS_LABEL_INDIVIDUAL", "Office Furniture"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        dbPort,
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "directorio"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Feed.Kind {
	case FeedKindFile:
		if c.Feed.FilePath == "" {
			return fmt.Errorf("config: FEED_FILE es obligatorio con FEED_KIND=file")
		}
	case FeedKindHTTP:
		if c.Feed.URL == "" {
			return fmt.Errorf("config: FEED_URL es obligatorio con FEED_KIND=http")
		}
	case FeedKindPostgres:
	default:
		return fmt.Errorf("config: FEED_KIND desconocido %q", c.Feed.Kind)
	}
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: HTTP_PORT fuera de rango: %d", c.HTTP.Port)
	}
	if c.HTTP.LoadWait < 0 {
		return fmt.Errorf("config: HTTP_LOAD_WAIT no puede ser negativo")
	}
	if c.Feed.Timeout < 0 {
		return fmt.Errorf("config: FEED_TIMEOUT no puede ser negativo")
	}
	if c.Status.CompanyLabel == c.Status.IndividualLabel {
		return fmt.Errorf("config: las etiquetas de estado deben ser distintas")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

// getInt acepta enteros o strings numéricos; cualquier otro valor es un error.
func getInt(v *viper.Viper, key string, def int) (int, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	switch val := v.Get(key).(type) {
	case int:
		return val, nil
	case string:
		raw := strings.TrimSpace(val)
		if raw == "" {
			return def, nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("config: %s inválido %q: %w", key, raw, err)
		}
		return n, nil
	default:
		return v.GetInt(key), nil
	}
}

// getDuration acepta "30s", "2m" o un entero en segundos.
func getDuration(v *viper.Viper, key string, def time.Duration) (time.Duration, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return def, nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s inválido %q: %w", key, raw, err)
	}
	return d, nil
}
