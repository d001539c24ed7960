package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Fuentes de catálogo soportadas.
const (
	CatalogMemory   = "memory"   // datos de demostración embebidos
	CatalogPostgres = "postgres" // esquema del backend de datos (solo lectura)
	CatalogRemote   = "remote"   // backend HTTP vía ?path=
)

// DefaultBackendURL URL fija del backend de datos.
const DefaultBackendURL = "https://functions.poehali.dev/a4b59205-7698-4445-ad13-742d4899430e"

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Session SessionConfig
	Catalog CatalogConfig
	DB      DBConfig
	Backend BackendConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SessionConfig firma y nombre de la cookie de sesión.
type SessionConfig struct {
	Secret           string
	CookieName       string
	Issuer           string
	TTLMinutes       int // 0 = sin expiración
	StateIdleMinutes int // inactividad tras la cual se descarta el estado de vista
}

// CatalogConfig origen de los datos del panel.
type CatalogConfig struct {
	Source string // memory | postgres | remote
}

// DBConfig configuración de PostgreSQL (solo si Catalog.Source = postgres).
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

// BackendConfig endpoint del puerto de datos HTTP.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "skladpro"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Session: SessionConfig{
			Secret:           getString(v, "SESSION_SECRET", ""),
			CookieName:       getString(v, "SESSION_COOKIE", "skladpro_user"),
			Issuer:           getString(v, "SESSION_ISSUER", "skladpro"),
			TTLMinutes:       getInt(v, "SESSION_TTL_MINUTES", 0),
			StateIdleMinutes: getInt(v, "SESSION_STATE_IDLE_MINUTES", 720),
		},
		Catalog: CatalogConfig{
			Source: strings.ToLower(getString(v, "CATALOG_SOURCE", CatalogMemory)),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "skladpro"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Backend: BackendConfig{
			BaseURL: getString(v, "BACKEND_URL", DefaultBackendURL),
			Timeout: time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Catalog.Source {
	case CatalogMemory, CatalogPostgres, CatalogRemote:
	default:
		return fmt.Errorf("CATALOG_SOURCE inválido: %q (memory, postgres, remote)", c.Catalog.Source)
	}
	if c.Session.Secret == "" {
		if c.App.Env == "production" {
			return fmt.Errorf("SESSION_SECRET es obligatorio en producción")
		}
		c.Session.Secret = "skladpro-dev-secret"
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
