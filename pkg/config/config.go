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
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Session SessionConfig
	Cache   CacheConfig
	Redis   RedisConfig
	Storage StorageConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// IsProduction indica si la app corre en producción (cookies Secure, logs JSON).
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	AutoMigrate bool
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

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret string
	Issuer string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host     string
	Port     int
	DocsPath string // ruta al swagger.json generado; vacío o inexistente = sin /docs
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SessionConfig duración fija de la sesión y cron de limpieza.
type SessionConfig struct {
	TTL        time.Duration
	PurgeCron  string
}

// CacheConfig selecciona el backend de caché por etiquetas.
type CacheConfig struct {
	Driver string // memory | redis
	TTL    time.Duration
}

// RedisConfig conexión a Redis (solo si Cache.Driver == "redis").
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// StorageConfig almacenamiento de archivos de documentos.
type StorageConfig struct {
	Driver         string // local | s3
	LocalDir       string
	Endpoint       string
	Region         string
	Bucket         string
	AccessKey      string
	SecretKey      string
	UsePathStyle   bool
	MaxUploadBytes int64
	PresignExpiry  time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "daftar"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "daftar"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 25),
			AutoMigrate: getBool(v, "DB_AUTO_MIGRATE", true),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", "daftar"),
		},
		HTTP: HTTPConfig{
			Host:     getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:     getInt(v, "HTTP_PORT", 8080),
			DocsPath: getString(v, "DOCS_PATH", "./docs/swagger.json"),
		},
		Session: SessionConfig{
			TTL:        time.Duration(getInt(v, "SESSION_TTL_HOURS", 720)) * time.Hour,
			PurgeCron:  getString(v, "SESSION_PURGE_CRON", "@hourly"),
		},
		Cache: CacheConfig{
			Driver: getString(v, "CACHE_DRIVER", "memory"),
			TTL:    time.Duration(getInt(v, "CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
			Prefix:   getString(v, "REDIS_PREFIX", "daftar:"),
		},
		Storage: StorageConfig{
			Driver:         getString(v, "STORAGE_DRIVER", "local"),
			LocalDir:       getString(v, "STORAGE_LOCAL_DIR", "./data/documents"),
			Endpoint:       getString(v, "STORAGE_ENDPOINT", ""),
			Region:         getString(v, "STORAGE_REGION", "us-east-1"),
			Bucket:         getString(v, "STORAGE_BUCKET", "daftar-documents"),
			AccessKey:      getString(v, "STORAGE_ACCESS_KEY", ""),
			SecretKey:      getString(v, "STORAGE_SECRET_KEY", ""),
			UsePathStyle:   getBool(v, "STORAGE_USE_PATH_STYLE", true),
			MaxUploadBytes: int64(getInt(v, "STORAGE_MAX_UPLOAD_MB", 20)) << 20,
			PresignExpiry:  time.Duration(getInt(v, "STORAGE_PRESIGN_MINUTES", 15)) * time.Minute,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" && c.App.IsProduction() {
		return fmt.Errorf("config: JWT_SECRET es obligatorio en producción")
	}
	if c.JWT.Secret == "" {
		c.JWT.Secret = "dev-secret-change-me"
	}
	switch c.Cache.Driver {
	case "memory", "redis":
	default:
		return fmt.Errorf("config: CACHE_DRIVER inválido %q", c.Cache.Driver)
	}
	switch c.Storage.Driver {
	case "local", "s3":
	default:
		return fmt.Errorf("config: STORAGE_DRIVER inválido %q", c.Storage.Driver)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("config: SESSION_TTL_HOURS debe ser positivo")
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
