package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Engine    EngineConfig    `mapstructure:"engine"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
	Debug       bool   `mapstructure:"debug"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	HTTPPort        int           `mapstructure:"http_port"`
	GRPCPort        int           `mapstructure:"grpc_port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	Schema          string        `mapstructure:"schema"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s&search_path=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.Schema,
	)
}

type RedisConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
	TLS       bool   `mapstructure:"tls"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type AuthConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Enabled bool   `mapstructure:"enabled"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
	RequestsPerHour   int  `mapstructure:"requests_per_hour"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	TimeFormat string `mapstructure:"time_format"`
}

// EngineConfig holds tunables for the risk quantification engine.
// Band edges are percentages of the maximum inherent risk (125).
type EngineConfig struct {
	RiskBands    RiskBandConfig `mapstructure:"risk_bands"`
	MaxFindings  int            `mapstructure:"max_findings"`
	MaxStrengths int            `mapstructure:"max_strengths"`
	CacheTTL     time.Duration  `mapstructure:"cache_ttl"`
}

type RiskBandConfig struct {
	CriticalPct float64 `mapstructure:"critical_pct"`
	HighPct     float64 `mapstructure:"high_pct"`
	MediumPct   float64 `mapstructure:"medium_pct"`
}

// DefaultEngineConfig returns the engine defaults documented for this deployment.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		RiskBands: RiskBandConfig{
			CriticalPct: 60,
			HighPct:     40,
			MediumPct:   25,
		},
		MaxFindings:  10,
		MaxStrengths: 5,
		CacheTTL:     15 * time.Minute,
	}
}

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/siteguard-engine")
	}

	v.SetEnvPrefix("SITEGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind nested env vars explicitly (viper doesn't auto-bind nested struct fields)
	v.BindEnv("redis.tls", "SITEGUARD_REDIS_TLS")
	v.BindEnv("redis.host", "SITEGUARD_REDIS_HOST")
	v.BindEnv("redis.port", "SITEGUARD_REDIS_PORT")
	v.BindEnv("redis.password", "SITEGUARD_REDIS_PASSWORD")
	v.BindEnv("database.host", "SITEGUARD_DATABASE_HOST")
	v.BindEnv("database.port", "SITEGUARD_DATABASE_PORT")
	v.BindEnv("database.user", "SITEGUARD_DATABASE_USER")
	v.BindEnv("database.password", "SITEGUARD_DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "SITEGUARD_DATABASE_DBNAME")
	v.BindEnv("database.sslmode", "SITEGUARD_DATABASE_SSLMODE")
	v.BindEnv("auth.api_key", "SITEGUARD_AUTH_API_KEY")
	v.BindEnv("app.environment", "SITEGUARD_APP_ENVIRONMENT")

	setEngineDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Engine.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDefault loads configuration with default path
func LoadDefault() (*Config, error) {
	return Load("")
}

func setEngineDefaults(v *viper.Viper) {
	def := DefaultEngineConfig()
	v.SetDefault("engine.risk_bands.critical_pct", def.RiskBands.CriticalPct)
	v.SetDefault("engine.risk_bands.high_pct", def.RiskBands.HighPct)
	v.SetDefault("engine.risk_bands.medium_pct", def.RiskBands.MediumPct)
	v.SetDefault("engine.max_findings", def.MaxFindings)
	v.SetDefault("engine.max_strengths", def.MaxStrengths)
	v.SetDefault("engine.cache_ttl", def.CacheTTL)
}

// Validate checks that the risk bands form a strictly decreasing ladder.
func (c EngineConfig) Validate() error {
	b := c.RiskBands
	if b.CriticalPct <= b.HighPct || b.HighPct <= b.MediumPct || b.MediumPct <= 0 {
		return fmt.Errorf("invalid risk bands: critical=%.1f high=%.1f medium=%.1f (must be strictly decreasing and positive)",
			b.CriticalPct, b.HighPct, b.MediumPct)
	}
	if b.CriticalPct > 100 {
		return fmt.Errorf("invalid risk bands: critical=%.1f exceeds 100%%", b.CriticalPct)
	}
	if c.MaxFindings <= 0 || c.MaxStrengths <= 0 {
		return fmt.Errorf("invalid engine bounds: max_findings=%d max_strengths=%d", c.MaxFindings, c.MaxStrengths)
	}
	return nil
}
