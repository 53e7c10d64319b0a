package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Firebase FirebaseConfig
	IdP      IdPConfig
	OTP      OTPConfig
	Limits   LimitsConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains session token configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// FirebaseConfig locates the service account used to verify identity tokens.
type FirebaseConfig struct {
	CredentialsFile string
	ProjectID       string
}

// IdPConfig points the client SDK at the external identity provider's REST
// surface.
type IdPConfig struct {
	BaseURL string
	APIKey  string
	Timeout int // in seconds
}

// OTPConfig tunes the phone verification flow.
type OTPConfig struct {
	CodeLength    int
	TTLSeconds    int
	ResendSeconds int
	MaxAttempts   int
}

// LimitsConfig caps credential attempts per identifier.
type LimitsConfig struct {
	SignInAttempts int
	OTPSends       int
	WindowSeconds  int
}

// NewRelicConfig contains observability agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
