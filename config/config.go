package config

import (
	"flag"
	"os"
	"sync"
	"time"
)

const (
	defaultServerAddr       = ":8080"
	defaultDatabaseDSN      = ""
	defaultPublicBaseURL    = "http://localhost:8080"
	defaultLogLevel         = "debug"
	defaultCryptomusBaseURL = "https://api.cryptomus.com"
	defaultPayGateBaseURL   = "https://api.paygate.to"
	defaultSettleCurrency   = "USDT"
	defaultInvoiceLifetime  = 3600
	defaultGatewayTimeout   = 20 * time.Second
	defaultReconcileEvery   = time.Minute
)

// Config holds all deployment settings. Provider credentials are injected
// here once at startup and passed to constructors, handlers never read the
// environment themselves.
type Config struct {
	ServerAddr    string
	DatabaseDSN   string
	PublicBaseURL string
	LogLevel      string

	CryptomusBaseURL  string
	CryptomusMerchant string
	CryptomusAPIKey   string

	PayGateBaseURL string
	PayGateWallet  string

	SettleCurrency  string
	InvoiceLifetime int
	GatewayTimeout  time.Duration
	ReconcileEvery  time.Duration

	AuthTokenKey string
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		cfg := Config{
			SettleCurrency:  defaultSettleCurrency,
			InvoiceLifetime: defaultInvoiceLifetime,
			GatewayTimeout:  defaultGatewayTimeout,
			ReconcileEvery:  defaultReconcileEvery,
		}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddr, "storefront server address")
		flag.StringVar(&cfg.DatabaseDSN, "d", defaultDatabaseDSN, "storefront database DSN")
		flag.StringVar(&cfg.PublicBaseURL, "b", defaultPublicBaseURL, "public base URL used to build provider callback URLs")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")

		flag.Parse()

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.ServerAddr = runAddrEnv
		}
		if dataBaseURIEnv := os.Getenv("DATABASE_URI"); dataBaseURIEnv != "" {
			cfg.DatabaseDSN = dataBaseURIEnv
		}
		if baseURLEnv := os.Getenv("PUBLIC_BASE_URL"); baseURLEnv != "" {
			cfg.PublicBaseURL = baseURLEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}

		// provider credentials are environment-only deployment secrets
		cfg.CryptomusBaseURL = envOrDefault("CRYPTOMUS_BASE_URL", defaultCryptomusBaseURL)
		cfg.CryptomusMerchant = os.Getenv("CRYPTOMUS_MERCHANT_ID")
		cfg.CryptomusAPIKey = os.Getenv("CRYPTOMUS_API_KEY")
		cfg.PayGateBaseURL = envOrDefault("PAYGATE_BASE_URL", defaultPayGateBaseURL)
		cfg.PayGateWallet = os.Getenv("PAYGATE_WALLET_ADDRESS")
		cfg.AuthTokenKey = os.Getenv("AUTH_TOKEN_KEY")

		singleton = &cfg
	})

	return singleton, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
