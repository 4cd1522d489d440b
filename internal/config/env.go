package config

type Database struct {
	Host     string `mapstructure:"DATABASE_HOST" default:"localhost"`
	Port     int    `mapstructure:"DATABASE_PORT" default:"5432"`
	Name     string `mapstructure:"DATABASE_NAME" default:"novomd"`
	User     string `mapstructure:"DATABASE_USER" default:"postgres"`
	Password string `mapstructure:"DATABASE_PASSWORD" default:"novomd"`
}

type Redis struct {
	Host     string `mapstructure:"REDIS_HOST" default:"127.0.0.1"`
	Port     int    `mapstructure:"REDIS_PORT" default:"6379"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB" default:"0"`
}

type Server struct {
	Platform string `mapstructure:"PLATFORM" default:"novomd"`
	Service  string `mapstructure:"SERVICE" default:"api"`
	Port     int    `mapstructure:"WEB_PORT" default:"8080"`
	Env      string `mapstructure:"ENV" default:"dev"`
}

// Auth carries the service-account credential set. Tokens are HS256 JWTs
// signed with Secret.
type Auth struct {
	Secret       string `mapstructure:"AUTH_SECRET" default:"novomd-dev-secret"`
	ClientID     string `mapstructure:"AUTH_CLIENT_ID" default:"novomd"`
	ClientSecret string `mapstructure:"AUTH_CLIENT_SECRET" default:""`
	TokenTTLMin  int    `mapstructure:"AUTH_TOKEN_TTL_MIN" default:"720"`
}

type RPC struct {
	PubChem RPCPubChem `mapstructure:",squash"`
}

type RPCPubChem struct {
	Addr string `mapstructure:"PUBCHEM_ADDR" default:"https://pubchem.ncbi.nlm.nih.gov"`
}

type Log struct {
	LogPath  string `mapstructure:"LOG_PATH" default:"./info.log"`
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
}

type Trace struct {
	Version        string `mapstructure:"TRACE_VERSION" default:"0.0.1"`
	TraceEndpoint  string `mapstructure:"TRACE_TRACEENDPOINT" default:""`
	MetricEndpoint string `mapstructure:"TRACE_METRICENDPOINT" default:""`
}

type RateLimit struct {
	Enabled   bool `mapstructure:"RATELIMIT_ENABLED" default:"true"`
	PerMinute int  `mapstructure:"RATELIMIT_PER_MINUTE" default:"120"`
}

// Compute bounds the calculation fan-out.
type Compute struct {
	PoolSize       int `mapstructure:"COMPUTE_POOL_SIZE" default:"64"`
	SASAPoints     int `mapstructure:"COMPUTE_SASA_POINTS" default:"960"`
	RequestTimeout int `mapstructure:"COMPUTE_TIMEOUT_SEC" default:"30"`
	ParseCacheSize int `mapstructure:"COMPUTE_PARSE_CACHE" default:"4096"`
}
