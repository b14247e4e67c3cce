package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port               int      `envconfig:"port" default:"8080"`
	RootDomain         string   `envconfig:"root_domain" required:"true"`
	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	KratosAdminURL    string `envconfig:"kratos_admin_url" required:"true"`
	KratosPublicURL   string `envconfig:"kratos_public_url"`
	SessionCookieName string `envconfig:"session_cookie_name" default:"ory_kratos_session"`
	LoginUIURL        string `envconfig:"login_ui_url"`

	InvitationLifetime string  `envconfig:"invitation_lifetime" default:"24h"`
	InviteRateLimit    float64 `envconfig:"invite_rate_limit" default:"1"`
	InviteRateBurst    int     `envconfig:"invite_rate_burst" default:"10"`

	AuthenticationEnabled bool     `envconfig:"authentication_enabled" default:"false"`
	OIDCIssuer            string   `envconfig:"oidc_issuer"`
	OIDCJwksURL           string   `envconfig:"oidc_jwks_url"`
	OIDCAllowedSubjects   []string `envconfig:"oidc_allowed_subjects"`
	OIDCRequiredScope     string   `envconfig:"oidc_required_scope"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`
	DBTxTimeout       time.Duration `envconfig:"db_tx_timeout" default:"1m"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`

	RoleSyncSchedule   string        `envconfig:"role_sync_schedule" default:"@every 1m"`
	RoleSyncBatchSize  uint64        `envconfig:"role_sync_batch_size" default:"50"`
	RoleSyncMaxElapsed time.Duration `envconfig:"role_sync_max_elapsed" default:"10s"`
}
