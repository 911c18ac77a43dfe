package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultCacheTTL         = 24 * time.Hour
	defaultOSMMinInterval   = time.Second
	defaultOSMMaxResults    = 20
	defaultSearchTimeout    = 10 * time.Second
	defaultSpinHistoryLimit = 50
	defaultMinExtraTurns    = 5
	defaultMaxExtraTurns    = 8
	defaultQRCodeSize       = 256
	defaultAccessTTL        = 7 * 24 * time.Hour

	defaultNominatimURL = "https://nominatim.openstreetmap.org/search"
	defaultOverpassURL  = "https://overpass-api.de/api/interpreter"
	defaultUserAgent    = "JustChooseAlready/1.0 (https://justchoosealready.com; contact@justchoosealready.com)"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// PublicBaseURL is the externally reachable origin used in replay links.
		PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
		Timeouts      struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	// Admin lists the identities allowed to change provider entitlements
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	// Places configures the premium and free place providers
	Places *PlacesConfig `json:"places" yaml:"places"`

	// Cache configures the search/geocode result cache
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	Spin *SpinConfig `json:"spin" yaml:"spin"`

	// PubSub configuration for asynchronous spin recording
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for spin replay QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// SecretKeyConfig holds the session token signing settings
type SecretKeyConfig struct {
	Access    string        `json:"access" yaml:"access"`
	AccessTTL time.Duration `json:"accessTtl" yaml:"accessTtl"`
}

type GoogleOAuthConfig struct {
	// ClientID is the audience expected in Google ID tokens
	ClientID string `json:"clientId" yaml:"clientId"`
}

// AdminConfig defines the administrator allow-list
type AdminConfig struct {
	Emails []string `json:"emails" yaml:"emails"`
}

// IsAdmin reports whether email belongs to the allow-list (case-insensitive).
func (c *AdminConfig) IsAdmin(email string) bool {
	if c == nil || email == "" {
		return false
	}

	for _, admin := range c.Emails {
		if strings.EqualFold(strings.TrimSpace(admin), email) {
			return true
		}
	}

	return false
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PlacesConfig defines provider credentials and behaviour
type PlacesConfig struct {
	// GoogleAPIKey enables the premium provider when non-empty
	GoogleAPIKey string `json:"googleApiKey" yaml:"googleApiKey"`

	// Region biases Google geocoding results (ccTLD, e.g. "us")
	Region string `json:"region" yaml:"region"`

	// SearchTimeout bounds each outbound provider call
	SearchTimeout time.Duration `json:"searchTimeout" yaml:"searchTimeout"`

	OSM OSMConfig `json:"osm" yaml:"osm"`
}

// OSMConfig defines the OpenStreetMap (Nominatim + Overpass) endpoints and usage policy settings
type OSMConfig struct {
	NominatimURL string        `json:"nominatimUrl" yaml:"nominatimUrl"`
	OverpassURL  string        `json:"overpassUrl" yaml:"overpassUrl"`
	UserAgent    string        `json:"userAgent" yaml:"userAgent"`
	MinInterval  time.Duration `json:"minInterval" yaml:"minInterval"`
	MaxResults   int           `json:"maxResults" yaml:"maxResults"`
	CountryCodes string        `json:"countryCodes" yaml:"countryCodes"`
}

// CacheConfig defines the result cache backend
type CacheConfig struct {
	// Backend is one of "postgres", "redis" or "memory"
	Backend string        `json:"backend" yaml:"backend"`
	TTL     time.Duration `json:"ttl" yaml:"ttl"`
	Redis   RedisConfig   `json:"redis" yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// SpinConfig defines spin history and animation settings
type SpinConfig struct {
	HistoryLimit  int `json:"historyLimit" yaml:"historyLimit"`
	MinExtraTurns int `json:"minExtraTurns" yaml:"minExtraTurns"`
	MaxExtraTurns int `json:"maxExtraTurns" yaml:"maxExtraTurns"`
}

// PubSubConfig defines Pub/Sub configuration for spin recording
type PubSubConfig struct {
	// Provider type: "" for direct writes, "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// ENV_VAR_NAME is mapped onto the matching YAML path, e.g. PLACES_GOOGLEAPIKEY -> places.googleApiKey
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills every optional section so that consumers never see nil.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.SecretKey.AccessTTL <= 0 {
		cfg.SecretKey.AccessTTL = defaultAccessTTL
	}

	if cfg.GoogleOAuth == nil {
		cfg.GoogleOAuth = &GoogleOAuthConfig{}
	}
	if cfg.Admin == nil {
		cfg.Admin = &AdminConfig{}
	}

	if cfg.Places == nil {
		cfg.Places = &PlacesConfig{}
	}
	if cfg.Places.SearchTimeout <= 0 {
		cfg.Places.SearchTimeout = defaultSearchTimeout
	}
	osm := &cfg.Places.OSM
	if osm.NominatimURL == "" {
		osm.NominatimURL = defaultNominatimURL
	}
	if osm.OverpassURL == "" {
		osm.OverpassURL = defaultOverpassURL
	}
	if osm.UserAgent == "" {
		osm.UserAgent = defaultUserAgent
	}
	if osm.MinInterval <= 0 {
		osm.MinInterval = defaultOSMMinInterval
	}
	if osm.MaxResults <= 0 {
		osm.MaxResults = defaultOSMMaxResults
	}
	if osm.CountryCodes == "" {
		osm.CountryCodes = "us"
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "postgres"
	}
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = defaultCacheTTL
	}

	if cfg.Spin == nil {
		cfg.Spin = &SpinConfig{}
	}
	if cfg.Spin.HistoryLimit <= 0 {
		cfg.Spin.HistoryLimit = defaultSpinHistoryLimit
	}
	if cfg.Spin.MinExtraTurns <= 0 {
		cfg.Spin.MinExtraTurns = defaultMinExtraTurns
	}
	if cfg.Spin.MaxExtraTurns < cfg.Spin.MinExtraTurns {
		cfg.Spin.MaxExtraTurns = max(defaultMaxExtraTurns, cfg.Spin.MinExtraTurns)
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = "M"
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from POSTGRES_REPLICAS_{index}_{field} variables.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
