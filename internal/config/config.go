package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // containers often ship without zoneinfo

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/kelseyhightower/envconfig"
	"github.com/subosito/gotenv"
)

const (
	BackendFile = "file"
	BackendBolt = "bolt"

	DefaultDotEnv = ".env"
)

type Config struct {
	Dev bool `envconfig:"DEV" default:"false"`

	TelegramToken         string `envconfig:"TELEGRAM_TOKEN"`
	TelegramTokenSSMParam string `envconfig:"TELEGRAM_TOKEN_SSM_PARAM" default:"/site-monitor-bot/prod/telegram-token"`
	AdminChatID           int64  `envconfig:"TELEGRAM_CHAT_ADMIN_ID"`

	Endpoints        []string      `envconfig:"ENDPOINTS"`
	RetryTime        int           `envconfig:"RETRY_TIME" default:"14400"`
	ProbeTimeout     time.Duration `envconfig:"PROBE_TIMEOUT" default:"30s"`
	ProbeConcurrency int           `envconfig:"PROBE_CONCURRENCY" default:"4"`
	ProbeUserAgent   string        `envconfig:"PROBE_USER_AGENT" default:"site-monitor-bot/1.0"`
	DeliveryTimeout  time.Duration `envconfig:"DELIVERY_TIMEOUT" default:"10s"`

	StoreBackend    string `envconfig:"STORE_BACKEND" default:"file"`
	SubscribersFile string `envconfig:"SUBSCRIBERS_FILE" default:"subscribers.env"`
	SubscribersKey  string `envconfig:"SUBSCRIBERS_KEY" default:"TELEGRAM_CHAT_ID"`
	DBPath          string `envconfig:"DB_PATH" default:"data/site-monitor.db"`

	Timezone    string `envconfig:"TIMEZONE" default:"Europe/Moscow"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile     string `envconfig:"LOG_FILE"`
	MetricsAddr string `envconfig:"METRICS_ADDR"`

	LogFileMaxSizeMB  int `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"50"`
	LogFileMaxBackups int `envconfig:"LOG_FILE_MAX_BACKUPS" default:"2"`

	location *time.Location
	logLevel slog.Level
}

// TokenFetcher resolves the telegram token by parameter name
type TokenFetcher func(ctx context.Context, name string) (string, error)

func New(ctx context.Context) (*Config, error) {
	return Load(ctx, DefaultDotEnv, FetchSSMParameter)
}

// Load reads variables from dotenv (when the file exists) and the environment,
// already set environment variables win. The token is fetched with fetch when it is
// not set outside dev mode.
func Load(ctx context.Context, dotenv string, fetch TokenFetcher) (*Config, error) {
	if dotenv != "" {
		if err := gotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigurationError{Err: fmt.Errorf("load %s: %w", dotenv, err)}
		}
	}

	res := &Config{}
	if err := envconfig.Process("", res); err != nil {
		return nil, &ConfigurationError{Err: fmt.Errorf("envconfig process: %w", err)}
	}
	res.Endpoints = normalizeEndpoints(res.Endpoints)

	if res.TelegramToken == "" && !res.Dev && fetch != nil {
		token, err := fetch(ctx, res.TelegramTokenSSMParam)
		if err != nil {
			return nil, &ConfigurationError{Err: fmt.Errorf("get telegram token: %w", err)}
		}
		res.TelegramToken = token
	}

	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

// Validate checks required values and resolves the time zone and log level
func (c *Config) Validate() error {
	res := &ConfigurationError{}

	if c.TelegramToken == "" {
		res.Missing = append(res.Missing, "TELEGRAM_TOKEN")
	}
	if c.AdminChatID == 0 {
		res.Missing = append(res.Missing, "TELEGRAM_CHAT_ADMIN_ID")
	}

	if len(c.Endpoints) == 0 {
		res.Missing = append(res.Missing, "ENDPOINTS")
	}
	for _, e := range c.Endpoints {
		if err := validateEndpoint(e); err != nil {
			res.Invalid = append(res.Invalid, fmt.Sprintf("ENDPOINTS: %q %v", e, err))
		}
	}

	if c.RetryTime <= 0 {
		res.Invalid = append(res.Invalid, fmt.Sprintf("RETRY_TIME: must be positive, got %d", c.RetryTime))
	}
	if c.ProbeTimeout <= 0 {
		res.Invalid = append(res.Invalid, fmt.Sprintf("PROBE_TIMEOUT: must be positive, got %s", c.ProbeTimeout))
	}
	if c.ProbeConcurrency <= 0 {
		res.Invalid = append(res.Invalid, fmt.Sprintf("PROBE_CONCURRENCY: must be positive, got %d", c.ProbeConcurrency))
	}
	if c.DeliveryTimeout <= 0 {
		res.Invalid = append(res.Invalid, fmt.Sprintf("DELIVERY_TIMEOUT: must be positive, got %s", c.DeliveryTimeout))
	}

	switch c.StoreBackend {
	case BackendFile:
		c.validateSubscribersFile(res)
	case BackendBolt:
	default:
		res.Invalid = append(res.Invalid, fmt.Sprintf("STORE_BACKEND: %q is not one of %s, %s", c.StoreBackend, BackendFile, BackendBolt))
	}
	if c.DBPath == "" {
		res.Missing = append(res.Missing, "DB_PATH")
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		res.Invalid = append(res.Invalid, fmt.Sprintf("TIMEZONE: %v", err))
	}
	c.location = loc

	if c.LogFile != "" {
		if c.LogFileMaxSizeMB <= 0 {
			res.Invalid = append(res.Invalid, fmt.Sprintf("LOG_FILE_MAX_SIZE_MB: must be positive, got %d", c.LogFileMaxSizeMB))
		}
		if c.LogFileMaxBackups < 0 {
			res.Invalid = append(res.Invalid, fmt.Sprintf("LOG_FILE_MAX_BACKUPS: must not be negative, got %d", c.LogFileMaxBackups))
		}
	}

	if err := c.logLevel.UnmarshalText([]byte(c.LogLevel)); err != nil {
		res.Invalid = append(res.Invalid, fmt.Sprintf("LOG_LEVEL: %v", err))
	}

	if len(res.Missing) > 0 || len(res.Invalid) > 0 {
		return res
	}
	return nil
}

// Interval between check cycles
func (c *Config) Interval() time.Duration {
	return time.Duration(c.RetryTime) * time.Second
}

func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

func (c *Config) Level() slog.Level {
	if c.Dev {
		return slog.LevelDebug
	}
	return c.logLevel
}

func (c *Config) validateSubscribersFile(res *ConfigurationError) {
	if c.SubscribersFile == "" {
		res.Missing = append(res.Missing, "SUBSCRIBERS_FILE")
		return
	}
	if c.SubscribersKey == "" {
		res.Missing = append(res.Missing, "SUBSCRIBERS_KEY")
	}

	dir := filepath.Dir(c.SubscribersFile)
	info, err := os.Stat(dir)
	switch {
	case err != nil:
		res.Invalid = append(res.Invalid, fmt.Sprintf("SUBSCRIBERS_FILE: directory %s: %v", dir, err))
	case !info.IsDir():
		res.Invalid = append(res.Invalid, fmt.Sprintf("SUBSCRIBERS_FILE: %s is not a directory", dir))
	}
}

func validateEndpoint(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("scheme must be http or https")
	}
	if u.Host == "" {
		return errors.New("host is empty")
	}
	return nil
}

func normalizeEndpoints(endpoints []string) []string {
	res := make([]string, 0, len(endpoints))
	for _, e := range endpoints {
		if e = strings.TrimSpace(e); e != "" {
			res = append(res, e)
		}
	}
	return res
}

// FetchSSMParameter reads a secure string from AWS SSM Parameter Store
func FetchSSMParameter(ctx context.Context, name string) (string, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("load aws config: %w", err)
	}
	ssmClient := ssm.NewFromConfig(cfg)

	param, err := ssmClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM parameter %s: %w", name, err)
	}
	if param.Parameter == nil || param.Parameter.Value == nil {
		return "", fmt.Errorf("SSM parameter %s not found", name)
	}

	return *param.Parameter.Value, nil
}
