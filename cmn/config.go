// Package cmn provides common types, configuration, and utilities for the signing service
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/NVIDIA/cryptoserver/api/apc"
	"github.com/NVIDIA/cryptoserver/api/env"
	"github.com/NVIDIA/cryptoserver/cmn/cos"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// Config is constructed once at startup and passed by pointer to the components
// that need it; nothing modifies it once serving begins.
type (
	Config struct {
		ModeStr    string         `json:"mode" yaml:"mode"`
		Mode       Mode           `json:"-" yaml:"-"` // resolved from ModeStr
		SecretDir  string         `json:"secret_dir" yaml:"secret_dir"`
		KeyHash    string         `json:"key_hash" yaml:"key_hash"`
		Net        NetConf        `json:"net" yaml:"net"`
		Log        LogConf        `json:"log" yaml:"log"`
		Metrics    MetricsConf    `json:"metrics" yaml:"metrics"`
		Tracing    TracingConf    `json:"tracing" yaml:"tracing"`
		Supervisor SupervisorConf `json:"supervisor" yaml:"supervisor"`
	}
	NetConf struct {
		Bind        string      `json:"bind" yaml:"bind"`
		Transport   string      `json:"transport" yaml:"transport"`
		MaxConns    int         `json:"max_conns" yaml:"max_conns"`         // 0: unlimited
		MaxBodySize cos.SizeIEC `json:"max_body_size" yaml:"max_body_size"` // 0: unlimited
		Timeout     TimeoutConf `json:"timeout" yaml:"timeout"`
	}
	TimeoutConf struct {
		ReadHeader cos.Duration `json:"read_header" yaml:"read_header"`
		Read       cos.Duration `json:"read" yaml:"read"`
		Write      cos.Duration `json:"write" yaml:"write"`
		Idle       cos.Duration `json:"idle" yaml:"idle"`
	}
	LogConf struct {
		Dir      string `json:"dir" yaml:"dir"`
		ToStderr bool   `json:"to_stderr" yaml:"to_stderr"`
		Verbose  bool   `json:"verbose" yaml:"verbose"`
	}
	MetricsConf struct {
		Bind string `json:"bind" yaml:"bind"` // empty: disabled
	}
	TracingConf struct {
		ExporterEndpoint   string  `json:"exporter_endpoint" yaml:"exporter_endpoint"`
		ServiceName        string  `json:"service_name" yaml:"service_name"`
		SamplerProbability float64 `json:"sampler_probability" yaml:"sampler_probability"`
		Enabled            bool    `json:"enabled" yaml:"enabled"`
		SkipVerify         bool    `json:"skip_verify" yaml:"skip_verify"`
	}
	SupervisorConf struct {
		RetryPause cos.Duration `json:"retry_pause" yaml:"retry_pause"`
	}
)

const (
	dfltMaxConns    = 4096
	dfltMaxBodySize = 64 * cos.MiB
)

func DefaultConfig() *Config {
	return &Config{
		ModeStr:   Mode0.String(),
		Mode:      Mode0,
		SecretDir: apc.DefaultSecretDir,
		KeyHash:   apc.KeyHashMurmur3,
		Net: NetConf{
			Bind:        apc.DefaultBind,
			Transport:   apc.TransportNetHTTP,
			MaxConns:    dfltMaxConns,
			MaxBodySize: dfltMaxBodySize,
			Timeout: TimeoutConf{
				ReadHeader: cos.Duration(apc.ReadHeaderTimeout),
				Read:       cos.Duration(apc.ReadTimeout),
				Write:      cos.Duration(apc.WriteTimeout),
				Idle:       cos.Duration(apc.IdleTimeout),
			},
		},
		Tracing: TracingConf{
			ServiceName:        "cryptoserver",
			SamplerProbability: 1.0,
		},
		Supervisor: SupervisorConf{RetryPause: cos.Duration(apc.RetryPause)},
	}
}

// LoadConfig: defaults, then the (optional) config file, then environment; validated.
func LoadConfig(fpath string) (*Config, error) {
	config := DefaultConfig()
	if fpath != "" {
		if err := config.load(fpath); err != nil {
			return nil, err
		}
	}
	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}
	mode, err := ParseMode(config.ModeStr)
	if err != nil {
		return nil, err
	}
	config.Mode = mode
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) load(fpath string) error {
	b, err := os.ReadFile(fpath)
	if err != nil {
		return fmt.Errorf("failed to read config %q: %w", fpath, err)
	}
	switch strings.ToLower(filepath.Ext(fpath)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(c)
	default:
		dec := jsoniter.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(c)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config %q: %w", fpath, err)
	}
	return nil
}

func (c *Config) ApplyEnv() (err error) {
	c.ModeStr = cos.GetEnvOrDefault(env.CryptoServer.Mode, c.ModeStr)
	c.SecretDir = cos.GetEnvOrDefault(env.CryptoServer.SecretDir, c.SecretDir)
	c.KeyHash = cos.GetEnvOrDefault(env.CryptoServer.KeyHash, c.KeyHash)
	c.Net.Bind = cos.GetEnvOrDefault(env.CryptoServer.Bind, c.Net.Bind)
	c.Net.Transport = cos.GetEnvOrDefault(env.CryptoServer.Transport, c.Net.Transport)
	c.Metrics.Bind = cos.GetEnvOrDefault(env.CryptoServer.MetricsBind, c.Metrics.Bind)
	c.Log.Dir = cos.GetEnvOrDefault(env.CryptoServer.LogDir, c.Log.Dir)

	if c.Log.Verbose, err = cos.IsParseEnvBoolOrDefault(env.DEBUG, c.Log.Verbose); err != nil {
		return NewErrInvalidConfig("log.verbose", "%s: %v", env.DEBUG, err)
	}
	if v := os.Getenv(env.CryptoServer.MaxConns); v != "" {
		if c.Net.MaxConns, err = strconv.Atoi(v); err != nil {
			return NewErrInvalidConfig("net.max_conns", "%s=%q: %v", env.CryptoServer.MaxConns, v, err)
		}
	}
	if v := os.Getenv(env.CryptoServer.MaxBodySize); v != "" {
		if err = c.Net.MaxBodySize.UnmarshalText([]byte(v)); err != nil {
			return NewErrInvalidConfig("net.max_body_size", "%s=%q: %v", env.CryptoServer.MaxBodySize, v, err)
		}
	}
	return nil
}

func (c *Config) Validate() error {
	if !c.Mode.IsValid() {
		return &ErrInvalidMode{c.Mode.String()}
	}
	if c.SecretDir == "" {
		return NewErrInvalidConfig("secret_dir", "cannot be empty")
	}
	c.KeyHash = strings.ToLower(strings.TrimSpace(c.KeyHash))
	switch c.KeyHash {
	case "":
		c.KeyHash = apc.KeyHashMurmur3
	case apc.KeyHashMurmur3, apc.KeyHashXXH32:
	default:
		return NewErrInvalidConfig("key_hash", "%q (expecting %s or %s)", c.KeyHash, apc.KeyHashMurmur3, apc.KeyHashXXH32)
	}
	if err := c.Net.validate(); err != nil {
		return err
	}
	if c.Metrics.Bind != "" && c.Metrics.Bind == c.Net.Bind {
		return NewErrInvalidConfig("metrics.bind", "must differ from net.bind (%s)", c.Net.Bind)
	}
	if c.Tracing.Enabled {
		if c.Tracing.ExporterEndpoint == "" {
			return NewErrInvalidConfig("tracing.exporter_endpoint", "required when tracing is enabled")
		}
		if p := c.Tracing.SamplerProbability; p < 0 || p > 1 {
			return NewErrInvalidConfig("tracing.sampler_probability", "%v is out of [0, 1] range", p)
		}
	}
	if c.Supervisor.RetryPause <= 0 {
		return NewErrInvalidConfig("supervisor.retry_pause", "must be positive, got %s", c.Supervisor.RetryPause)
	}
	return nil
}

func (c *NetConf) validate() error {
	if c.Bind == "" {
		return NewErrInvalidConfig("net.bind", "cannot be empty")
	}
	switch c.Transport {
	case apc.TransportNetHTTP, apc.TransportFastHTTP:
	default:
		return NewErrInvalidConfig("net.transport", "%q (expecting %s or %s)", c.Transport,
			apc.TransportNetHTTP, apc.TransportFastHTTP)
	}
	if c.MaxConns < 0 {
		return NewErrInvalidConfig("net.max_conns", "cannot be negative (%d)", c.MaxConns)
	}
	if c.MaxBodySize < 0 {
		return NewErrInvalidConfig("net.max_body_size", "cannot be negative (%d)", c.MaxBodySize)
	}
	t := &c.Timeout
	if t.ReadHeader < 0 || t.Read < 0 || t.Write < 0 || t.Idle < 0 {
		return NewErrInvalidConfig("net.timeout", "cannot be negative (%+v)", *t)
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf("mode %s, secret-dir %q, key-hash %s, bind %s (%s)",
		c.Mode, c.SecretDir, c.KeyHash, c.Net.Bind, c.Net.Transport)
}
