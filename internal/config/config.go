// Package config layers command line flags, IMGSCALE_* environment
// variables and an optional imgscale.toml.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/srlehn/imgscale/internal/errors"
	"github.com/srlehn/imgscale/scale"
)

const (
	EnvPrefix  = `IMGSCALE`
	ConfigName = `imgscale`
	ConfigType = `toml`
)

// keys, shared with the flag names
const (
	KeyFactor         = `factor`
	KeyResizer        = `resizer`
	KeyFilter         = `filter`
	KeyPNGCompression = `png-compression`
	KeyLogFile        = `log-file`
	KeyLogLevel       = `log-level`
	KeyNearestOut     = `nearest-out`
	KeySharpenedOut   = `sharpened-out`
	KeyRadius         = `radius`
	KeyAmount         = `amount`
	KeyThreshold      = `threshold`
)

type Config struct {
	Factor         int
	Resizer        string
	Filter         scale.Filter // interpolation of the in place resize
	PNGCompression string
	LogFile        string
	LogLevel       string
	NearestOut     string
	SharpenedOut   string
	Mask           scale.UnsharpMask
	File           string // config file that was read, if any
}

// Load reads the layered configuration. Flags that were set win over the
// environment, which wins over the config file. An explicitly named
// config file must exist, the default one is optional.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyFactor, scale.DefaultFactor)
	v.SetDefault(KeyResizer, `default`)
	v.SetDefault(KeyFilter, scale.Lanczos.String())
	v.SetDefault(KeyPNGCompression, `default`)
	v.SetDefault(KeyLogLevel, `info`)
	v.SetDefault(KeyRadius, scale.DefaultUnsharpMask.Radius)
	v.SetDefault(KeyAmount, scale.DefaultUnsharpMask.Amount*100) // percent
	v.SetDefault(KeyThreshold, int(scale.DefaultUnsharpMask.Threshold))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(`-`, `_`))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.New(err)
		}
	}

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType(ConfigType)
		v.AddConfigPath(`.`)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if len(configFile) > 0 || !errors.As(err, &notFound) {
			return nil, errors.WrapPrefix(err, `read config`, 0)
		}
	}

	threshold := v.GetInt(KeyThreshold)
	if threshold < 0 || threshold > 255 {
		return nil, errors.Errorf(`threshold must be within 0 and 255, got %d`, threshold)
	}
	filter, err := scale.ParseFilter(v.GetString(KeyFilter))
	if err != nil {
		return nil, errors.New(err)
	}
	c := &Config{
		Factor:         v.GetInt(KeyFactor),
		Resizer:        v.GetString(KeyResizer),
		Filter:         filter,
		PNGCompression: v.GetString(KeyPNGCompression),
		LogFile:        v.GetString(KeyLogFile),
		LogLevel:       v.GetString(KeyLogLevel),
		NearestOut:     v.GetString(KeyNearestOut),
		SharpenedOut:   v.GetString(KeySharpenedOut),
		Mask: scale.UnsharpMask{
			Radius:    v.GetFloat64(KeyRadius),
			Amount:    v.GetFloat64(KeyAmount) / 100,
			Threshold: uint8(threshold),
		},
		File: v.ConfigFileUsed(),
	}
	if c.Factor < 1 {
		return nil, errors.Errorf(`factor must be a positive integer, got %d`, c.Factor)
	}
	if err := c.Mask.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
