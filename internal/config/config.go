// README: Config loader; defaults in code, overridden by config.yaml and TAXIFARE_* env vars.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type PredictConfig struct {
	URL     string
	Timeout time.Duration
}

type MapConfig struct {
	CenterLat float64
	CenterLng float64
	Zoom      int
}

type Config struct {
	AppEnv string
	HTTP   struct {
		Addr string
	}
	Predict PredictConfig
	Map     MapConfig
	Maps    struct {
		APIKey string
	}
	LookupURL string
}

func Load() (Config, error) {
	return LoadFrom(viper.New(), ".")
}

// LoadFrom reads into v from an optional config.yaml under dir, then the environment.
func LoadFrom(v *viper.Viper, dir string) (Config, error) {
	v.SetDefault("app_env", "development")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("predict.url", "https://taxifare.lewagon.ai/predict")
	v.SetDefault("predict.timeout", "10s")
	v.SetDefault("map.center_lat", 40.795020)
	v.SetDefault("map.center_lng", -73.958588)
	v.SetDefault("map.zoom", 12)
	v.SetDefault("maps.api_key", "")
	v.SetDefault("lookup_url", "https://gps-coordinates.org/")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("TAXIFARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	cfg.AppEnv = v.GetString("app_env")
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.Predict.URL = v.GetString("predict.url")
	cfg.Predict.Timeout = v.GetDuration("predict.timeout")
	cfg.Map.CenterLat = v.GetFloat64("map.center_lat")
	cfg.Map.CenterLng = v.GetFloat64("map.center_lng")
	cfg.Map.Zoom = v.GetInt("map.zoom")
	cfg.Maps.APIKey = v.GetString("maps.api_key")
	cfg.LookupURL = v.GetString("lookup_url")

	if cfg.Predict.URL == "" {
		return Config{}, errors.New("predict.url must not be empty")
	}
	if cfg.Predict.Timeout <= 0 {
		return Config{}, errors.New("predict.timeout must be positive")
	}
	return cfg, nil
}
