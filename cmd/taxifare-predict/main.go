// README: Command-line fare prediction; sends one ride to the endpoint and prints the banner text.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"time"

	"taxifare/internal/config"
	"taxifare/internal/modules/pricing"
	"taxifare/internal/modules/ride"
)

type Config struct {
	Endpoint string
	Timeout  time.Duration
	Form     url.Values
}

func loadConfig(args []string) (Config, error) {
	base, err := config.Load()
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	fs := flag.NewFlagSet("taxifare-predict", flag.ContinueOnError)
	cfg := Config{Form: url.Values{}}
	fs.StringVar(&cfg.Endpoint, "endpoint", base.Predict.URL, "prediction endpoint")
	fs.DurationVar(&cfg.Timeout, "timeout", base.Predict.Timeout, "request timeout")

	values := map[string]*string{}
	for _, field := range []string{
		ride.FieldDate, ride.FieldTime,
		ride.FieldPickupLat, ride.FieldPickupLng,
		ride.FieldDropoffLat, ride.FieldDropoffLng,
		ride.FieldPassengerCount,
	} {
		values[field] = fs.String(field, "", field+" (optional)")
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	for field, v := range values {
		if *v != "" {
			cfg.Form.Set(field, *v)
		}
	}
	return cfg, nil
}

func run(ctx context.Context, args []string) (string, error) {
	cfg, err := loadConfig(args)
	if err != nil {
		return "", err
	}
	form := ride.NewForm(time.Now())
	for field := range cfg.Form {
		if err := form.Set(field, cfg.Form.Get(field)); err != nil {
			return "", err
		}
	}
	req := form.Snapshot()
	result := pricing.NewClient(cfg.Endpoint, cfg.Timeout).Predict(ctx, req)
	if !result.OK() {
		return result.Message(), fmt.Errorf("prediction failed")
	}
	return result.Message(), nil
}

func main() {
	msg, err := run(context.Background(), os.Args[1:])
	if msg != "" {
		fmt.Println(msg)
	}
	if err != nil {
		if msg == "" {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
