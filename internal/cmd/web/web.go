// Package web parses web command configuration and runs the web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/nexttodo/todolist/internal/platform/config"
	"github.com/nexttodo/todolist/internal/platform/otel"
	"github.com/nexttodo/todolist/internal/platform/timeouts"
	"github.com/nexttodo/todolist/internal/services/web"
	webtemplates "github.com/nexttodo/todolist/internal/services/web/templates"
)

// ServiceName identifies the web process in telemetry.
const ServiceName = "web"

// Config holds the web command configuration.
type Config struct {
	HTTPAddr      string `env:"TODOLIST_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	AssetBaseURL  string `env:"TODOLIST_WEB_ASSET_BASE_URL"`
	HTMXScriptURL string `env:"TODOLIST_WEB_HTMX_SCRIPT_URL"`
	PriceAmount   int64  `env:"TODOLIST_WEB_PRICE_AMOUNT" envDefault:"1999"`
	PriceCurrency string `env:"TODOLIST_WEB_PRICE_CURRENCY" envDefault:"USD"`

	price webtemplates.Price
}

// ParseConfig loads env defaults, then applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "Base URL for image assets (empty serves them locally)")
	fs.StringVar(&cfg.HTMXScriptURL, "htmx-script-url", cfg.HTMXScriptURL, "htmx script URL (empty disables client-side navigation)")
	fs.Int64Var(&cfg.PriceAmount, "price-amount", cfg.PriceAmount, "Landing page price in minor units")
	fs.StringVar(&cfg.PriceCurrency, "price-currency", cfg.PriceCurrency, "Landing page price ISO 4217 currency")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	price, err := webtemplates.NewPrice(cfg.PriceAmount, strings.TrimSpace(cfg.PriceCurrency))
	if err != nil {
		return Config{}, fmt.Errorf("price: %w", err)
	}
	cfg.price = price
	return cfg, nil
}

// Run starts the web server with tracing configured for the process.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.TracerShutdown)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", ServiceName, err)
		}
	}()

	server, err := web.NewServer(ctx, web.Config{
		HTTPAddr:      cfg.HTTPAddr,
		AssetBaseURL:  cfg.AssetBaseURL,
		HTMXScriptURL: cfg.HTMXScriptURL,
		Price:         cfg.price,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
