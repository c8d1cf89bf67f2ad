package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	App     App
	Bot     Bot
	Storage Storage
	Market  Market
	Alerts  Alerts
}

type App struct {
	Name           string `env:"APP_NAME" envDefault:"tg-ledger"`
	Version        string `env:"APP_VERSION" envDefault:"dev"`
	ProbeAddress   string `env:"PROBE_ADDRESS" envDefault:":8081"`
	MetricsAddress string `env:"METRICS_ADDRESS" envDefault:":9090"`
}

type Bot struct {
	Token string `env:"BOT_TOKEN,required" json:"-"`

	// The single trusted operator; everyone else is ignored.
	AdminID int64 `env:"BOT_ADMIN_ID,required" validate:"gt=0"`

	// Where alert-driven prompts go; defaults to the admin's chat.
	ChatID int64 `env:"BOT_CHAT_ID"`

	// How long an unanswered flow (profit / description prompt) stays open.
	ConversationTTL time.Duration `env:"BOT_CONVERSATION_TTL" envDefault:"30m"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("validate.Struct: %w", err)
	}

	if _, err := config.Market.CommissionRate(); err != nil {
		return Config{}, err
	}

	if config.Bot.ChatID == 0 {
		config.Bot.ChatID = config.Bot.AdminID
	}

	return config, nil
}

// mustDecimal is for accessors whose raw values were checked in Load.
func mustDecimal(raw string) decimal.Decimal {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		panic(fmt.Sprintf("config: bad decimal %q: %v", raw, err))
	}
	return value
}
