package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/zulandar/messagecraft/internal/config"
	"github.com/zulandar/messagecraft/internal/delivery"
	"github.com/zulandar/messagecraft/internal/delivery/discord"
	"github.com/zulandar/messagecraft/internal/delivery/slack"
	"github.com/zulandar/messagecraft/internal/groq"
	"github.com/zulandar/messagecraft/internal/store"
)

const defaultConfigPath = "messagecraft.yaml"

// openStore loads config and opens the configured KV backend.
func openStore(configPath string) (*config.Config, store.KV, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	kv, err := store.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, kv, nil
}

// newCompleter builds a Groq client from cfg. When the key env var is
// unset and stdin is a terminal, the key is prompted for instead.
func newCompleter(cfg *config.Config, out *os.File) (*groq.Client, error) {
	key := os.Getenv(cfg.Groq.APIKeyEnv)
	if key == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(out, "%s is not set. Groq API key: ", cfg.Groq.APIKeyEnv)
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return nil, fmt.Errorf("read api key: %w", err)
		}
		key = strings.TrimSpace(string(raw))
	}

	return groq.New(groq.Opts{
		BaseURL:     cfg.Groq.BaseURL,
		APIKey:      key,
		Model:       cfg.Groq.Model,
		MaxTokens:   cfg.Groq.MaxTokens,
		Temperature: cfg.Groq.Temperature,
	})
}

// buildDelivery constructs the delivery registry from cfg. Targets
// without a channel are skipped; a configured channel with a missing
// token is an error.
func buildDelivery(cfg *config.Config) (*delivery.Registry, error) {
	registry := delivery.NewRegistry()

	if cfg.Delivery.Slack.Channel != "" {
		a, err := slack.New(slack.AdapterOpts{
			BotToken: os.Getenv(cfg.Delivery.Slack.TokenEnv),
			Channel:  cfg.Delivery.Slack.Channel,
		})
		if err != nil {
			return nil, err
		}
		registry.Register("slack", a)
	}

	if cfg.Delivery.Discord.Channel != "" {
		a, err := discord.New(discord.AdapterOpts{
			BotToken: os.Getenv(cfg.Delivery.Discord.TokenEnv),
			Channel:  cfg.Delivery.Discord.Channel,
		})
		if err != nil {
			return nil, err
		}
		registry.Register("discord", a)
	}

	return registry, nil
}
