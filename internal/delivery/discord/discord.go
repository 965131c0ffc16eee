// Package discord implements the delivery Adapter for Discord.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/zulandar/messagecraft/internal/delivery"
)

// discordSession abstracts the discordgo methods we use, enabling test mocks.
type discordSession interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	Close() error
}

// Adapter implements delivery.Adapter for Discord using the REST API
// only; no gateway connection is opened.
type Adapter struct {
	session discordSession
	channel string // default channel for messages without explicit channel
}

// AdapterOpts holds parameters for creating a Discord Adapter.
type AdapterOpts struct {
	BotToken string
	Channel  string // default channel id to post to
	// For testing: inject a mock session instead of the real API.
	Session discordSession
}

// New creates a Discord Adapter.
func New(opts AdapterOpts) (*Adapter, error) {
	if opts.Session == nil && opts.BotToken == "" {
		return nil, fmt.Errorf("discord: bot token is required")
	}
	if opts.Channel == "" {
		return nil, fmt.Errorf("discord: channel is required")
	}

	a := &Adapter{session: opts.Session, channel: opts.Channel}
	if a.session == nil {
		session, err := discordgo.New("Bot " + opts.BotToken)
		if err != nil {
			return nil, fmt.Errorf("discord: create session: %w", err)
		}
		a.session = session
	}
	return a, nil
}

// Send posts the message to the target channel.
func (a *Adapter) Send(ctx context.Context, msg delivery.Outbound) error {
	channel := msg.Channel
	if channel == "" {
		channel = a.channel
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("discord: send to %s: %w", channel, err)
	}
	if _, err := a.session.ChannelMessageSend(channel, msg.Text); err != nil {
		return fmt.Errorf("discord: send to %s: %w", channel, err)
	}
	return nil
}

// Close releases the session.
func (a *Adapter) Close() error { return a.session.Close() }
