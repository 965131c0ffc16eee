// Package slack implements the delivery Adapter for Slack via the Web API.
package slack

import (
	"context"
	"fmt"

	slackapi "github.com/slack-go/slack"
	"github.com/zulandar/messagecraft/internal/delivery"
)

// slackClient abstracts the Slack API methods we use, enabling test mocks.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

// Adapter implements delivery.Adapter for Slack.
type Adapter struct {
	client  slackClient
	channel string // default channel for messages without explicit channel
}

// AdapterOpts holds parameters for creating a Slack Adapter.
type AdapterOpts struct {
	BotToken string // xoxb-... Slack bot token
	Channel  string // default channel to post to
	// For testing: inject a mock client instead of the real Slack API.
	Client slackClient
}

// New creates a Slack Adapter.
func New(opts AdapterOpts) (*Adapter, error) {
	if opts.Client == nil && opts.BotToken == "" {
		return nil, fmt.Errorf("slack: bot token is required")
	}
	if opts.Channel == "" {
		return nil, fmt.Errorf("slack: channel is required")
	}

	a := &Adapter{client: opts.Client, channel: opts.Channel}
	if a.client == nil {
		a.client = slackapi.New(opts.BotToken)
	}
	return a, nil
}

// Send posts the message to the target channel.
func (a *Adapter) Send(ctx context.Context, msg delivery.Outbound) error {
	channel := msg.Channel
	if channel == "" {
		channel = a.channel
	}
	_, _, err := a.client.PostMessageContext(ctx, channel, slackapi.MsgOptionText(msg.Text, false))
	if err != nil {
		return fmt.Errorf("slack: post to %s: %w", channel, err)
	}
	return nil
}

// Close is a no-op; the Web API client holds no connection.
func (a *Adapter) Close() error { return nil }
