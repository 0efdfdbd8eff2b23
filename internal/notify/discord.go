package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	colorGreen  = 0x2ECC71 // accepted
	colorYellow = 0xF1C40F // pending, raised, countered
	colorRed    = 0xE74C3C // rejected, below minimum
	colorGray   = 0x95A5A6 // expired
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Send delivers an offer event as a Discord embed.
func (d *DiscordNotifier) Send(ctx context.Context, event Event) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(event)},
	}
	return d.post(ctx, payload)
}

func buildEmbed(event Event) discordEmbed {
	if event.Kind == EventOffersExpired {
		return discordEmbed{
			Title:       "Offers expired",
			Color:       colorGray,
			Description: fmt.Sprintf("%d pending offers passed their expiry window.", event.ExpiredCount),
		}
	}

	property := event.PropertyTitle
	if property == "" {
		property = event.Offer.PropertyID
	}

	embed := discordEmbed{
		Title: fmt.Sprintf("%s: %s", eventTitle(event.Kind), property),
		Color: eventColor(event.Kind),
		Fields: []discordEmbedField{
			{Name: "Buyer", Value: event.BuyerName, Inline: true},
			{Name: "Offered", Value: fmt.Sprintf("$%.2f", event.Offer.OfferedPrice), Inline: true},
			{Name: "Status", Value: string(event.Offer.Status), Inline: true},
		},
	}

	if event.Offer.CounterPrice != nil {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name:   "Counter",
			Value:  fmt.Sprintf("$%.2f", *event.Offer.CounterPrice),
			Inline: true,
		})
	}

	return embed
}

func eventTitle(kind EventKind) string {
	switch kind {
	case EventOfferSubmitted:
		return "New offer"
	case EventOfferBelowMinimum:
		return "Offer below minimum"
	case EventOfferRaised:
		return "Offer raised"
	case EventOfferAccepted:
		return "Offer accepted"
	case EventOfferRejected:
		return "Offer rejected"
	case EventOfferCountered:
		return "Offer countered"
	default:
		return "Offer update"
	}
}

func eventColor(kind EventKind) int {
	switch kind {
	case EventOfferAccepted:
		return colorGreen
	case EventOfferRejected, EventOfferBelowMinimum:
		return colorRed
	case EventOffersExpired:
		return colorGray
	default:
		return colorYellow
	}
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
