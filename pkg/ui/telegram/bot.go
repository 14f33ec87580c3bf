// Package telegram is a capture surface for Telegram using telebot v4.
// Text messages and voice notes feed the relay; replies are rendered
// confirmations.
package telegram

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	// Packages
	taskrelay "github.com/mutablelogic/go-taskrelay"
	relay "github.com/mutablelogic/go-taskrelay/pkg/relay"
	tele "gopkg.in/telebot.v4"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Bot long-polls Telegram and relays captured instructions
type Bot struct {
	bot   *tele.Bot
	relay *relay.Relay
	ctx   context.Context
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	pollTimeout = 10 * time.Second

	helpText = "Send me a task or a grocery item, typed or spoken. " +
		"For example: \"remind me to water the plants on friday\" or " +
		"\"add milk to the grocery list\"."
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a Telegram bot for the given token
func New(token string, r *relay.Relay) (*Bot, error) {
	if r == nil {
		return nil, taskrelay.ErrBadParameter.With("missing relay")
	}
	bot, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: pollTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}

	b := &Bot{
		bot:   bot,
		relay: r,
	}

	// Register handlers
	bot.Handle(tele.OnText, b.onText)
	bot.Handle(tele.OnVoice, b.onVoice)
	bot.Handle(tele.OnAudio, b.onAudio)

	return b, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Run starts long-polling and blocks until the context is cancelled
func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx
	done := make(chan struct{})
	go func() {
		b.bot.Start()
		close(done)
	}()

	select {
	case <-ctx.Done():
		b.bot.Stop()
		<-done
		return nil
	case <-done:
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// TELEBOT HANDLERS

func (b *Bot) onText(c tele.Context) error {
	text := c.Text()
	if strings.HasPrefix(text, "/") {
		return c.Send(helpText)
	}

	outcome, err := b.relay.CaptureText(b.ctx, text)
	if err != nil {
		return c.Send(fmt.Sprintf("Error: %v", err))
	}
	return b.sendOutcome(c, outcome)
}

func (b *Bot) onVoice(c tele.Context) error {
	msg := c.Message()
	if msg == nil || msg.Voice == nil {
		return nil
	}
	mime := msg.Voice.MIME
	if mime == "" {
		mime = "audio/ogg"
	}
	return b.capture(c, &msg.Voice.File, "voice.ogg", mime)
}

func (b *Bot) onAudio(c tele.Context) error {
	msg := c.Message()
	if msg == nil || msg.Audio == nil {
		return nil
	}
	filename := msg.Audio.FileName
	if filename == "" {
		filename = "audio.mp3"
	}
	return b.capture(c, &msg.Audio.File, filename, msg.Audio.MIME)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// capture downloads an audio file into memory and relays it. The download
// is buffered because the body is closed after the handler returns.
func (b *Bot) capture(c tele.Context, file *tele.File, filename, mime string) error {
	rc, err := c.Bot().File(file)
	if err != nil {
		return c.Send(fmt.Sprintf("Error downloading audio: %v", err))
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return c.Send(fmt.Sprintf("Error reading audio: %v", err))
	}

	outcome, err := b.relay.CaptureAudio(b.ctx, filename, mime, data)
	if err != nil {
		return c.Send(fmt.Sprintf("Error: %v", err))
	}
	return b.sendOutcome(c, outcome)
}

// sendOutcome renders a confirmation as Markdown and sends it with
// Telegram entities
func (b *Bot) sendOutcome(c tele.Context, outcome *relay.Outcome) error {
	var markdown strings.Builder
	if outcome.Transcript != "" {
		fmt.Fprintf(&markdown, "Heard: *%s*\n\n", outcome.Transcript)
	}
	markdown.WriteString(outcome.Message)

	text, entities := markdownToEntities(markdown.String())
	if len(entities) == 0 {
		return c.Send(text)
	}
	return c.Send(text, &tele.SendOptions{Entities: entities})
}
