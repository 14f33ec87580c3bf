package main

import (
	"log"

	// Packages
	telegram "github.com/mutablelogic/go-taskrelay/pkg/ui/telegram"
	version "github.com/mutablelogic/go-taskrelay/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type TelegramCmd struct {
	Token string `name:"token" env:"TELEGRAM_TOKEN" required:"" help:"Telegram bot token"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *TelegramCmd) Run(ctx *Globals) error {
	r, err := ctx.Relay()
	if err != nil {
		return err
	}

	bot, err := telegram.New(cmd.Token, r)
	if err != nil {
		return err
	}

	log.Printf("%s@%s telegram bot started", ctx.execName, version.Version())
	return bot.Run(ctx.ctx)
}
