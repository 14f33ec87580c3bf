package main

import (
	"crypto/tls"
	"fmt"
	"log"
	"os"

	// Packages
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	httpserver "github.com/mutablelogic/go-server/pkg/httpserver"
	httphandler "github.com/mutablelogic/go-taskrelay/pkg/httphandler"
	telegram "github.com/mutablelogic/go-taskrelay/pkg/ui/telegram"
	version "github.com/mutablelogic/go-taskrelay/pkg/version"
	errgroup "golang.org/x/sync/errgroup"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type RunCmd struct {
	HTTP struct {
		Addr   string `name:"addr" env:"TASKRELAY_ADDR" default:":8080" help:"Listen address"`
		Prefix string `name:"prefix" default:"/" help:"Path prefix for endpoints"`
		Origin string `name:"origin" default:"*" help:"CORS origin"`
	} `embed:"" prefix:"http."`

	TLS struct {
		ServerName string `name:"name" help:"TLS server name"`
		CertFile   string `name:"cert" help:"TLS certificate file"`
		KeyFile    string `name:"key" help:"TLS key file"`
	} `embed:"" prefix:"tls."`

	TelegramToken string `name:"telegram-token" env:"TELEGRAM_TOKEN" help:"Telegram bot token, runs the bot alongside the server"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *RunCmd) Run(ctx *Globals) error {
	r, err := ctx.Relay()
	if err != nil {
		return err
	}

	// Create the TLS config if TLS options are provided
	var tlsConfig *tls.Config
	if cmd.TLS.CertFile != "" || cmd.TLS.KeyFile != "" {
		var pemData [][]byte
		if cmd.TLS.CertFile != "" {
			certData, err := os.ReadFile(cmd.TLS.CertFile)
			if err != nil {
				return fmt.Errorf("failed to read TLS certificate: %w", err)
			}
			pemData = append(pemData, certData)
		}
		if cmd.TLS.KeyFile != "" {
			keyData, err := os.ReadFile(cmd.TLS.KeyFile)
			if err != nil {
				return fmt.Errorf("failed to read TLS key: %w", err)
			}
			pemData = append(pemData, keyData)
		}
		tlsConfig, err = httpserver.TLSConfig(cmd.TLS.ServerName, false, pemData...)
		if err != nil {
			return fmt.Errorf("failed to create TLS config: %w", err)
		}
	}

	// Create the server
	server, err := httpserver.New(cmd.HTTP.Addr, tlsConfig)
	if err != nil {
		return err
	}

	// Create the HTTP router and register the capture endpoints
	router, err := httprouter.NewRouter(ctx.ctx, server.Router(), cmd.HTTP.Prefix, cmd.HTTP.Origin, "Task Relay", version.Version())
	if err != nil {
		return err
	} else if err := httphandler.RegisterHandlers(r, router, true); err != nil {
		return err
	}

	// Run the server, and the Telegram bot alongside when a token is set
	group, groupCtx := errgroup.WithContext(ctx.ctx)
	group.Go(func() error {
		log.Printf("%s@%s started on %s", ctx.execName, version.Version(), cmd.HTTP.Addr)
		return server.Run(groupCtx)
	})
	if cmd.TelegramToken != "" {
		bot, err := telegram.New(cmd.TelegramToken, r)
		if err != nil {
			return err
		}
		group.Go(func() error {
			return bot.Run(groupCtx)
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	log.Printf("%s@%s stopped", ctx.execName, version.Version())
	return nil
}
