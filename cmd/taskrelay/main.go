package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Collaborators
	Ollama  `embed:"" help:"Ollama configuration"`
	Whisper `embed:"" help:"Whisper configuration"`
	Vikunja `embed:"" help:"Vikunja configuration"`
	AnyList `embed:"" help:"AnyList configuration"`

	// Capture options
	Timezone string `name:"timezone" env:"TASKRELAY_TZ" default:"UTC" help:"Civil timezone for due dates"`
	Catalog  string `name:"catalog" env:"TASKRELAY_CATALOG" help:"Tool catalog file (YAML)" type:"existingfile" optional:""`

	// Context
	ctx      context.Context
	execName string
}

type Ollama struct {
	OllamaEndpoint string `name:"ollama-url" env:"OLLAMA_URL" default:"http://localhost:11434/api" help:"Ollama endpoint"`
	OllamaModel    string `name:"ollama-model" env:"OLLAMA_MODEL" default:"qwen3" help:"Ollama chat model"`
}

type Whisper struct {
	WhisperEndpoint string `name:"whisper-url" env:"WHISPER_URL" help:"Whisper ASR endpoint"`
}

type Vikunja struct {
	VikunjaEndpoint string `name:"vikunja-url" env:"VIKUNJA_URL" help:"Vikunja API endpoint"`
	VikunjaToken    string `name:"vikunja-token" env:"VIKUNJA_TOKEN" help:"Vikunja API token"`
}

type AnyList struct {
	AnyListEndpoint string `name:"anylist-url" env:"ANYLIST_URL" help:"AnyList bridge endpoint"`
	AnyListToken    string `name:"anylist-token" env:"ANYLIST_TOKEN" help:"AnyList bridge token"`
}

type CLI struct {
	Globals

	// Commands
	Run      RunCmd      `cmd:"" help:"Run the capture server"`
	Telegram TelegramCmd `cmd:"" help:"Run the Telegram bot only"`
	Send     SendCmd     `cmd:"" help:"Capture a single instruction from the command line"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const httpTimeout = 5 * time.Minute

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Task capture relay command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context which cancels on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.execName = execName()

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
