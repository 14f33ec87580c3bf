package main

import (
	"fmt"
	"os"
	"strings"

	// Packages
	taskrelay "github.com/mutablelogic/go-taskrelay"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type SendCmd struct {
	Prompt []string `arg:"" optional:"" help:"Instruction text, or an audio file path with --audio"`
	Audio  bool     `name:"audio" help:"Treat the argument as an audio file"`
	System bool     `name:"system" help:"Print the system prompt and exit"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *SendCmd) Run(ctx *Globals) error {
	r, err := ctx.Relay()
	if err != nil {
		return err
	}

	// Print the rendered system prompt
	if cmd.System {
		fmt.Println(r.SystemPrompt())
		return nil
	}
	if len(cmd.Prompt) == 0 {
		return taskrelay.ErrBadParameter.With("missing instruction")
	}

	// Capture from an audio file or from the command line
	if cmd.Audio {
		path := cmd.Prompt[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		outcome, err := r.CaptureAudio(ctx.ctx, path, "application/octet-stream", data)
		if err != nil {
			return err
		}
		fmt.Println(outcome)
		return nil
	}

	outcome, err := r.CaptureText(ctx.ctx, strings.Join(cmd.Prompt, " "))
	if err != nil {
		return err
	}
	fmt.Println(outcome)
	return nil
}
