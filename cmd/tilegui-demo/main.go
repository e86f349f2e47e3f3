// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/tilegui-demo/main.go
// Summary: Terminal demo of the UI engine widgets.
// Usage: tilegui-demo [-config path] [-fps n] [-write-config]

package main

import (
	"flag"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/framegrace/tilegui/config"
	"github.com/framegrace/tilegui/internal/devshell"
	"github.com/framegrace/tilegui/tileui/core"
)

func main() {
	defaultPath, err := config.DefaultPath()
	if err != nil {
		defaultPath = ""
	}
	configPath := flag.String("config", defaultPath, "path to the ui config file")
	fps := flag.Int("fps", 30, "frames per second")
	writeConfig := flag.Bool("write-config", false, "write the effective config back to -config and exit")
	flag.Parse()

	cfg := config.Config{}
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Printf("tilegui-demo: %v, using defaults", err)
		}
	}
	core.RegisterDefaults(cfg)

	if *writeConfig {
		if *configPath == "" {
			log.Fatalf("tilegui-demo: no config path")
		}
		if err := config.Save(*configPath, cfg); err != nil {
			log.Fatalf("tilegui-demo: %v", err)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatalf("tilegui-demo: stdout is not a terminal")
	}
	// The terminal belongs to the UI once it starts.
	log.SetOutput(io.Discard)

	opts := devshell.DefaultOptions()
	opts.Engine = core.OptionsFromConfig(cfg)
	opts.FrameRate = *fps

	devshell.Register("widgets", buildDemo)
	if err := devshell.RunApp("widgets", opts); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("tilegui-demo: %v", err)
	}
}
