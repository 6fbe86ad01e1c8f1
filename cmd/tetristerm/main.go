package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/qnkhuat/tetristerm/pkg"
	"github.com/qnkhuat/tetristerm/pkg/config"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/gui"
)

const eventQueueSize = 64

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	logPath := flag.String("log", "./log", "path to log file")
	seed := flag.Int64("seed", 0, "piece randomizer seed, 0 picks one")
	nick := flag.String("nick", "", "nickname")
	logDebug := flag.Bool("debug", false, "enable debug logging")
	logVerbose := flag.Bool("verbose", false, "enable verbose logging")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fail("failed to start tetristerm: non-interactive terminals are not supported")
	}

	pkg.InitLog(*logPath, "TETRIS: ")

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fail(err.Error())
		}
	}

	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *nick != "" {
		cfg.Nickname = *nick
	} else if cfg.Nickname == "" {
		cfg.Nickname = petname.Generate(2, "-")
	}
	if *logVerbose {
		cfg.LogLevel = game.LogVerbose
	} else if *logDebug {
		cfg.LogLevel = game.LogDebug
	}

	events := make(chan interface{}, eventQueueSize)

	g, err := game.New(cfg.GameOptions(events))
	if err != nil {
		fail(err.Error())
	}

	opts, err := cfg.GUIOptions()
	if err != nil {
		fail(err.Error())
	}

	ui := gui.New(g, events, opts)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		ui.Stop()
	}()

	log.Printf("New game for %s", cfg.Nickname)
	if err := ui.Run(); err != nil {
		log.Printf("game stopped: %v", err)
		fail(err.Error())
	}

	log.Printf("Quit with score %d", g.Score())

	color.New(color.FgCyan).Printf("%s ", cfg.Nickname)
	fmt.Printf("scored ")
	color.New(color.FgGreen, color.Bold).Printf("%d", g.Score())
	fmt.Printf(" clearing %d lines\n", g.Lines())
}

func fail(msg string) {
	color.New(color.FgRed).Fprintln(os.Stderr, msg)
	os.Exit(1)
}
