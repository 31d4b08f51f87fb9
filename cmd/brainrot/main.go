package main

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/DaanHessen/brainrot-tui/internal/ui"
	"github.com/DaanHessen/brainrot-tui/internal/util"
)

var (
	version      = "0.1.0"
	seedAlphabet = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg, err := util.LoadEnv()
	if err != nil {
		log.Fatal(err)
	}

	seedFlag := flag.String("seed", cfg.SeedText, "Session seed string (optional; random if omitted)")
	duration := flag.Int("duration", cfg.Duration, "Clip duration in seconds (5-60)")
	intensity := flag.Int("intensity", cfg.Intensity, "Brainrot intensity (1-10, cosmetic)")
	theme := flag.String("theme", cfg.Theme, "Theme: catppuccin|dracula|gruvbox|solarized_dark")
	logFile := flag.String("log", cfg.LogFile, "Write logs to this file while the UI runs")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "brainrot [--seed s] [--duration 5-60] [--intensity 1-10] [--theme name] [--log file] | simulate [generate|replay] | version\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg.Duration = *duration
	cfg.Intensity = *intensity
	cfg.Theme = *theme
	cfg.LogFile = *logFile
	cfg.SeedText = *seedFlag
	if err := resolveSeed(&cfg, os.Stderr); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := flag.Args()
	if len(args) > 0 {
		switch args[0] {
		case "version":
			fmt.Println("brainrot", version)
			return
		case "simulate":
			mode := "generate"
			if len(args) > 1 {
				mode = args[1]
			}
			if err := simulate(ctx, cfg, mode, os.Stdout); err != nil {
				log.Fatal(err)
			}
			return
		default:
			flag.Usage()
			os.Exit(2)
		}
	}

	// The UI owns the terminal; logs go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "brainrot")
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if err := ui.Run(ctx, cfg, version); err != nil {
		log.Fatal(err)
	}
}

// resolveSeed fills in a random seed when none was given and announces it on w.
func resolveSeed(cfg *util.Config, w io.Writer) error {
	cfg.SeedText = strings.TrimSpace(cfg.SeedText)
	if cfg.SeedText != "" {
		return nil
	}
	generated, err := generateSeed()
	if err != nil {
		return errors.Wrap(err, "generate seed")
	}
	cfg.SeedText = generated
	fmt.Fprintf(w, "New session seed: %s\n", cfg.SeedText)
	return nil
}

func generateSeed() (string, error) {
	buf := make([]byte, 15) // 24 characters base32
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToLower(seedAlphabet.EncodeToString(buf)), nil
}
