package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pjedinys/huge-balls/pkg/audio"
	"github.com/pjedinys/huge-balls/pkg/report"
	"github.com/pjedinys/huge-balls/pkg/simulation"
	"github.com/pjedinys/huge-balls/pkg/term"
)

func main() {
	mode := flag.String("mode", "window", "frontend: window, term or headless")
	configPath := flag.String("config", "", "YAML file overriding the default sun/earth/moon system")
	width := flag.Int("width", 0, "viewport width in pixels (window and headless)")
	height := flag.Int("height", 0, "viewport height in pixels (window and headless)")
	frames := flag.Int("frames", 600, "frames to simulate in headless mode")
	mute := flag.Bool("mute", false, "disable the bounce chime")
	logPath := flag.String("log", "", "log file; the terminal frontend discards logs unless set")
	seed := flag.Int64("seed", time.Now().UnixNano(), "star field seed")
	flag.Parse()

	log.SetPrefix("huge-balls: ")
	if err := setupLog(*logPath, *mode == "term"); err != nil {
		log.Fatal(err)
	}

	cfg, err := loadConfig(*configPath, *width, *height)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "window":
		// the window closes itself; leave SIGINT alone
		stop()
		err = runWindow(cfg, *mute, *seed)
	case "term":
		err = runTerminal(ctx, cfg, *mute, *seed)
	case "headless":
		err = runHeadless(ctx, cfg, *frames, os.Stdout)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func setupLog(path string, quiet bool) error {
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		log.SetOutput(f)
	case quiet:
		// tcell owns the tty
		log.SetOutput(io.Discard)
	}
	return nil
}

func loadConfig(path string, width, height int) (simulation.Config, error) {
	cfg := simulation.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = simulation.LoadConfig(path); err != nil {
			return cfg, err
		}
	}
	if width > 0 {
		cfg.Width = float64(width)
	}
	if height > 0 {
		cfg.Height = float64(height)
	}
	return cfg, cfg.Validate()
}

// openChime returns a working chime, or a muted one when muted or when the
// speaker cannot be opened.
func openChime(mute bool) *audio.Chime {
	if mute {
		return &audio.Chime{}
	}
	chime, err := audio.NewChime()
	if err != nil {
		// Non-fatal, the simulation runs silent
		log.Printf("audio disabled: %v", err)
	}
	return chime
}

func runWindow(cfg simulation.Config, mute bool, seed int64) error {
	chime := openChime(mute)
	defer chime.Close()

	game, err := NewGame(cfg, chime, seed)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("huge balls")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	return ebiten.RunGame(game)
}

func runTerminal(ctx context.Context, cfg simulation.Config, mute bool, seed int64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	chime := openChime(mute)
	defer chime.Close()

	app, err := term.New(screen, cfg, chime, seed)
	if err != nil {
		return err
	}
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func runHeadless(ctx context.Context, cfg simulation.Config, frames int, out io.Writer) error {
	sim, err := simulation.New(cfg)
	if err != nil {
		return err
	}
	sum, err := report.Run(ctx, sim, frames, time.Now())
	if err != nil {
		log.Printf("%v", err)
	}
	_, werr := io.WriteString(out, report.Render(sum))
	return werr
}
