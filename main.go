package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Mirror-Prismals/TrackMIDA/config"
	"github.com/Mirror-Prismals/TrackMIDA/mida"
	"github.com/Mirror-Prismals/TrackMIDA/midifile"
	"github.com/Mirror-Prismals/TrackMIDA/theme"
	"github.com/Mirror-Prismals/TrackMIDA/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Warn("bad config, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	// With a file argument, convert and print; no TUI.
	if len(os.Args) > 1 {
		if os.Args[1] == "-h" || os.Args[1] == "--help" {
			usage()
			return
		}
		convertOnce(os.Args[1], cfg)
		return
	}

	palette := theme.Default()
	if cfg.Palette != "" {
		p, err := theme.LoadGPL(cfg.Palette)
		if err != nil {
			log.Warn("failed to load palette, using default", "path", cfg.Palette, "err", err)
		} else {
			palette = p
		}
	}
	th := theme.New(palette)

	// The terminal belongs to bubbletea now; send logs to a file.
	if f := openLogFile(); f != nil {
		defer f.Close()
		log.SetOutput(f)
	}

	m := tui.NewModel(cfg, th)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal("tui failed", "err", err)
	}
}

func usage() {
	fmt.Println("Usage: trackmida [file.mid]")
	fmt.Println("")
	fmt.Println("Converts a MIDI file to MIDA notation. With a file argument the")
	fmt.Println("document prints to stdout; without one, an interactive picker opens.")
}

// convertOnce is the non-interactive path: parse, encode, print, and
// copy to the clipboard when configured. Any failure is fatal and
// produces no partial output.
func convertOnce(path string, cfg *config.Config) {
	song, err := midifile.Load(path)
	if err != nil {
		log.Fatal("failed to load MIDI file", "path", path, "err", err)
	}

	document := mida.Encode(song)
	fmt.Println(document)

	if cfg.CopyToClipboard {
		if err := clipboard.WriteAll(document); err != nil {
			log.Warn("clipboard unavailable", "err", err)
		}
	}
}

// openLogFile returns the TUI-mode log sink, or nil if the config dir
// is unusable (logging then stays on stderr).
func openLogFile() *os.File {
	dir, err := config.ConfigDir()
	if err != nil {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "trackmida.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil
	}
	return f
}
