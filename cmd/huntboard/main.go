package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"github.com/kshetty/huntboard/internal/config"
	"github.com/kshetty/huntboard/internal/tui"
	"github.com/kshetty/huntboard/pkg/client"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := flag.NewFlagSet("huntboard", flag.ContinueOnError)
	apiFlag := flags.String("api", "", "tracker API base URL (overrides config)")
	configFlag := flags.String("config", "", "config file path (default ~/.huntboard/config.yaml)")
	versionFlag := flags.BoolP("version", "v", false, "print version and exit")
	helpFlag := flags.BoolP("help", "h", false, "print usage and exit")
	flags.Usage = printHelp

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if len(flags.Args()) > 0 {
		switch flags.Args()[0] {
		case "version":
			fmt.Println("huntboard " + version)
			return nil
		case "help":
			printHelp()
			return nil
		default:
			return fmt.Errorf("unknown command %q", flags.Args()[0])
		}
	}
	if *versionFlag {
		fmt.Println("huntboard " + version)
		return nil
	}
	if *helpFlag {
		printHelp()
		return nil
	}

	path := *configFlag
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	c := client.New(apiBaseURL(*apiFlag, cfg))
	app := tui.NewApp(c, cfg.MinScore, time.Duration(cfg.RefreshMinutes)*time.Minute)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// apiBaseURL resolves the tracker URL: flag beats config (which has
// already applied its env override and default).
func apiBaseURL(flagVal string, cfg config.Config) string {
	if flagVal != "" {
		return flagVal
	}
	return cfg.APIURL
}

func printHelp() {
	fmt.Print(`huntboard — job search dashboard

Usage:
  huntboard              launch the dashboard
  huntboard version      print version
  huntboard help         print this help

Flags:
  --api URL              tracker API base URL (overrides config)
  --config PATH          config file (default ~/.huntboard/config.yaml)
  -v, --version          print version
  -h, --help             print this help

Environment:
  HUNTBOARD_API_URL      tracker API base URL (overrides config file)

Keys:
  1-4   tabs (board, archive, stones, matches)
  j/k   move    s  cycle status    a  archive    u  restore
  n     new opportunity / place stone
  R     refresh    q  quit
`)
}
