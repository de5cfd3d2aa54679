package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/appswitch/internal/bindings"
	"github.com/1broseidon/appswitch/internal/config"
	"github.com/1broseidon/appswitch/internal/hotkeys"
	"github.com/1broseidon/appswitch/internal/mcp"
	"github.com/1broseidon/appswitch/internal/platform"
	"github.com/1broseidon/appswitch/internal/switcher"
	"github.com/1broseidon/appswitch/internal/ui"
)

func main() {
	if len(os.Args) < 2 {
		os.Exit(runRun(nil))
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runRun(os.Args[2:]))
	case "windows":
		os.Exit(runWindows(os.Args[2:]))
	case "activate":
		os.Exit(runActivate(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: appswitch [command] [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Without a command, appswitch starts the interactive switcher:")
	fmt.Fprintln(w, "press a bound letter key to bring that application's window to")
	fmt.Fprintln(w, "the foreground; any non-letter key exits.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                 Start the interactive switcher (default)")
	fmt.Fprintln(w, "  windows             List top-level windows")
	fmt.Fprintln(w, "  activate FRAGMENT   One-shot activation by title fragment")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print effective configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'appswitch <command> --help' for command-specific options.")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

func runRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/appswitch/config.yaml)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: appswitch run [--path PATH]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Start the interactive switcher loop.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*path)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	registry := bindings.Load(cfg.BindingList())

	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer backend.Disconnect()

	activator := switcher.New(backend)

	// The summon hotkey raises the switcher's own terminal window, found
	// by the configured console title. The X event loop only runs when a
	// hotkey is registered.
	if cfg.SummonHotkey != "" {
		handler, err := hotkeys.NewHandler(backend, activator)
		if err != nil {
			log.Printf("Warning: summon hotkey unavailable: %v", err)
		} else if err := handler.RegisterSummon(cfg.SummonHotkey, cfg.Title); err != nil {
			log.Printf("Warning: failed to register summon hotkey %q: %v", cfg.SummonHotkey, err)
		} else {
			go backend.EventLoop()
		}
	}

	if err := ui.Run(cfg.Title, registry, activator); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runWindows(args []string) int {
	fs := flag.NewFlagSet("windows", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	all := fs.Bool("all", false, "Include windows the switcher would skip (docks, panels, etc.)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: appswitch windows [--all]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List top-level windows in enumeration order, for binding authoring.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer backend.Disconnect()

	windows, err := backend.ListWindows()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	for _, w := range windows {
		if !w.Visible && !*all {
			continue
		}
		state := "normal"
		switch {
		case !w.Visible:
			state = "skipped"
		case w.Minimized:
			state = "minimized"
		}
		fmt.Printf("%10d  %-9s  %s\n", w.ID, state, w.Title)
	}
	return 0
}

func runActivate(args []string) int {
	fs := flag.NewFlagSet("activate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: appswitch activate FRAGMENT")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Activate the first visible window whose title contains FRAGMENT.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	fragment := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if fragment == "" {
		fmt.Fprintln(os.Stderr, "activate requires a title fragment")
		fs.Usage()
		return 2
	}

	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer backend.Disconnect()

	res := switcher.New(backend).Activate(fragment)
	fmt.Println(res.Message())
	if res.Kind != switcher.ResultActivated {
		return 1
	}
	return 0
}

func runConfig(args []string) int {
	if len(args) < 1 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage: appswitch config <validate|print> [--path PATH]")
		if len(args) < 1 {
			return 2
		}
		return 0
	}

	sub := args[0]
	fs := flag.NewFlagSet("config "+sub, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/appswitch/config.yaml)")
	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	switch sub {
	case "validate":
		registry := bindings.Load(cfg.BindingList())
		fmt.Printf("Configuration valid: %d bindings (%d active)\n", len(cfg.Bindings), registry.Len())
		return 0
	case "print":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		os.Stdout.Write(data)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", sub)
		fmt.Fprintln(os.Stderr, "Usage: appswitch config <validate|print> [--path PATH]")
		return 2
	}
}

func runMCP(args []string) int {
	if len(args) < 1 || args[0] != "serve" {
		fmt.Fprintln(os.Stderr, "Usage: appswitch mcp serve [--path PATH]")
		return 2
	}

	fs := flag.NewFlagSet("mcp serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/appswitch/config.yaml)")
	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*path)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer backend.Disconnect()

	registry := bindings.Load(cfg.BindingList())
	server := mcp.NewServer(registry, backend)
	if err := server.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
