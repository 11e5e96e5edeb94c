// Package cmd implements the Renewal CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (run, inspect, snapshot, script).
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/go-renewal/renewal/cmd/renewal/internal/config"
	renewalerrors "github.com/go-renewal/renewal/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "renewal",
	Short: "Renewal - a carousel that moves a strip of residents through a viewport",
	Long: `Renewal moves a strip of residents through a fixed-width viewport,
advancing or reversing by the number of visible residents.

Configuration is read from renewal.yaml at the project root and may be
overridden with RENEWAL_* environment variables.

Use "renewal <command> --help" for more information about a command.`,
	Usage: "renewal [--dir DIR] [--verbose] <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// stdout receives command output.
var stdout io.Writer = os.Stdout

// Global flags.
var (
	projectDir string
	verbose    bool
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags and extract --dir
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "Renewal CLI version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			if len(filteredArgs) == 0 {
				verbose = true
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		case "--dir":
			if i+1 < len(args) {
				projectDir = args[i+1]
				i++
			} else {
				return fmt.Errorf("--dir requires a directory path")
			}
		default:
			if strings.HasPrefix(arg, "--dir=") {
				projectDir = strings.TrimPrefix(arg, "--dir=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// resolveProject finds the project root and resolves its configuration.
// Outside a project the working directory (or --dir) is used as is.
func resolveProject() (*config.Resolved, error) {
	root, err := config.FindProjectRoot(projectDir)
	if err != nil {
		root = projectDir
		if root == "" {
			if root, err = os.Getwd(); err != nil {
				return nil, err
			}
		}
		if verbose {
			log.Printf("no project found, using %s", root)
		}
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose || cfg.Verbose {
		renewalerrors.SetHandler(&renewalerrors.LogHandler{Verbose: true})
	}
	return cfg, nil
}

func printHelp(cmd *Command) {
	w := stdout
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w, "  --dir DIR            Project directory (default: nearest renewal.yaml or go.mod)")
	fmt.Fprintln(w, "  --verbose            Log errors with stack traces")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  RENEWAL_TRANSITION   slide, transform, offset or active")
	fmt.Fprintln(w, "  RENEWAL_SPEED        Slide duration, e.g. 300ms")
	fmt.Fprintln(w, "  RENEWAL_EASING       Easing name (see renewal inspect)")
	fmt.Fprintln(w, "  RENEWAL_VISIBLE      Residents shown in the viewport")
	fmt.Fprintln(w, "  RENEWAL_START        Start position")
	fmt.Fprintln(w, "  RENEWAL_MARKUP       HTML file with the residents")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  renewal run                    Preview the carousel in the terminal")
	fmt.Fprintln(w, "  renewal inspect --json         Print geometry as JSON")
	fmt.Fprintln(w, "  renewal snapshot --position 2  Render position 2 to renewal.png")
	fmt.Fprintln(w, "  renewal script tour.js         Drive the carousel from JavaScript")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
