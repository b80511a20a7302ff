package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.gatech.edu/ECEInnovation/Thumb-Prettier/config"
	"github.gatech.edu/ECEInnovation/Thumb-Prettier/languageServer"
	"github.gatech.edu/ECEInnovation/Thumb-Prettier/prettier"
	"github.gatech.edu/ECEInnovation/Thumb-Prettier/webPreview"
)

var (
	conf      *config.Config
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow)
	okColor   = color.New(color.FgGreen)
)

var rootCmd = &cobra.Command{
	Use:   "thumb-prettier",
	Short: "Formatter and language server for ARM Thumb assembly",
	Long: `thumb-prettier re-indents Thumb assembly, aligns mnemonics and operands
and normalizes comments. Without a subcommand it runs the language server
over TCP so it can be attached to remotely for debugging.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return languageServer.ListenAndServeTCP(conf.Server.LanguageServerAddr, newFormatter())
	},
}

var languageServerCmd = &cobra.Command{
	Use:   "languageServer",
	Short: "Run the language server over stdin/stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tcp, err := cmd.Flags().GetBool("tcp")
		if err != nil {
			return err
		}
		if tcp {
			return languageServer.ListenAndServeTCP(conf.Server.LanguageServerAddr, newFormatter())
		}
		languageServer.ListenAndServe(newFormatter())
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the formatter preview page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := cmd.Flags().GetString("addr")
		if err != nil {
			return err
		}
		if addr == "" {
			addr = conf.Server.PreviewAddr
		}
		return webPreview.RunWebserver(addr, newFormatter())
	},
}

func init() {
	languageServerCmd.Flags().Bool("tcp", false, "listen on the configured TCP address instead of stdio")
	serveCmd.Flags().String("addr", "", "address to listen on (defaults to server.preview_addr)")

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "configuration file (defaults to the nearest "+config.FileName+")")
	rootCmd.PersistentFlags().Bool("debug", false, "post debug traces to the log endpoint")

	rootCmd.SilenceErrors = true
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(languageServerCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		errColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}
	switch colorMode {
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color value %q (want auto, on or off)", colorMode)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if configPath != "" {
		conf, err = config.LoadFile(configPath)
	} else {
		conf, err = config.Load(".")
	}
	if err != nil {
		return err
	}

	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return err
	}
	conf.ApplyLogging(debug)
	return nil
}

func newFormatter() *prettier.Formatter {
	return prettier.New(conf.FormatOptions())
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
