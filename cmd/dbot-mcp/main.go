package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hellodex/dbot-mcp/apperr"
	"github.com/hellodex/dbot-mcp/config"
	"github.com/hellodex/dbot-mcp/handler"
	"github.com/hellodex/dbot-mcp/logger"
	"github.com/hellodex/dbot-mcp/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const name = "dbot-mcp"

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCommand(stdin, stdout, stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SilenceUsage = true
	root.SilenceErrors = true

	err := root.Execute()
	if err == nil {
		return 0
	}
	if _, ok := apperr.As(err); !ok {
		err = apperr.Wrap(apperr.CodeUsage, "invalid usage", err)
	}
	fmt.Fprintln(stderr, "error:", err)
	return apperr.ExitCode(err)
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   name,
		Short: "MCP servers for the trading API automation endpoints",
	}
	config.BindFlags(root.PersistentFlags())

	adapters := strings.Join(handler.AdapterNames(), "|")

	serve := &cobra.Command{
		Use:   "serve <" + adapters + ">",
		Short: "Run one adapter as an MCP server on stdio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			logger.Setup(stderr, cfg.Log.Level, cfg.Log.Pretty)

			if err := cfg.Validate(); err != nil {
				return err
			}
			d, err := handler.NewDispatcher(cfg, args[0])
			if err != nil {
				return err
			}
			if err := d.ValidateWallets(); err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			log.Info().Str("adapter", args[0]).Str("version", version).Msg("starting")
			if err := server.New(name+"-"+args[0], version, d).Serve(ctx, stdin, stdout); err != nil {
				return apperr.Wrap(apperr.CodeInternal, "serve", err)
			}
			return nil
		},
	}

	tools := &cobra.Command{
		Use:   "tools <" + adapters + ">",
		Short: "Print the tool catalog of an adapter as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			logger.Setup(stderr, "warn", cfg.Log.Pretty)

			d, err := handler.NewDispatcher(cfg, args[0])
			if err != nil {
				return err
			}
			catalog := make([]any, 0, len(d.Operations()))
			for _, op := range d.Operations() {
				catalog = append(catalog, server.Tool(op))
			}

			enc := json.NewEncoder(stdout)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			if err := enc.Encode(catalog); err != nil {
				return apperr.Wrap(apperr.CodeInternal, "encode tool catalog", err)
			}
			return nil
		},
	}

	ver := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(stdout, name, version)
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return apperr.Wrap(apperr.CodeUsage, "invalid flags", err)
	})
	root.AddCommand(serve, tools, ver)
	return root
}
