package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwalk/config"
	"github.com/katalvlaran/lvwalk/playback"
	"github.com/katalvlaran/lvwalk/server"
	"github.com/katalvlaran/lvwalk/session"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP and WebSocket API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := root.load()
			if err != nil {
				return err
			}
			if addr != "" {
				st.Server.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, st, root.configPath)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}

// serve runs one session behind the HTTP server until ctx ends. When
// configPath is set, edits to it are applied to the live session.
func serve(ctx context.Context, st config.Settings, configPath string) error {
	logger := newLogger(st, os.Stderr)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	sess, err := session.FromSettings(st,
		session.WithLogger(logger),
		session.WithClassifier(newClassifier(st, logger)),
		session.WithPlaybackOptions(playback.WithMetrics(playback.NewMetrics(reg))),
	)
	if err != nil {
		return err
	}

	if configPath != "" {
		go func() {
			err := config.Watch(ctx, configPath, func(next config.Settings) {
				if err := sess.Apply(next); err != nil {
					logger.Warn("settings not applied", "error", err)
				}
			}, logger)
			if err != nil {
				logger.Error("config watch stopped", "path", configPath, "error", err)
			}
		}()
	}

	srv := server.New(sess, server.WithLogger(logger), server.WithRegistry(reg))

	return srv.Run(ctx, st.Server.Addr)
}
