package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/ldnexus/match-engine/internal/logger"
	"github.com/ldnexus/match-engine/internal/matching"
	"github.com/ldnexus/match-engine/internal/matching/uae"
	"github.com/ldnexus/match-engine/internal/ranking"
	"github.com/ldnexus/match-engine/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const defaultListen = ":8080"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the match engine HTTP API",
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "listen address (default "+defaultListen+")")

	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
}

func serve(_ *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the match engine", zap.String("version", version))

	provider := buildProvider(ctx, config, logger)

	// A nil provider is safe to pass: its embed methods short-circuit and
	// every score takes the heuristic path.
	matcher := matching.NewMatcher(provider, matching.NewHeuristic(nil), logger)
	regional := uae.NewMatcher(logger)
	ranker := ranking.New(matcher, logger)

	listen := defaultListen
	if config.Server != nil && config.Server.Listen != "" {
		listen = config.Server.Listen
	}
	if v := viper.GetString("server.listen"); v != "" {
		listen = v
	}

	srv := server.New(matcher, regional, ranker, provider, logger)
	if err := srv.Run(ctx, listen); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
