// Package main is the entrypoint of mpvremote.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mpvremote/internal/cfg"
	"mpvremote/internal/domain/keys"
	"mpvremote/internal/logging"
	"mpvremote/internal/server"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// main is the main entrypoint of the program (duh!).
func main() {
	startTime := time.Now()

	if err := cfg.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if !viper.GetBool(keys.Execute) {
		return // Exit early if not meant to execute (e.g. help invoked)
	}

	if err := logging.Setup(viper.GetInt(keys.DebugLevel), viper.GetString(keys.LogFile)); err != nil {
		fmt.Fprintf(os.Stderr, "could not set up logging: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msgf("mpvremote started at: %v", startTime.Format("2006-01-02 15:04:05.00 MST"))

	srv, session, database, err := initializeApplication()
	if err != nil {
		log.Error().Err(err).Msg("error initializing mpvremote")
		os.Exit(1)
	}
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.StartServer(ctx, srv, viper.GetInt(keys.Port)); err != nil {
		log.Error().Err(err).Msg("server error")
		os.Exit(1)
	}

	// Quit any player process still attached before exiting.
	session.Stop()

	endTime := time.Now()
	log.Info().Msgf("mpvremote finished at: %v", endTime.Format("2006-01-02 15:04:05.00 MST"))
	log.Info().Msgf("Time elapsed: %.2f seconds", endTime.Sub(startTime).Seconds())
}
