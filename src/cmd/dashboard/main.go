package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/copier-dashboard/src/eventmain"
	"github.com/jiaming2012/copier-dashboard/src/eventmodels"
	"github.com/jiaming2012/copier-dashboard/src/utils"
)

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Trade copier dashboard sync client",
	Long:  `This program keeps trade, balance, copier and connection status current against the copier backend.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		consoleEnabled, err := cmd.Flags().GetBool("console")
		if err != nil {
			log.Fatalf("error getting console: %v", err)
		}

		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		if goEnv != "" {
			os.Setenv("GO_ENV", goEnv)
		}

		if err := utils.InitEnvironmentVariables(); err != nil {
			log.Fatalf("error initializing environment variables: %v", err)
		}

		config, err := eventmodels.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("error loading config: %v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var consoleOut io.Writer
		if consoleEnabled {
			consoleOut = os.Stdout
		}

		if err := eventmain.Run(ctx, config, consoleOut); err != nil {
			log.Fatalf("dashboard sync failed: %v", err)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().String("config", "config.yaml", "path to the yaml config file")
	rootCmd.PersistentFlags().String("go-env", "", "environment to load the .env file for (development or production)")
	rootCmd.PersistentFlags().Bool("console", false, "render a dashboard snapshot to stdout on every poll cycle")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
