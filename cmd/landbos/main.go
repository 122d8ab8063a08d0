package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// a missing .env is fine; real environment variables still apply
	_ = godotenv.Load()

	var configPath string
	rootCmd := &cobra.Command{
		Use:   "landbos",
		Short: "Land-based wind farm balance-of-station cost model",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(estimateCmd(&configPath))
	rootCmd.AddCommand(defaultsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
