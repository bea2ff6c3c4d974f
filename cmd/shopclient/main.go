package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shoplist/client"
	"shoplist/config"
	"shoplist/tui"
)

var flagAPIURL string

var rootCmd = &cobra.Command{
	Use:   "shopclient",
	Short: "Terminal client for the shopping-list API",
	RunE: func(cmd *cobra.Command, args []string) error {
		baseURL := flagAPIURL
		if baseURL == "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			baseURL = cfg.APIBaseURL
		}

		store := client.NewStore(client.NewHTTPClient(baseURL))
		return tui.Run(store)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "API base URL (default from config: http://localhost:5000/api)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
