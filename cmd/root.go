package cmd

import (
	"github.com/carousell/ct-go/pkg/logger/log"
	"github.com/patriotcart/savings-api/internal/app"
	"github.com/patriotcart/savings-api/internal/server"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "savings-api",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		app.Invoke(
			server.StartServer,
		).Run()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
