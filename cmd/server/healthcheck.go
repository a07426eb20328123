package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/eventtickets/eventtickets/internal/probe"
)

var (
	green = color.New(color.FgHiGreen).SprintFunc()
	red   = color.New(color.FgHiRed, color.Bold).SprintFunc()
)

// newHealthcheckCmd probes a running gateway, for container health checks.
func newHealthcheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Check that a running API gateway is healthy",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			url, _ := cmd.Flags().GetString("url")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			out := cmd.OutOrStdout()

			client, err := probe.New(url, timeout)
			if err != nil {
				return err
			}

			status, err := client.Health(cmd.Context())
			if err != nil {
				fmt.Fprintf(out, "%s %s: %v\n", red("FAIL"), url, err)
				return err
			}

			info, err := client.Info(cmd.Context())
			if err != nil {
				fmt.Fprintf(out, "%s %s: %v\n", red("FAIL"), url, err)
				return err
			}

			fmt.Fprintf(out, "%s %s %s (%s, %s) at %s\n",
				green("OK"), info.Name, info.Version, info.Environment, status.Status,
				status.Timestamp.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().String("url", "http://localhost:8080", "Base URL of the API gateway")
	cmd.Flags().Duration("timeout", probe.DefaultTimeout, "Request timeout")

	return cmd
}
