package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	relayerhttp "github.com/neutron-org/gravity-relayer/internal/http"
)

const (
	UrlFlagName = "url"
)

var urlRelayer string

// QueryCmd represents the query command
var QueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query a running relayer",
}

func init() {
	QueryCmd.PersistentFlags().StringVarP(&urlRelayer, UrlFlagName, "u", "http://localhost:10001", "server url")
	QueryCmd.AddCommand(statusCmd)
	RootCmd.AddCommand(QueryCmd)
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Query the startup status of the relayer",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := cmd.Flags().GetString(UrlFlagName)
		if err != nil {
			return err
		}

		client, err := relayerhttp.NewRelayerClient(url)
		if err != nil {
			return fmt.Errorf("failed to get new relayer client: %w", err)
		}

		status, err := client.GetStatus()
		if err != nil {
			return fmt.Errorf("failed to get relayer status: %w", err)
		}

		var response bytes.Buffer
		encoder := json.NewEncoder(&response)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(status); err != nil {
			return fmt.Errorf("failed to encode relayer status: %w", err)
		}

		fmt.Printf("Relayer status:\n%s\n", response.String())
		return nil
	},
}
