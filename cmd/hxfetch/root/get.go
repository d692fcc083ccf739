package root

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/angelbeltran/hxassets"
	"github.com/angelbeltran/hxassets/dependency"
	"github.com/angelbeltran/hxassets/htmx"
)

type result struct {
	Requests     []requestResult `json:"requests"`
	Styles       []string        `json:"styles"`
	Dependencies []string        `json:"dependencies"`
}

type requestResult struct {
	Status int   `json:"status"`
	Bytes  int64 `json:"bytes"`
	Sent   sent  `json:"sent"`
}

type sent struct {
	Styles       string `json:"styles"`
	Dependencies string `json:"dependencies"`
}

func NewGetCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <url> [flags]",
		Short: "Fetch a fragment",
		Long:  `Fetch a fragment, registering whatever the server announces, and print the resulting registry.`,
		Example: heredoc.Doc(`
			# Fetch a fragment with a style already loaded
			$ hxfetch get http://localhost:8080/fragment --style dark

			# Fetch twice to see the second request report announced assets
			$ hxfetch get http://localhost:8080/fragment --dependency script:htmx --count 2
		`),
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			deps := v.GetStringSlice("dependency")
			for _, d := range deps {
				if _, err := dependency.Parse(d); err != nil {
					return fmt.Errorf("invalid --dependency: %w", err)
				}
			}

			count := v.GetInt("count")
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			logger := newLogger(cmd, v)

			reg := hxassets.NewRegistry()
			if err := reg.AddStyles(v.GetStringSlice("style")...); err != nil {
				return fmt.Errorf("invalid --style: %w", err)
			}
			if err := reg.AddDependencies(deps...); err != nil {
				return fmt.Errorf("invalid --dependency: %w", err)
			}

			target := hxassets.NewTarget()
			dispose := hxassets.Install(target, reg, hxassets.WithLogger(logger))
			defer dispose()

			var res result
			target.AddEventListener(hxassets.EventConfigRequest, func(e *hxassets.ConfigRequestEvent) {
				res.Requests = append(res.Requests, requestResult{
					Sent: sent{
						Styles:       e.Header.Get(htmx.HeaderStyles),
						Dependencies: e.Header.Get(htmx.HeaderDependencies),
					},
				})
			})

			client := hxassets.NewClient(target, reg, hxassets.WithLogger(logger))
			for range count {
				status, n, err := fetch(cmd, client, args[0])
				if err != nil {
					return err
				}
				// redirects dispatch once per hop; the final hop owns the response
				last := &res.Requests[len(res.Requests)-1]
				last.Status = status
				last.Bytes = n
			}

			res.Styles = reg.Styles()
			res.Dependencies = reg.Dependencies()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}

	cmd.Flags().StringSlice("style", nil, "Style id the client already loaded (repeatable)")
	cmd.Flags().StringSlice("dependency", nil, "Dependency the client already loaded, as type:name (repeatable)")
	cmd.Flags().Int("count", 1, "Number of requests to send")

	return cmd
}

func fetch(cmd *cobra.Command, client *http.Client, url string) (status int, n int64, err error) {
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, url, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	n, err = io.Copy(io.Discard, resp.Body)
	if err != nil {
		return resp.StatusCode, n, fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	return resp.StatusCode, n, nil
}
