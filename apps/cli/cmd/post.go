package cmd

import (
	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
	"github.com/spf13/cobra"
)

func newPostCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "post <url> [key=value ...]",
		Short: "Send key=value pairs as a JSON object and print the response",
		Long: `Feed post with a URL and optional key=value pairs. The pairs are sent
as a JSON object of strings; when a key repeats, the last value wins.

Examples:
  httpie post https://httpbin.org/post a=1 b=2
  httpie post http://localhost:8080/users name=John role=admin`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parser.ParsePost(args)
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), opts)
		},
	}
}
