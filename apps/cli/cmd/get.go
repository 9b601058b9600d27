package cmd

import (
	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
	"github.com/spf13/cobra"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <url>",
		Short: "Send a GET request and print the response",
		Long: `Feed get with a URL and it will retrieve the response for you.

Examples:
  httpie get https://httpbin.org/get
  httpie get http://localhost:8080/health`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parser.ParseGet(args)
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), opts)
		},
	}
}
