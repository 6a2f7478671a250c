// Command collectdesk is the operator CLI of the collections dashboard core.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

type cli struct {
	configPath string
	app        *app
}

func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{}
	root := &cobra.Command{
		Use:           "collectdesk",
		Short:         "Medical debt collection dashboard core",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			a, err := newApp(c.configPath)
			if err != nil {
				return err
			}
			c.app = a
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML config file (env vars override it)")

	root.AddCommand(
		c.listCmd(),
		c.statsCmd(),
		c.exportCmd(),
		c.watchCmd(),
		c.campaignCmd(),
		c.seedCmd(),
		c.prefsCmd(),
	)
	return root, c
}

func execute(args []string, out io.Writer) error {
	return executeContext(context.Background(), args, out)
}

// executeContext runs the CLI with args and releases everything it opened.
func executeContext(ctx context.Context, args []string, out io.Writer) error {
	root, c := newRootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	err := root.ExecuteContext(ctx)
	if c.app != nil {
		if cerr := c.app.close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := execute(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
