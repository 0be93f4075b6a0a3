package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <bucket> [pattern]",
	Short: "List objects in a bucket, newest first",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		pattern := "*"
		if len(args) == 2 {
			pattern = args[1]
		}

		objects, err := client.List(ctx, args[0], pattern)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		for _, obj := range objects {
			fmt.Fprintf(w, "%s\t%d\t%s\n", obj.Key, obj.Size, obj.ModTime.Format("2006-01-02 15:04:05"))
		}
		return w.Flush()
	},
}
