package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/srlehn/imgscale/internal/encoder/encmulti"
	"github.com/srlehn/imgscale/scale"
)

func init() { rootCmd.AddCommand(backendsCmd) }

var backendsCmd = &cobra.Command{
	Use:   `backends`,
	Short: `list resizer backends and their filters`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tFILTERS\tSHARPEN")
		for _, name := range scale.ResizerNames() {
			rsz, err := scale.ResizerByName(name)
			if err != nil {
				return err
			}
			filters := `?`
			if fl, ok := rsz.(scale.FilterLister); ok {
				var fs []string
				for _, f := range fl.Filters() {
					fs = append(fs, f.String())
				}
				filters = strings.Join(fs, `,`)
			}
			_, canSharpen := rsz.(scale.Sharpener)
			fmt.Fprintf(tw, "%s\t%s\t%t\n", name, filters, canSharpen)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "\noutput formats: "+strings.Join(encmulti.Formats(), `, `))
		return nil
	},
}
