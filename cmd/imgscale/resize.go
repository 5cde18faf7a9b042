package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/srlehn/imgscale/internal/config"
	"github.com/srlehn/imgscale/scale"
)

func init() {
	resizeCmd.Flags().String(config.KeyFilter, scale.Lanczos.String(), `interpolation (nearest, lanczos, seam)`)
	rootCmd.AddCommand(resizeCmd)
}

var resizeCmd = &cobra.Command{
	Use:   resizeCmdStr + ` [image]`,
	Short: `overwrite an image with its upscale`,
	Long: `Overwrite an image with its upscale, Lanczos unless --filter says otherwise.

` + resizeUsageStr + `

The image defaults to wic.png, the factor to 5. No backup is kept.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, resizeFunc(args))
	},
}

var (
	resizeCmdStr   = `resize`
	resizeUsageStr = `usage: ` + os.Args[0] + ` ` + resizeCmdStr + ` (-f <factor>) (--filter <filter>) (<image>)`
)

func resizeFunc(args []string) rescalerUser {
	return func(_ *config.Config, r *scale.Rescaler) error {
		_, err := r.ResizeInPlace(sourceArg(args))
		return err
	}
}
