package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/srlehn/imgscale/internal/config"
	"github.com/srlehn/imgscale/scale"
)

func init() {
	f := variantsCmd.Flags()
	f.String(config.KeyNearestOut, ``, `nearest neighbor output (default <stem>_nearest.png)`)
	f.String(config.KeySharpenedOut, ``, `sharpened Lanczos output (default <stem>_sharpened.png)`)
	f.Float64(config.KeyRadius, scale.DefaultUnsharpMask.Radius, `unsharp mask radius in pixels`)
	f.Float64(config.KeyAmount, scale.DefaultUnsharpMask.Amount*100, `unsharp mask amount in percent`)
	f.Int(config.KeyThreshold, int(scale.DefaultUnsharpMask.Threshold), `unsharp mask threshold in levels (0-255)`)
	rootCmd.AddCommand(variantsCmd)
}

var variantsCmd = &cobra.Command{
	Use:   variantsCmdStr + ` [image]`,
	Short: `write a nearest neighbor and a sharpened Lanczos upscale`,
	Long: `Write a nearest neighbor and a sharpened Lanczos upscale next to an image.

` + variantsUsageStr + `

Both copies are resampled from the same source, which is left untouched.
The image defaults to wic.png, the factor to 5, the unsharp mask to
radius 2, amount 150%, threshold 3.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, variantsFunc(args))
	},
}

var (
	variantsCmdStr   = `variants`
	variantsUsageStr = `usage: ` + os.Args[0] + ` ` + variantsCmdStr + ` (-f <factor>) (--nearest-out <path>) (--sharpened-out <path>) (<image>)`
)

func variantsFunc(args []string) rescalerUser {
	return func(cfg *config.Config, r *scale.Rescaler) error {
		src := sourceArg(args)
		vs := scale.DefaultVariants(src)
		for i := range vs {
			switch vs[i].Name {
			case scale.VariantNearest:
				if len(cfg.NearestOut) > 0 {
					vs[i].Path = cfg.NearestOut
				}
			case scale.VariantSharpened:
				if len(cfg.SharpenedOut) > 0 {
					vs[i].Path = cfg.SharpenedOut
				}
				m := cfg.Mask
				vs[i].Sharpen = &m
			}
		}
		_, err := r.Variants(src, vs...)
		return err
	}
}
