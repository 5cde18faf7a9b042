package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srlehn/imgscale/internal/config"
	errorsGo "github.com/srlehn/imgscale/internal/errors"
	"github.com/srlehn/imgscale/scale"
)

func init() { rootCmd.AddCommand(sizeCmd) }

var sizeCmd = &cobra.Command{
	Use:   sizeCmdStr + ` <w>x<h>`,
	Short: `print the target size for the scale factor`,
	Long: `Print the target size for the scale factor without touching any file.

` + sizeUsageStr,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, sizeFunc(args))
	},
}

var (
	sizeCmdStr   = `size`
	sizeUsageStr = `usage: ` + os.Args[0] + ` ` + sizeCmdStr + ` (-f <factor>) <srcSizePixels(<w>x<h>)>`
	errSizeUsage = errors.New(sizeUsageStr)
)

func sizeFunc(args []string) rescalerUser {
	return func(_ *config.Config, r *scale.Rescaler) error {
		if len(args) != 1 {
			return errorsGo.New(errSizeUsage)
		}
		src, err := parseSize(args[0])
		if err != nil {
			return err
		}
		dst, err := scale.TargetSize(image.Rectangle{Max: src}, r.Factor())
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%dx%d\n", dst.X, dst.Y)
		return nil
	}
}

func parseSize(s string) (image.Point, error) {
	parts := strings.SplitN(s, `x`, 2)
	if len(parts) != 2 {
		return image.Point{}, errorsGo.New(errSizeUsage)
	}
	w, err := strconv.ParseUint(parts[0], 10, 31)
	if err != nil {
		return image.Point{}, errorsGo.New(errSizeUsage)
	}
	h, err := strconv.ParseUint(parts[1], 10, 31)
	if err != nil {
		return image.Point{}, errorsGo.New(errSizeUsage)
	}
	return image.Point{X: int(w), Y: int(h)}, nil
}
