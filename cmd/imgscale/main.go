package main

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/spf13/cobra"

	"github.com/srlehn/imgscale"
	"github.com/srlehn/imgscale/internal/config"
	"github.com/srlehn/imgscale/internal/encoder/encmulti"
	"github.com/srlehn/imgscale/internal/errors"
	"github.com/srlehn/imgscale/internal/logx"
	"github.com/srlehn/imgscale/resize/rdefault"
	"github.com/srlehn/imgscale/scale"

	// registered backends
	_ "github.com/srlehn/imgscale/resize/bild"
	_ "github.com/srlehn/imgscale/resize/nfnt"
	_ "github.com/srlehn/imgscale/resize/rez"
)

var rootCmd = &cobra.Command{
	Use:          filepath.Base(os.Args[0]),
	Short:        "imgscale resizes images by an integer factor",
	Long:         "imgscale resizes images by an integer factor",
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors`)
	pf.BoolVarP(&silentFlag, `silent`, `s`, false, `silence errors`)
	pf.StringVarP(&configFileFlag, `config`, `c`, ``, `config file (default ./imgscale.toml if present)`)
	pf.StringP(config.KeyLogFile, `l`, ``, `log file`)
	pf.String(config.KeyLogLevel, `info`, `log level (debug, info, warn, error)`)
	pf.IntP(config.KeyFactor, `f`, imgscale.DefaultFactor, `scale factor`)
	pf.StringP(config.KeyResizer, `r`, `default`, `resizer backend, see "backends", the default chain serves what it lacks`)
	pf.String(config.KeyPNGCompression, `default`, `png compression (default, none, speed, best)`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	debugFlag      bool
	silentFlag     bool
	configFileFlag string
	cpuProfileFlag string
	cpuProfilefunc func(profileFile string) func()
	stdout         io.Writer = os.Stdout
	stderr         io.Writer = os.Stderr
)

// exit is swapped in tests
var exit = os.Exit

type rescalerUser func(cfg *config.Config, r *scale.Rescaler) error

// run loads the configuration, builds the rescaler and exits with 1 if fn fails.
func run(cmd *cobra.Command, fn rescalerUser) {
	exit(runCode(cmd, fn))
}

func runCode(cmd *cobra.Command, fn rescalerUser) (exitCode int) {
	if len(cpuProfileFlag) > 0 && cpuProfilefunc != nil {
		if stop := cpuProfilefunc(cpuProfileFlag); stop != nil {
			defer stop()
		}
	}
	var logger *slog.Logger
	err := func() error {
		if fn == nil {
			return errors.NilParam()
		}
		cfg, err := config.Load(cmd.Flags(), configFileFlag)
		if err != nil {
			return err
		}
		logger = logx.Discard()
		if len(cfg.LogFile) > 0 {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
				return errors.New(err)
			}
			l, closeLog, err := logx.OpenFile(cfg.LogFile, lvl)
			if err != nil {
				return err
			}
			defer closeLog()
			logger = l
		}
		pngCompression, err := encmulti.ParsePNGCompression(cfg.PNGCompression)
		if err != nil {
			return err
		}
		rsz, err := scale.ResizerByName(cfg.Resizer)
		if err != nil {
			return err
		}
		r, err := scale.NewRescaler(
			imgscale.DefaultConfig,
			scale.SetResizer(rdefault.WithFallback(rsz)),
			scale.SetEncoder(&encmulti.MultiEncoder{PNGCompression: pngCompression}),
			scale.SetFactor(cfg.Factor),
			scale.SetFilter(cfg.Filter),
			scale.SetReport(stdout),
			scale.SetLogger(logger),
		)
		if err != nil {
			return err
		}
		if len(cfg.File) > 0 {
			logx.Debug(`config file`, r, `path`, cfg.File)
		}
		return fn(cfg, r)
	}()
	if err == nil {
		return 0
	}
	if !silentFlag {
		if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
			fmt.Fprintln(stderr, stackFramer.ErrorStack())
		} else {
			fmt.Fprintln(stderr, `error: `+err.Error())
		}
	}
	return 1
}

// sourceArg returns the image path argument or the default.
func sourceArg(args []string) string {
	if len(args) > 0 && len(args[0]) > 0 {
		return args[0]
	}
	return imgscale.DefaultSource
}
