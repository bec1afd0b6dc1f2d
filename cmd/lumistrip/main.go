// Command lumistrip lists attached displays and renders the LED calibration
// pattern to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"go.uber.org/zap"

	"github.com/lumistrip/lumistrip/config"
	"github.com/lumistrip/lumistrip/display"
	"github.com/lumistrip/lumistrip/testpattern"
)

func main() {
	var (
		configPath = flag.String("config", "lumistrip.yaml", "configuration file")
		matrixName = flag.String("matrix", "", "LED matrix to draw (default: the configured one)")
		outPath    = flag.String("out", "testpattern.png", "write the calibration pattern to this PNG")
		listOnly   = flag.Bool("displays", false, "list attached displays and exit")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	mgr := display.NewManager(logger)
	if *listOnly {
		listDisplays(mgr)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load configuration", zap.Error(err))
	}
	matrix, err := cfg.MatrixInUse(*matrixName)
	if err != nil {
		logger.Fatal("select led matrix", zap.Error(err))
	}

	mgr.LogDisplayInfo()
	if target := mgr.DisplayAt(cfg.MonitorNumber); target != nil {
		logger.Info("calibration target",
			zap.String("name", mgr.DisplayName(cfg.MonitorNumber)),
			zap.Int("minX", target.MinX),
			zap.Int("minY", target.MinY))
	}

	layout, err := testpattern.Build(cfg, matrix)
	if err != nil {
		logger.Fatal("compute calibration layout", zap.Error(err))
	}
	logger.Debug("layout",
		zap.Int("width", layout.Width),
		zap.Int("height", layout.Height),
		zap.Int("tileDistance", layout.TileDistance),
		zap.Int("tiles", len(layout.Tiles)))

	img := testpattern.Render(layout)
	f, err := os.Create(*outPath)
	if err != nil {
		logger.Fatal("create output file", zap.Error(err))
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		logger.Fatal("encode png", zap.Error(err))
	}
	logger.Info("calibration pattern written",
		zap.String("path", *outPath),
		zap.Int("tiles", len(layout.Tiles)))
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func listDisplays(mgr *display.Manager) {
	list := mgr.DisplayList()
	if len(list) == 0 {
		fmt.Println("no displays found")
		return
	}
	for i, d := range list {
		fmt.Printf("#%d %s: %dx%d at (%d,%d) scale %.2f primary=%v\n",
			i, mgr.DisplayName(i), d.Width, d.Height, d.MinX, d.MinY, d.ScaleX, d.PrimaryDisplay)
	}
}
