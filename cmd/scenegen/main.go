package main

import (
	"io"
	"os"
	"time"

	"github.com/gekko3d/scenegen"
)

func run(w io.Writer, rnd scenegen.RandomSource, logger scenegen.Logger) error {
	cfg := scenegen.DefaultConfig()
	gen, err := scenegen.NewGenerator(cfg, rnd, logger)
	if err != nil {
		return err
	}
	scene := gen.Generate()
	if err := scenegen.WriteScene(w, scene, cfg.Names); err != nil {
		return err
	}
	logger.Infof("scene %s: %s", scene.ID, scene.Stats())
	return nil
}

func main() {
	logger := scenegen.NewDefaultLogger("scenegen", false)
	if err := run(os.Stdout, scenegen.NewRandomSource(time.Now().UnixNano()), logger); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
