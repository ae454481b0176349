package main

import (
	"fmt"
	"os"

	"vinyl-portfolio/internal/app"
	"vinyl-portfolio/internal/config"
	"vinyl-portfolio/internal/debug"
	"vinyl-portfolio/internal/graphics"
	"vinyl-portfolio/internal/logger"
	"vinyl-portfolio/internal/render"
)

// configDir and envFile are relative to the working directory (project root when run via
// go run ./cmd/portfolio).
const (
	configDir = "config"
	envFile   = ".env"
)

func main() {
	exported, envErr := config.LoadDotEnv(envFile)
	prefs, cfgErr := config.Load(configDir)

	log, err := logger.New(logger.Options{Level: prefs.LogLevel, Dir: prefs.LogsDir})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()
	if envErr != nil {
		log.Warn().Err(envErr).Msg("env file ignored")
	}
	if cfgErr != nil {
		log.Error().Err(cfgErr).Msg("config unreadable, using defaults")
	}
	log.Debug().Int("exported", exported).Str("file", envFile).Msg("env file loaded")
	log.Info().Str("loglevel", log.GetLevel().String()).Msg("Logging set up")

	cursor := &graphics.Cursor{}
	p, err := app.New(app.Options{
		Logger:       log.Logger,
		Cursor:       cursor,
		PortraitPath: prefs.Assets.Portrait,
		SettleDelay:  prefs.SettleDelay(),
		Width:        prefs.Window.Width,
		Height:       prefs.Window.Height,
	})
	if err != nil {
		log.Error().Err(err).Msg("portfolio failed to start")
		log.Close()
		os.Exit(1)
	}

	renderer := render.New(log.With().Str("component", "render").Logger(), p.Scene)
	dbg := debug.New(p.Status, log.Lines, renderer.Textures)
	applyOverlays(dbg, prefs)

	in := &pointer{}
	update := func() {
		if pollOverlayKeys(&prefs) {
			applyOverlays(dbg, prefs)
			// An unreadable file is left for the user to fix.
			if cfgErr == nil {
				if err := config.Save(configDir, prefs); err != nil {
					log.Warn().Err(err).Msg("overlay preferences not saved")
				}
			}
		}
		p.Frame(in.poll())
	}
	draw := func() {
		renderer.Draw(p.Camera)
		dbg.Draw()
	}
	graphics.Run(graphics.Options{
		Title:      "Vinyl Portfolio",
		Width:      prefs.Window.Width,
		Height:     prefs.Window.Height,
		Fullscreen: prefs.Window.Fullscreen,
		TargetFPS:  prefs.TargetFPS,
		Shutdown:   renderer.Close,
	}, update, draw)
	log.Info().Msg("window closed")
}
