package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/text-overlay/internal/config"
	"github.com/ytget/text-overlay/internal/fonts"
	"github.com/ytget/text-overlay/internal/logging"
	"github.com/ytget/text-overlay/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.text-overlay"
)

func main() {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logging.Init(cfg.LogLevel, cfg.LogFormat)
	log := logging.WithComponent("main")
	log.Info("text overlay starting", "version", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myApp.SetIcon(ui.LoadAppIcon())

	store := config.NewStore(cfg.NewBackend(myApp))

	manifest, err := loadManifest(cfg)
	if err != nil {
		logging.WithError(err).Error("font manifest unavailable, using system font only", "component", "main")
		manifest = &fonts.Manifest{Families: map[string]fonts.Family{}}
	}
	sink := fonts.NewResourceSink()
	resolver := fonts.NewResolver(manifest, sink)

	localization := ui.NewLocalization()
	localization.SetLanguage(cfg.GetLanguage(myApp))

	overlayWindow := ui.NewOverlayWindow(myApp, localization.GetText(ui.KeyAppTitle))

	ui.NewRootUI(overlayWindow, myApp, store, resolver, sink, localization)

	overlayWindow.ShowAndRun()
}

func loadManifest(cfg *config.AppConfig) (*fonts.Manifest, error) {
	if cfg.FontManifest != "" {
		return fonts.LoadManifestFile(cfg.FontManifest)
	}
	return fonts.DefaultManifest()
}
