package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gioui.org/app"
	"github.com/esimov/bling/config"
	"github.com/esimov/bling/ease"
	"github.com/esimov/bling/preview"
	"github.com/esimov/bling/sprite"
	"github.com/esimov/bling/utils"
)

const HelpBanner = `
┐ ┬  ┬┌┐┌┌─┐
├┴┐│  │││││ ┬
┴ ┘┴─┘┴┘└┘└─┘

Animated compositor overlays.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// spinner used to instantiate and call the progress indicator.
var spinner *utils.Spinner

// Version indicates the current build version.
var Version string

var (
	// Flags
	configPath  = flag.String("config", "", "Configuration file")
	spritePath  = flag.String("sprite", "", "Sprite image, PNG or SVG path or url")
	atlasPath   = flag.String("atlas", "", "Write the rotation atlas to this PNG file, - for stdout")
	framesDir   = flag.String("frames", "", "Simulate the desktop and write the frames to this directory")
	frameCount  = flag.Int("count", 60, "Number of frames to simulate")
	showPreview = flag.Bool("preview", false, "Show the desktop in a window")
	outputName  = flag.String("output", "", "Output shown by the preview")
	centerX     = flag.Int("cx", 0, "Spinner center x")
	centerY     = flag.Int("cy", 0, "Spinner center y")
	easing      = flag.String("easing", "", "Easing curve of the spinner")
	duration    = flag.Duration("duration", 0, "Duration of a spinner turn")
	debugDamage = flag.Bool("debug-damage", false, "Highlight damaged regions")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEasing curves:\n")
		for _, c := range ease.Curves() {
			fmt.Fprintf(os.Stderr, "  %s\n", c)
		}
	}
	flag.Parse()

	if *atlasPath == "" && *framesDir == "" && !*showPreview {
		flag.Usage()
		log.Fatal(fmt.Sprintf("%s%s",
			utils.DecorateText("\nPlease provide one of the -atlas, -frames or -preview flags!", utils.ErrorMessage),
			utils.DefaultColor,
		))
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Invalid configuration: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	var src sprite.Source
	if cfg.Spinner.Sprite != "" {
		src = sprite.FromFile(cfg.Spinner.Sprite)
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ BLING", utils.StatusMessage),
		utils.DecorateText("is rendering the atlas...", utils.DefaultMessage))
	spinner = utils.NewSpinner(spinnerText, time.Millisecond*200, true)

	// Capture CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()

	now := time.Now()

	if *atlasPath != "" {
		atlasSrc := src
		if atlasSrc == nil {
			atlasSrc = sprite.Default
		}
		spinner.Start()
		bounds, err := exportAtlas(atlasSrc, *atlasPath)
		spinner.StopMsg = fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ BLING", utils.StatusMessage),
			utils.DecorateText("is rendering the atlas... ✔", utils.DefaultMessage))
		spinner.Stop()
		if err != nil {
			log.Fatalf(
				utils.DecorateText("\nError rendering the atlas: %s", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		if *atlasPath != pipeName {
			fmt.Fprintf(os.Stderr, "\nThe %dx%d atlas has been saved as: %s\n",
				bounds.Dx(), bounds.Dy(),
				utils.DecorateText(*atlasPath, utils.SuccessMessage),
			)
		}
	}

	if *framesDir == "" && !*showPreview {
		printElapsed(now)
		return
	}

	s, err := newScene(cfg, src)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Unable to create the desktop: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
	if err := s.start(); err != nil {
		log.Fatalf(
			utils.DecorateText("Unable to start the spinner: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	if *framesDir != "" {
		files, err := s.simulate(*framesDir, *frameCount, cfg.FrameInterval())
		if err != nil {
			log.Fatalf(
				utils.DecorateText("\nError simulating the frames: %s", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		fmt.Fprintf(os.Stderr, "\n%s frames have been saved in: %s\n",
			utils.DecorateText(fmt.Sprintf("%d", len(files)), utils.SuccessMessage),
			utils.DecorateText(*framesDir, utils.SuccessMessage),
		)
		printElapsed(now)
	}

	if *showPreview {
		name := *outputName
		if name == "" {
			name = cfg.Outputs[0].Name
		}
		p, err := preview.New(s.desktop, name, cfg.FrameInterval())
		if err != nil {
			log.Fatalf(utils.DecorateText(err.Error(), utils.ErrorMessage))
		}
		p.Reload = func() error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return s.reconfigure(cfg)
		}
		go func() {
			if err := p.Run(); err != nil {
				log.Fatalf(utils.DecorateText(err.Error(), utils.ErrorMessage))
			}
			os.Exit(0)
		}()
		app.Main()
	}
}

// loadConfig reads the configuration file, if any, and applies the flags
// given on the command line on top of it.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return nil, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sprite":
			cfg.Spinner.Sprite = *spritePath
		case "cx":
			cfg.Spinner.CX = *centerX
		case "cy":
			cfg.Spinner.CY = *centerY
		case "easing":
			cfg.Spinner.Easing = *easing
		case "duration":
			cfg.Spinner.DurationMS = int(duration.Milliseconds())
		case "debug-damage":
			cfg.Debug.DamageTracking = *debugDamage
		}
	})
	return cfg, cfg.Validate()
}

// printElapsed prints the time passed since start.
func printElapsed(start time.Time) {
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(start)), utils.SuccessMessage))
}
