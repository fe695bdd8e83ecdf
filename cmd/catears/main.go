package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/host/v3"

	"github.com/ziyadedher/catears/internal/audio"
	"github.com/ziyadedher/catears/internal/config"
	"github.com/ziyadedher/catears/internal/control"
	"github.com/ziyadedher/catears/internal/led"
	"github.com/ziyadedher/catears/internal/loops"
	"github.com/ziyadedher/catears/internal/remote"
	"github.com/ziyadedher/catears/internal/servo"
	"github.com/ziyadedher/catears/internal/state"
)

// servoSetup picks which servo pins to open and their calibration. Either
// ear may be configured on its own.
func servoSetup(cfg *config.Config) (leftPin, rightPin string, cal servo.Calibration) {
	cal = servo.MG995
	if cfg == nil {
		return "", "", cal
	}
	if cfg.Servos.Model == "sg90" {
		cal = servo.SG90
	}
	return cfg.Servos.LeftPin, cfg.Servos.RightPin, cal
}

func main() {
	var (
		driver      = flag.String("driver", "spi", "LED driver: spi | sim")
		audioDriver = flag.String("audio", "oto", "audio driver: oto | none")
		addr        = flag.String("addr", ":8080", "control plane listen address")
		remoteURL   = flag.String("remote", "", "remote state URL (empty disables sync)")
		configPath  = flag.String("config", "catears.yaml", "path to config file")
		simOnly     = flag.Bool("sim-only", false, "force simulation (no hardware output)")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	var cfg *config.Config
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
	} else {
		cfg = c
	}

	eDriver, eAudio, eAddr, eRemote := *driver, *audioDriver, *addr, *remoteURL
	remoteInterval := 100 * time.Millisecond
	if cfg != nil {
		if cfg.Driver != "" {
			eDriver = cfg.Driver
		}
		if cfg.Audio.Driver != "" {
			eAudio = cfg.Audio.Driver
		}
		if cfg.Control.Addr != "" {
			eAddr = cfg.Control.Addr
		}
		if cfg.Remote.URL != "" {
			eRemote = cfg.Remote.URL
		}
		if cfg.Remote.IntervalMS > 0 {
			remoteInterval = time.Duration(cfg.Remote.IntervalMS) * time.Millisecond
		}
	}
	if *simOnly {
		eDriver, eAudio = "sim", "none"
	}

	if _, err := host.Init(); err != nil {
		log.Warn().Err(err).Msg("periph host init failed; hardware drivers unavailable")
		eDriver = "sim"
	}

	store := state.NewStore()

	// ---- LED rings ----
	var leftRing, rightRing led.PixelSink
	if eDriver == "spi" {
		leftDev, rightDev := "", ""
		if cfg != nil {
			leftDev, rightDev = cfg.SPI.LeftDev, cfg.SPI.RightDev
		}
		l, lerr := led.OpenSPI(leftDev)
		r, rerr := led.OpenSPI(rightDev)
		if lerr != nil || rerr != nil {
			log.Warn().AnErr("left", lerr).AnErr("right", rerr).
				Msg("SPI ring init failed; falling back to console")
			leftRing, rightRing = led.NewConsole(), led.NewConsole()
		} else {
			leftRing, rightRing = l, r
		}
	} else {
		leftRing, rightRing = led.NewConsole(), led.NewConsole()
	}
	defer leftRing.Close()
	defer rightRing.Close()

	// ---- Servos ----
	var leftServo, rightServo *servo.Servo
	leftPin, rightPin, cal := servoSetup(cfg)
	if leftPin != "" {
		if pin, err := servo.OpenPin(leftPin); err != nil {
			log.Warn().Err(err).Msg("left servo pin unavailable")
		} else {
			leftServo = servo.New(pin, cal)
		}
	}
	if rightPin != "" {
		if pin, err := servo.OpenPin(rightPin); err != nil {
			log.Warn().Err(err).Msg("right servo pin unavailable")
		} else {
			rightServo = servo.New(pin, cal)
		}
	}

	// ---- Audio sink ----
	var sink audio.Sink = audio.DiscardSink{}
	if eAudio == "oto" {
		if s, err := audio.NewOtoSink(); err != nil {
			log.Warn().Err(err).Msg("audio device unavailable; discarding audio")
		} else {
			sink = s
		}
	}
	defer sink.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- Render loops ----
	go func() {
		if err := loops.RunLights(ctx, store, leftRing, rightRing, log.Logger); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("light loop stopped")
		}
	}()
	if leftServo != nil || rightServo != nil {
		go func() {
			if err := loops.RunServos(ctx, store, leftServo, rightServo, log.Logger); err != nil && ctx.Err() == nil {
				log.Error().Err(err).Msg("servo loop stopped")
			}
		}()
	} else {
		log.Info().Msg("no servos configured; skipping servo loop")
	}
	go func() {
		if err := loops.RunSpeakers(ctx, store, sink, log.Logger); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("speaker loop stopped")
		}
	}()

	// ---- Writer collaborators ----
	if eRemote != "" {
		syncer := remote.New(eRemote, remoteInterval, store, log.Logger)
		go func() { _ = syncer.Run(ctx) }()
	}

	srv := &http.Server{
		Addr:         eAddr,
		Handler:      control.New(store, log.Logger).Routes(),
		ReadTimeout:  5 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		log.Info().Str("addr", eAddr).Str("driver", eDriver).Msg("control server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("control server crashed")
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	s := <-ch
	log.Info().Str("signal", s.String()).Msg("shutting down")

	cancel()
	_ = srv.Close()
}
