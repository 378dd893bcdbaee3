package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adammck/crawler"
	"github.com/adammck/crawler/components/avoid"
	"github.com/adammck/crawler/components/legs"
	"github.com/adammck/crawler/components/locomotion"
	"github.com/adammck/crawler/components/rig"
	"github.com/adammck/crawler/components/sequence"
	"github.com/adammck/crawler/config"
	"github.com/adammck/crawler/physics"
	"github.com/adammck/crawler/scene"
	"github.com/adammck/crawler/telemetry"
	"github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "", "YAML file applied on top of the defaults")
	ticks      = flag.Int("ticks", 0, "number of ticks to run, or zero for sim.ticks")
	dt         = flag.Float64("dt", 0, "seconds per tick, or zero for sim.dt")
	realtime   = flag.Bool("realtime", false, "tick on the wall clock, until interrupted")
	tracePath  = flag.String("trace", "", "write a CSV row per tick to this file")
	debug      = flag.Bool("debug", false, "log every tick")
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "main",
})

func main() {
	flag.Parse()

	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := run(); err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	if *ticks > 0 {
		cfg.Sim.Ticks = *ticks
	}

	if *dt > 0 {
		cfg.Sim.DT = *dt
	}

	log.Info("Building scene...")
	sc, err := scene.Build(cfg.Rig)
	if err != nil {
		return err
	}

	r, err := rig.Bind(sc.Transform, cfg.Rig.Root, cfg.Rig.Body)
	if err != nil {
		return err
	}

	world, err := physics.Load(cfg.World)
	if err != nil {
		return err
	}

	state := r.Capture()
	a := crawler.NewAgent(state)

	log.Info("Creating components...")
	av := avoid.New(world, cfg.Sensor, cfg.Turn)
	av.Spawn(state)

	a.Add(locomotion.New(cfg.Walk.Speed))
	a.Add(av)
	a.Add(legs.New(cfg.Gait, cfg.Joints))
	a.Add(sequence.New(cfg.Sequence.Interval, func(elapsed float64) {
		log.Infof("sequence at t=%.2f", elapsed)
	}))
	a.Add(r)

	if *tracePath != "" {
		f, err := os.Create(*tracePath)
		if err != nil {
			return fmt.Errorf("%w (while creating trace)", err)
		}
		defer f.Close()

		a.Add(telemetry.NewTrace(f))
	}

	log.Info("Booting components...")
	if err := a.Boot(); err != nil {
		return fmt.Errorf("%w (while booting)", err)
	}

	if *realtime {
		err = loop(a, cfg.Sim.DT)
	} else {
		err = batch(a, cfg.Sim.DT, cfg.Sim.Ticks)
	}

	if err != nil {
		return err
	}

	log.Infof("Finished after %d ticks at %s", a.State.Ticks, a.State.Pose)
	return nil
}

// batch runs n ticks as fast as possible.
func batch(a *crawler.Agent, dt float64, n int) error {
	for i := 0; i < n; i++ {
		if err := a.Tick(dt); err != nil {
			return fmt.Errorf("%w (while ticking)", err)
		}
	}

	return nil
}

// loop ticks once every dt seconds of wall time until interrupted.
func loop(a *crawler.Agent, dt float64) error {
	t := time.NewTicker(time.Duration(dt * float64(time.Second)))
	defer t.Stop()

	// Catch both SIGINT (ctrl+c) and SIGTERM (kill/systemd).
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)

	log.Info("Starting loop...")
	for !a.Shutdown {
		select {
		case <-c:
			log.Info("Caught signal, shutting down...")
			a.Shutdown = true

		case <-t.C:
			if err := a.Tick(dt); err != nil {
				return fmt.Errorf("%w (while ticking)", err)
			}
		}
	}

	return nil
}
