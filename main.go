package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"rr-edf-scheduler/api"
	"rr-edf-scheduler/config"
	"rr-edf-scheduler/internal/loader"
	"rr-edf-scheduler/internal/report"
	"rr-edf-scheduler/internal/schedulers"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "scheduler",
		Usage: "compare round robin and earliest deadline first scheduling",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override the configured log level",
			},
		},
		Commands: []*cli.Command{
			runCommand(),
			serveCommand(),
		},
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "simulate both policies over a process file and print the comparison",
		ArgsUsage: "[input-file] [quantum]",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("invalid number of arguments, usage: scheduler run [input-file] [quantum]", 1)
			}
			quantum, err := strconv.Atoi(c.Args().Get(1))
			if err != nil {
				return cli.Exit("quantum value must be an integer", 1)
			}
			if quantum <= 0 {
				return cli.Exit("quantum value must be a positive integer", 1)
			}

			logger, err := newLogger(c, zapcore.WarnLevel.String())
			if err != nil {
				return cli.Exit(err, 1)
			}
			defer logger.Sync()

			processes, err := loader.LoadFile(c.Args().Get(0))
			if err != nil {
				return cli.Exit(err, 1)
			}
			reports, err := schedulers.Compare(processes, quantum, logger)
			if err != nil {
				return cli.Exit(err, 1)
			}

			out := c.App.Writer
			report.WriteComparison(out, reports)
			for _, r := range reports {
				report.WriteSchedule(out, r)
			}
			return nil
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the simulator over http",
		Action: func(c *cli.Context) error {
			cfg := config.GetSchedulerConfig()
			logger, err := newLogger(c, cfg.LogLevel)
			if err != nil {
				return cli.Exit(err, 1)
			}
			defer logger.Sync()

			handler, err := api.NewSchedulerHandlerImpl(cfg, logger)
			if err != nil {
				return cli.Exit(err, 1)
			}

			app := fiber.New()
			api.Register(app, handler)

			logger.Info("listening", zap.Int("port", cfg.Port))
			return app.Listen(fmt.Sprintf(":%d", cfg.Port))
		},
	}
}

func newLogger(c *cli.Context, defaultLevel string) (*zap.Logger, error) {
	levelName := defaultLevel
	if c.IsSet("log-level") {
		levelName = c.String("log-level")
	}
	level, err := zapcore.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}
