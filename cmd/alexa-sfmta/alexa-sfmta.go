package main

import (
	"os"
	"time"

	"github.com/jkartist/alexa-sfmta/pkg/model"
	"github.com/jkartist/alexa-sfmta/pkg/skill"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("ALEXA_SFMTA_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	// A missing .env is fine, the environment may already be set
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Failed to load .env file")
	}

	if os.Getenv("ALEXA_SFMTA_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "alexa-sfmta",
		Description: "Tells you when your Muni bus or train is next due, plus the tooling to build its interaction model",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "optional YAML config file, the environment overrides it",
				EnvVars: []string{"ALEXA_SFMTA_CONFIG"},
			},
		},

		Commands: []*cli.Command{
			skill.RegisterCLI(),
			model.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
