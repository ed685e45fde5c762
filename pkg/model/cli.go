package model

import (
	"github.com/jkartist/alexa-sfmta/pkg/config"
	"github.com/jkartist/alexa-sfmta/pkg/skill"
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "model",
		Usage: "Builds the voice interaction model from 511.org data",
		Subcommands: []*cli.Command{
			{
				Name:  "build",
				Usage: "fetch lines and stops and write the slot, schema and utterance files",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "stops",
						Usage: "also fetch the stops and build their slot files",
					},
					&cli.BoolFlag{
						Name:  "from-cache",
						Usage: "build the line slot from the cached lines data file",
					},
					&cli.StringFlag{
						Name:  "data-dir",
						Value: ".",
						Usage: "directory for the cached data files",
					},
					&cli.StringFlag{
						Name:  "model-dir",
						Value: DefaultModelDir,
						Usage: "directory for the interaction model files",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					builder := &Builder{
						Client:           cfg.Client(),
						InteractionModel: skill.DefaultInteractionModel(),
						DataDir:          c.String("data-dir"),
						ModelDir:         c.String("model-dir"),
						IncludeStops:     c.Bool("stops"),
						FromCache:        c.Bool("from-cache"),
					}

					log.Info().
						Bool("stops", builder.IncludeStops).
						Bool("from-cache", builder.FromCache).
						Msg("Retrieving data from 511.org")

					builder.Run(c.Context)

					return nil
				},
			},
			{
				Name:  "operators",
				Usage: "dump the 511.org operator list",
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					operators, err := cfg.Client().Operators(c.Context)
					if err != nil {
						return err
					}

					pretty.Println(operators)

					return nil
				},
			},
		},
	}
}
