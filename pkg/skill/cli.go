package skill

import (
	"fmt"
	"strings"

	"github.com/jkartist/alexa-sfmta/pkg/config"
	"github.com/jkartist/alexa-sfmta/pkg/predictions"
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "skill",
		Usage: "Answers when the next bus or train is due",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the skill webhook server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					pipeline, err := loadPipeline(c)
					if err != nil {
						return err
					}

					log.Info().Str("listen", c.String("listen")).Strs("stops", pipeline.StopIDs).Msg("Starting skill server")

					return NewServer(New(pipeline)).Listen(c.String("listen"))
				},
			},
			{
				Name:  "ask",
				Usage: "print what the skill would say",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "line",
						Usage: "only ask about this line",
					},
				},
				Action: func(c *cli.Context) error {
					pipeline, err := loadPipeline(c)
					if err != nil {
						return err
					}

					answer := pipeline.Answer(c.Context, c.String("line"))
					fmt.Println(strings.Join(answer.Speech(), "\n"))

					return answer.Err
				},
			},
			{
				Name:  "predictions",
				Usage: "dump the predictions for a stop",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "stop",
						Usage:    "stop id to get predictions for",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := loadConfig(c)
					if err != nil {
						return err
					}

					predictions, err := cfg.Client().PredictionsForStop(c.Context, c.String("stop"))
					if err != nil {
						return err
					}

					pretty.Println(predictions)

					return nil
				},
			},
		},
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if cfg.APIKey == "" {
		log.Warn().Msg("No 511.org API key has been set, add ORG_511_API_KEY to the environment")
	}

	return cfg, nil
}

func loadPipeline(c *cli.Context) (*predictions.Pipeline, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	return &predictions.Pipeline{
		Fetcher: cfg.Client(),
		StopIDs: cfg.StopIDs,
		LineIDs: cfg.LineIDs,
	}, nil
}
