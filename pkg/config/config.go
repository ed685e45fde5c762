package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jkartist/alexa-sfmta/pkg/org511"
	"github.com/jkartist/alexa-sfmta/pkg/util"
	"gopkg.in/yaml.v3"
)

const listSeparator = "|"

type Config struct {
	APIKey     string `yaml:"api_key"`
	APIURL     string `yaml:"api_url" validate:"required,url"`
	OperatorID string `yaml:"operator_id" validate:"required"`
	Agency     string `yaml:"agency" validate:"required"`

	// StopIDs are the stops the skill reports on
	StopIDs []string `yaml:"stop_ids" validate:"omitempty,dive,required"`
	// LineIDs restricts which lines are ever reported, empty reports every line
	LineIDs []string `yaml:"line_ids" validate:"omitempty,dive,required"`
}

func Default() *Config {
	return &Config{
		APIURL:     org511.DefaultAPIURL,
		OperatorID: org511.DefaultOperatorID,
		Agency:     org511.DefaultAgency,
	}
}

// Load builds the config from the defaults, then the optional YAML file at path, then the environment
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	cfg.applyEnvironment(util.GetEnvironmentVariables())

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnvironment(env map[string]string) {
	util.OverrideFromEnvironment(env, "ORG_511_API_KEY", &c.APIKey)
	util.OverrideFromEnvironment(env, "ORG_511_API_URL", &c.APIURL)
	util.OverrideFromEnvironment(env, "ORG_511_OPERATOR_ID", &c.OperatorID)
	util.OverrideFromEnvironment(env, "ORG_511_AGENCY", &c.Agency)

	if stopIDs := util.SplitList(env["STOP_IDS"], listSeparator); len(stopIDs) > 0 {
		c.StopIDs = stopIDs
	}
	if lineIDs := util.SplitList(env["LINE_IDS"], listSeparator); len(lineIDs) > 0 {
		c.LineIDs = lineIDs
	}
}

func (c *Config) Client() *org511.Client {
	client := org511.NewClient(c.APIKey)
	client.APIURL = c.APIURL
	client.OperatorID = c.OperatorID
	client.Agency = c.Agency

	return client
}
