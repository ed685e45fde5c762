package model

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jkartist/alexa-sfmta/pkg/org511"
	"github.com/rs/zerolog/log"
)

const DefaultModelDir = "interaction-model"

const (
	linesDataName  = "lines"
	stopsDataName  = "stops"
	lineIDsSlot    = "line-ids"
	stopIDsSlot    = "stop-ids"
	stopNamesSlot  = "stop-names"
	schemaFile     = "schema.txt"
	utterancesFile = "utterances.txt"
)

type TransitData interface {
	Lines(ctx context.Context) ([]org511.Line, error)
	Stops(ctx context.Context) ([]org511.Stop, error)
}

// InteractionModel is the intent schema and sample utterances the voice platform is given
type InteractionModel interface {
	Schema() ([]byte, error)
	Utterances() string
}

type Builder struct {
	Client           TransitData
	InteractionModel InteractionModel

	// DataDir holds the cached data files, ModelDir the files handed to the voice platform
	DataDir  string
	ModelDir string

	// IncludeStops also caches the stops and builds their slot files, 511.org can take a while over it
	IncludeStops bool
	// FromCache builds the line slot from the cached lines data file instead of asking 511.org
	FromCache bool
}

// Run builds the model and logs any failure. Files already written are left in place.
func (b *Builder) Run(ctx context.Context) {
	if err := b.Build(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to create model")
		return
	}

	log.Info().Str("dir", b.modelDir()).Msg("Completed retrieving data from 511.org and saving to model")
}

func (b *Builder) Build(ctx context.Context) error {
	if err := os.MkdirAll(b.modelDir(), 0o755); err != nil {
		return fmt.Errorf("creating model directory: %w", err)
	}

	if err := b.buildLines(ctx); err != nil {
		return err
	}

	if b.IncludeStops {
		if err := b.buildStops(ctx); err != nil {
			return err
		}
	}

	if b.InteractionModel != nil {
		if err := b.buildInteractionModel(); err != nil {
			return err
		}
	}

	return nil
}

func (b *Builder) buildLines(ctx context.Context) error {
	var lines []org511.Line

	if b.FromCache {
		path := filepath.Join(b.DataDir, linesDataName+DataFileExtension)
		if err := ReadJSONDataFile(path, &lines); err != nil {
			return fmt.Errorf("reading cached lines: %w", err)
		}

		log.Info().Str("file", path).Int("lines", len(lines)).Msg("Loaded lines from cache")
	} else {
		log.Info().Msg("Getting lines from 511.org")

		startTime := time.Now()
		fetched, err := b.Client.Lines(ctx)
		if err != nil {
			return fmt.Errorf("getting lines: %w", err)
		}
		lines = fetched

		log.Info().
			Str("method", "lines").
			Str("took", time.Since(startTime).String()).
			Int("lines", len(lines)).
			Msg("Request to 511.org complete")

		// Cache so we don't have to query 511.org each time
		path, err := SaveJSONDataFile(b.DataDir, linesDataName, lines)
		if err != nil {
			return err
		}
		log.Info().Str("file", path).Msg("Cached lines")
	}

	log.Info().Msg("Creating slots file line-ids")
	return b.saveModelSlotFile(lineIDsSlot, LineIDs(lines))
}

func (b *Builder) buildStops(ctx context.Context) error {
	log.Info().Msg("Getting stops from 511.org")

	startTime := time.Now()
	stops, err := b.Client.Stops(ctx)
	if err != nil {
		return fmt.Errorf("getting stops: %w", err)
	}

	log.Info().
		Str("method", "stops").
		Str("took", time.Since(startTime).String()).
		Int("stops", len(stops)).
		Msg("Request to 511.org complete")

	path, err := SaveJSONDataFile(b.DataDir, stopsDataName, stops)
	if err != nil {
		return err
	}
	log.Info().Str("file", path).Msg("Cached stops")

	if err := b.saveModelSlotFile(stopIDsSlot, StopIDs(stops)); err != nil {
		return err
	}
	return b.saveModelSlotFile(stopNamesSlot, StopNames(stops))
}

func (b *Builder) buildInteractionModel() error {
	schema, err := b.InteractionModel.Schema()
	if err != nil {
		return fmt.Errorf("generating schema: %w", err)
	}

	log.Info().Msg("Saving schema to file")
	if err := os.WriteFile(filepath.Join(b.modelDir(), schemaFile), schema, 0o644); err != nil {
		return fmt.Errorf("writing schema: %w", err)
	}

	log.Info().Msg("Saving utterances to file")
	if err := os.WriteFile(filepath.Join(b.modelDir(), utterancesFile), []byte(b.InteractionModel.Utterances()), 0o644); err != nil {
		return fmt.Errorf("writing utterances: %w", err)
	}

	return nil
}

// saveModelSlotFile writes the slot file into DataDir and then moves it into the model directory
func (b *Builder) saveModelSlotFile(name string, values []string) error {
	path, err := SaveSlotFile(b.DataDir, name, values)
	if err != nil {
		return err
	}

	destination := filepath.Join(b.modelDir(), filepath.Base(path))
	if err := os.Rename(path, destination); err != nil {
		return fmt.Errorf("moving %s into model: %w", name, err)
	}

	log.Info().Str("file", destination).Int("values", len(values)).Msg("Saved slot file")
	return nil
}

func (b *Builder) modelDir() string {
	if b.ModelDir == "" {
		return filepath.Join(b.DataDir, DefaultModelDir)
	}
	return b.ModelDir
}
