package predictions

import (
	"context"
	"fmt"

	"github.com/jkartist/alexa-sfmta/pkg/org511"
	"github.com/jkartist/alexa-sfmta/pkg/speech"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

type Fetcher interface {
	PredictionsForStop(ctx context.Context, stopID string) ([]org511.Prediction, error)
}

type Pipeline struct {
	Fetcher Fetcher

	// StopIDs are the monitored stops
	StopIDs []string
	// LineIDs is the deployment wide allow list, empty allows every line
	LineIDs []string

	Sanitizer *speech.Sanitizer
}

// Answer works out what to tell the user about the monitored stops.
// requestedLineID is optional, when set only that line is reported.
func (p *Pipeline) Answer(ctx context.Context, requestedLineID string) Answer {
	answer := Answer{RequestedLineID: requestedLineID}

	if len(p.StopIDs) == 0 {
		log.Info().Msg("No stop ids have been set, add STOP_IDS to the environment")
		answer.Outcome = OutcomeNotConfigured
		return answer
	}

	predictions, err := p.fetchAll(ctx)
	if err != nil {
		log.Error().Err(err).Strs("stops", p.StopIDs).Msg("Failed to get predictions")
		answer.Outcome = OutcomeFailed
		answer.Err = err
		return answer
	}

	log.Debug().Int("predictions", len(predictions)).Strs("stops", p.StopIDs).Msg("Received predictions")

	predictions = FilterByLineIDs(predictions, p.LineIDs)
	if len(predictions) == 0 {
		answer.Outcome = OutcomeNoPredictions
		return answer
	}

	if requestedLineID != "" {
		log.Debug().Str("line", requestedLineID).Msg("Filtering predictions by requested line")
		predictions = FilterByLineID(predictions, requestedLineID)
	}

	if len(predictions) == 0 {
		answer.Outcome = OutcomeNoPredictionsForLine
		return answer
	}

	for _, group := range GroupByLineAndDirection(predictions) {
		answer.Sentences = append(answer.Sentences, group.Sentence(p.Sanitizer))
	}
	answer.Outcome = OutcomeAnswered

	return answer
}

// fetchAll asks for every stop at once and waits for all of them.
// Any failure fails the lot, the other requests are left to finish.
func (p *Pipeline) fetchAll(ctx context.Context) ([]org511.Prediction, error) {
	predictionsByStop := make([][]org511.Prediction, len(p.StopIDs))

	workers := pool.New().WithContext(ctx).WithFirstError()
	for i, stopID := range p.StopIDs {
		i, stopID := i, stopID
		workers.Go(func(ctx context.Context) error {
			stopPredictions, err := p.Fetcher.PredictionsForStop(ctx, stopID)
			if err != nil {
				return fmt.Errorf("stop %s: %w", stopID, err)
			}

			predictionsByStop[i] = stopPredictions
			return nil
		})
	}

	if err := workers.Wait(); err != nil {
		return nil, err
	}

	var predictions []org511.Prediction
	for _, stopPredictions := range predictionsByStop {
		predictions = append(predictions, stopPredictions...)
	}

	return predictions, nil
}
