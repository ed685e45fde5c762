package predictions

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jkartist/alexa-sfmta/pkg/org511"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	mu sync.Mutex

	predictions map[string][]org511.Prediction
	errors      map[string]error
	calls       []string
}

func (f *fakeFetcher) PredictionsForStop(ctx context.Context, stopID string) ([]org511.Prediction, error) {
	f.mu.Lock()
	f.calls = append(f.calls, stopID)
	f.mu.Unlock()

	if err := f.errors[stopID]; err != nil {
		return nil, err
	}
	return f.predictions[stopID], nil
}

func prediction(stop string, lineID string, direction string, minutes int) org511.Prediction {
	return org511.Prediction{
		StopName:            stop,
		Operator:            "SF",
		LineID:              lineID,
		LineName:            lineID,
		Direction:           direction,
		MinutesTilDeparture: minutes,
	}
}

func lineIDs(predictions []org511.Prediction) []string {
	var ids []string
	for _, p := range predictions {
		ids = append(ids, p.LineID)
	}
	return ids
}

func TestAnswerEndToEnd(t *testing.T) {
	fetcher := &fakeFetcher{
		predictions: map[string][]org511.Prediction{
			"1234": {
				prediction("24th St & Folsom St", "22", "Inbound", 4),
				prediction("24th St & Folsom St", "38", "Outbound", 7),
				prediction("24th St & Folsom St", "22", "Inbound", 12),
			},
		},
	}
	pipeline := &Pipeline{Fetcher: fetcher, StopIDs: []string{"1234"}}

	answer := pipeline.Answer(context.Background(), "")

	require.Equal(t, OutcomeAnswered, answer.Outcome)
	assert.NoError(t, answer.Err)
	assert.Equal(t, []string{
		"Inbound 22 departing 24th St and Folsom St in 4 and 12 minutes.",
		"Outbound 38 departing 24th St and Folsom St in 7 minutes.",
	}, answer.Speech())
	assert.Equal(t, []string{"1234"}, fetcher.calls)
}

func TestAnswerNotConfigured(t *testing.T) {
	fetcher := &fakeFetcher{}
	pipeline := &Pipeline{Fetcher: fetcher}

	answer := pipeline.Answer(context.Background(), "22")

	assert.Equal(t, OutcomeNotConfigured, answer.Outcome)
	assert.Equal(t, []string{NotConfiguredMessage}, answer.Speech())
	assert.Empty(t, fetcher.calls)
}

func TestAnswerFetchesEveryStop(t *testing.T) {
	fetcher := &fakeFetcher{
		predictions: map[string][]org511.Prediction{
			"1": {prediction("Stop One", "22", "Inbound", 3)},
			"2": {prediction("Stop Two", "33", "Outbound", 5)},
			"3": {prediction("Stop Three", "22", "Inbound", 9)},
		},
	}
	pipeline := &Pipeline{Fetcher: fetcher, StopIDs: []string{"1", "2", "3"}}

	answer := pipeline.Answer(context.Background(), "")

	require.Equal(t, OutcomeAnswered, answer.Outcome)
	assert.ElementsMatch(t, []string{"1", "2", "3"}, fetcher.calls)
	assert.Equal(t, []string{
		"Inbound 22 departing Stop One in 3 and 9 minutes.",
		"Outbound 33 departing Stop Two in 5 minutes.",
	}, answer.Sentences)
}

func TestAnswerFailure(t *testing.T) {
	requestError := &org511.RequestError{Method: "StopMonitoring", StatusCode: 500, Status: "500 Internal Server Error"}
	fetcher := &fakeFetcher{
		predictions: map[string][]org511.Prediction{
			"1": {prediction("Stop One", "22", "Inbound", 3)},
		},
		errors: map[string]error{"2": requestError},
	}
	pipeline := &Pipeline{Fetcher: fetcher, StopIDs: []string{"1", "2"}}

	answer := pipeline.Answer(context.Background(), "")

	assert.Equal(t, OutcomeFailed, answer.Outcome)
	assert.Equal(t, []string{FailedMessage}, answer.Speech())
	assert.Empty(t, answer.Sentences)

	var target *org511.RequestError
	require.True(t, errors.As(answer.Err, &target))
	assert.Equal(t, 500, target.StatusCode)
	assert.ElementsMatch(t, []string{"1", "2"}, fetcher.calls)
}

func TestAnswerAllowList(t *testing.T) {
	fetcher := &fakeFetcher{
		predictions: map[string][]org511.Prediction{
			"1": {
				prediction("Stop", "22", "Inbound", 1),
				prediction("Stop", "38", "Inbound", 2),
				prediction("Stop", "33", "Inbound", 3),
			},
		},
	}

	t.Run("filters", func(t *testing.T) {
		pipeline := &Pipeline{Fetcher: fetcher, StopIDs: []string{"1"}, LineIDs: []string{"22", "33"}}

		answer := pipeline.Answer(context.Background(), "")

		assert.Equal(t, []string{
			"Inbound 22 departing Stop in 1 minutes.",
			"Inbound 33 departing Stop in 3 minutes.",
		}, answer.Speech())
	})

	t.Run("nothing left", func(t *testing.T) {
		pipeline := &Pipeline{Fetcher: fetcher, StopIDs: []string{"1"}, LineIDs: []string{"J"}}

		answer := pipeline.Answer(context.Background(), "J")

		assert.Equal(t, OutcomeNoPredictions, answer.Outcome)
		assert.Equal(t, []string{NoPredictionsMessage}, answer.Speech())
	})
}

func TestAnswerNoPredictions(t *testing.T) {
	fetcher := &fakeFetcher{predictions: map[string][]org511.Prediction{"1": {}}}
	pipeline := &Pipeline{Fetcher: fetcher, StopIDs: []string{"1"}}

	answer := pipeline.Answer(context.Background(), "")

	assert.Equal(t, OutcomeNoPredictions, answer.Outcome)
	assert.Equal(t, []string{"No predictions are available at this time."}, answer.Speech())
}

func TestAnswerRequestedLine(t *testing.T) {
	fetcher := &fakeFetcher{
		predictions: map[string][]org511.Prediction{
			"1": {
				prediction("Stop", "J", "Inbound", 1),
				prediction("Stop", "22", "Inbound", 2),
				prediction("Stop", "J", "Outbound", 6),
			},
		},
	}
	pipeline := &Pipeline{Fetcher: fetcher, StopIDs: []string{"1"}}

	t.Run("match", func(t *testing.T) {
		answer := pipeline.Answer(context.Background(), "J")

		assert.Equal(t, OutcomeAnswered, answer.Outcome)
		assert.Equal(t, []string{
			"Inbound J departing Stop in 1 minutes.",
			"Outbound J departing Stop in 6 minutes.",
		}, answer.Speech())
	})

	t.Run("case sensitive", func(t *testing.T) {
		answer := pipeline.Answer(context.Background(), "j")

		assert.Equal(t, OutcomeNoPredictionsForLine, answer.Outcome)
		assert.Equal(t, []string{"No predictions are available for the j at this time."}, answer.Speech())
	})

	t.Run("no match", func(t *testing.T) {
		answer := pipeline.Answer(context.Background(), "N")

		assert.Equal(t, OutcomeNoPredictionsForLine, answer.Outcome)
		assert.Equal(t, "N", answer.RequestedLineID)
	})
}

func TestFilterByLineIDs(t *testing.T) {
	predictions := []org511.Prediction{
		prediction("Stop", "22", "Inbound", 1),
		prediction("Stop", "38", "Inbound", 2),
		prediction("Stop", "33", "Inbound", 3),
	}

	assert.Equal(t, []string{"22", "33"}, lineIDs(FilterByLineIDs(predictions, []string{"22", "33"})))
	assert.Equal(t, []string{"22", "38", "33"}, lineIDs(FilterByLineIDs(predictions, nil)))
	assert.Equal(t, []string{"22", "38", "33"}, lineIDs(predictions))
}

func TestFilterByLineID(t *testing.T) {
	predictions := []org511.Prediction{
		prediction("Stop", "KT", "Inbound", 1),
		prediction("Stop", "kt", "Inbound", 2),
		prediction("Stop", "K", "Inbound", 3),
	}

	assert.Equal(t, []string{"KT"}, lineIDs(FilterByLineID(predictions, "KT")))
	assert.Empty(t, FilterByLineID(predictions, "T"))
}

func TestGroupByLineAndDirection(t *testing.T) {
	predictions := []org511.Prediction{
		prediction("Stop", "22", "Inbound", 4),
		prediction("Stop", "22", "Outbound", 5),
		prediction("Stop", "38", "Inbound", 6),
		prediction("Stop", "22", "Inbound", 12),
		prediction("Stop", "22", "Outbound", 15),
		prediction("Stop", "22", "Inbound", 35),
	}

	groups := GroupByLineAndDirection(predictions)

	require.Len(t, groups, 3)
	assert.Equal(t, "22", groups[0].LineID)
	assert.Equal(t, "Inbound", groups[0].Direction)
	assert.Equal(t, []int{4, 12, 35}, groups[0].Minutes())
	assert.Equal(t, "Outbound", groups[1].Direction)
	assert.Equal(t, []int{5, 15}, groups[1].Minutes())
	assert.Equal(t, "38", groups[2].LineID)
	assert.Equal(t, []int{6}, groups[2].Minutes())

	assert.Equal(t, "Inbound 22 departing Stop in 4, 12, and 35 minutes.", groups[0].Sentence(nil))
}

func TestGroupByLineAndDirectionKeyIsComposite(t *testing.T) {
	// "2"+"2Inbound" and "22"+"Inbound" must not collide
	predictions := []org511.Prediction{
		prediction("Stop", "2", "2Inbound", 1),
		prediction("Stop", "22", "Inbound", 2),
	}

	assert.Len(t, GroupByLineAndDirection(predictions), 2)
}

func TestEmptyGroupSentence(t *testing.T) {
	assert.Equal(t, "", Group{}.Sentence(nil))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "answered", OutcomeAnswered.String())
	assert.Equal(t, "no-predictions-for-line", OutcomeNoPredictionsForLine.String())
	assert.Equal(t, "outcome(42)", Outcome(42).String())
}
