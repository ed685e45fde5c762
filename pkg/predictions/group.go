package predictions

import (
	"fmt"

	"github.com/jkartist/alexa-sfmta/pkg/org511"
	"github.com/jkartist/alexa-sfmta/pkg/speech"
)

type Group struct {
	LineID    string
	Direction string

	Predictions []org511.Prediction
}

type groupKey struct {
	lineID    string
	direction string
}

// GroupByLineAndDirection keeps groups in the order they are first seen and
// predictions within a group in their original order
func GroupByLineAndDirection(predictions []org511.Prediction) []Group {
	var groups []Group
	groupIndex := map[groupKey]int{}

	for _, prediction := range predictions {
		key := groupKey{lineID: prediction.LineID, direction: prediction.Direction}

		index, ok := groupIndex[key]
		if !ok {
			index = len(groups)
			groupIndex[key] = index
			groups = append(groups, Group{LineID: prediction.LineID, Direction: prediction.Direction})
		}

		groups[index].Predictions = append(groups[index].Predictions, prediction)
	}

	return groups
}

func (g Group) Minutes() []int {
	minutes := make([]int, len(g.Predictions))
	for i, prediction := range g.Predictions {
		minutes[i] = prediction.MinutesTilDeparture
	}
	return minutes
}

// Sentence reads out the whole group at once, eg.
// "Inbound 22 departing 24th and Folsom in 4, 12, and 35 minutes."
// The display values come from the first prediction in the group.
func (g Group) Sentence(sanitizer *speech.Sanitizer) string {
	if len(g.Predictions) == 0 {
		return ""
	}
	if sanitizer == nil {
		sanitizer = speech.DefaultSanitizer
	}

	first := g.Predictions[0]

	return fmt.Sprintf(
		"%s %s departing %s in %s minutes.",
		first.Direction,
		first.LineName,
		sanitizer.Sanitize(first.StopName),
		speech.RenderList(g.Minutes(), speech.And),
	)
}
