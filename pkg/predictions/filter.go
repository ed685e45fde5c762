package predictions

import (
	"github.com/jkartist/alexa-sfmta/pkg/org511"
	"github.com/jkartist/alexa-sfmta/pkg/util"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// FilterByLineIDs keeps the predictions for the lines in the allow list. An empty allow list keeps everything.
func FilterByLineIDs(predictions []org511.Prediction, lineIDs []string) []org511.Prediction {
	if len(lineIDs) == 0 {
		return predictions
	}

	return util.Filter(predictions, func(prediction org511.Prediction) bool {
		if slices.Contains(lineIDs, prediction.LineID) {
			return true
		}

		log.Debug().
			Str("line", prediction.LineID).
			Strs("allowed", lineIDs).
			Msg("Dropping prediction for line not in allow list")
		return false
	})
}

// FilterByLineID keeps the predictions for exactly lineID (case sensitive)
func FilterByLineID(predictions []org511.Prediction, lineID string) []org511.Prediction {
	return util.Filter(predictions, func(prediction org511.Prediction) bool {
		return prediction.LineID == lineID
	})
}
