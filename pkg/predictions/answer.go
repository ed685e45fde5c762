package predictions

import "fmt"

type Outcome int

const (
	OutcomeAnswered Outcome = iota
	OutcomeNotConfigured
	OutcomeNoPredictions
	OutcomeNoPredictionsForLine
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAnswered:
		return "answered"
	case OutcomeNotConfigured:
		return "not-configured"
	case OutcomeNoPredictions:
		return "no-predictions"
	case OutcomeNoPredictionsForLine:
		return "no-predictions-for-line"
	case OutcomeFailed:
		return "failed"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

const (
	NotConfiguredMessage = "I'm not sure which stops you'd like me to monitor. Please add the stop I.D. environment variable to your lambda function."
	NoPredictionsMessage = "No predictions are available at this time."
	FailedMessage        = "There was an error getting predictions. Please try again later."
)

func NoPredictionsForLineMessage(lineID string) string {
	return fmt.Sprintf("No predictions are available for the %s at this time.", lineID)
}

// Answer is what the skill should say back to the user.
// Err is only set for OutcomeFailed and must never be spoken.
type Answer struct {
	Outcome         Outcome
	RequestedLineID string
	Sentences       []string
	Err             error
}

func (a Answer) Speech() []string {
	switch a.Outcome {
	case OutcomeNotConfigured:
		return []string{NotConfiguredMessage}
	case OutcomeNoPredictions:
		return []string{NoPredictionsMessage}
	case OutcomeNoPredictionsForLine:
		return []string{NoPredictionsForLineMessage(a.RequestedLineID)}
	case OutcomeFailed:
		return []string{FailedMessage}
	}
	return a.Sentences
}
