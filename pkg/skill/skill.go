package skill

import (
	"context"
	"errors"
	"fmt"

	"github.com/jkartist/alexa-sfmta/pkg/predictions"
	"github.com/rs/zerolog/log"
)

const (
	PredictionIntent = "sfmtaPredictionIntentHandler"
	CancelIntent     = "AMAZON.CancelIntent"
	StopIntent       = "AMAZON.StopIntent"

	LineIDSlot     = "LineId"
	LineIDSlotType = "LINEIDS"
)

const goodbyeMessage = "Goodbye!"

var ErrUnknownIntent = errors.New("unknown intent")

type Answerer interface {
	Answer(ctx context.Context, requestedLineID string) predictions.Answer
}

type IntentHandler func(ctx context.Context, intent *Intent) []string

type Skill struct {
	Model *InteractionModel

	handlers map[string]IntentHandler
}

func New(answerer Answerer) *Skill {
	s := &Skill{
		Model:    DefaultInteractionModel(),
		handlers: map[string]IntentHandler{},
	}

	s.Intent(CancelIntent, goodbye)
	s.Intent(StopIntent, goodbye)
	s.Intent(PredictionIntent, predictionIntent(answerer))

	return s
}

// DefaultInteractionModel is the schema and utterances for the intents New registers
func DefaultInteractionModel() *InteractionModel {
	return &InteractionModel{
		Intents: []IntentDefinition{
			{Name: CancelIntent},
			{Name: StopIntent},
			{
				Name:  PredictionIntent,
				Slots: []SlotDefinition{{Name: LineIDSlot, Type: LineIDSlotType}},
				Utterances: []string{
					"when will my {bus|train} {arrive|get here|leave|depart}",
					"when is my {bus|train} {coming|due|arriving|departing|leaving}",
					"when will the {|next} {-|LineId} {arrive|get here|leave|depart}",
					"when is the {|next} {-|LineId} {coming|due|arriving|departing|leaving}",
					"when the {|next} {-|LineId} is {coming|due|arriving|departing|leaving}",
				},
			},
		},
	}
}

func (s *Skill) Intent(name string, handler IntentHandler) {
	s.handlers[name] = handler
}

func (s *Skill) Handle(ctx context.Context, envelope RequestEnvelope) (ResponseEnvelope, error) {
	request := envelope.Request

	switch request.Type {
	case RequestTypeIntent:
		if request.Intent == nil {
			return ResponseEnvelope{}, fmt.Errorf("%w: intent request without an intent", ErrUnknownIntent)
		}

		handler, ok := s.handlers[request.Intent.Name]
		if !ok {
			return ResponseEnvelope{}, fmt.Errorf("%w: %s", ErrUnknownIntent, request.Intent.Name)
		}

		return NewSpeechResponse(handler(ctx, request.Intent)...), nil
	case RequestTypeLaunch:
		return NewSpeechResponse(s.handlers[PredictionIntent](ctx, &Intent{Name: PredictionIntent})...), nil
	case RequestTypeSessionEnded:
		log.Debug().Str("reason", request.Reason).Msg("Session ended")
		return NewSpeechResponse(), nil
	}

	return ResponseEnvelope{}, fmt.Errorf("%w: request type %s", ErrUnknownIntent, request.Type)
}

func goodbye(ctx context.Context, intent *Intent) []string {
	return []string{goodbyeMessage}
}

func predictionIntent(answerer Answerer) IntentHandler {
	return func(ctx context.Context, intent *Intent) []string {
		requestedLineID := intent.SlotValue(LineIDSlot)

		log.Info().Str("line", requestedLineID).Msg("Prediction intent invoked")

		answer := answerer.Answer(ctx, requestedLineID)
		speech := answer.Speech()

		log.Info().
			Str("outcome", answer.Outcome.String()).
			Strs("speech", speech).
			Msg("Prediction intent answered")

		return speech
	}
}
