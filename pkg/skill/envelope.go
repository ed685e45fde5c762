package skill

import "strings"

const (
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
	RequestTypeLaunch       = "LaunchRequest"
)

// RequestEnvelope is the body the voice platform posts to the skill
type RequestEnvelope struct {
	Version string   `json:"version"`
	Session *Session `json:"session,omitempty"`
	Request Request  `json:"request"`
}

type Session struct {
	New         bool           `json:"new"`
	SessionID   string         `json:"sessionId"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	Application struct {
		ApplicationID string `json:"applicationId"`
	} `json:"application"`
}

type Request struct {
	Type      string `json:"type"`
	RequestID string `json:"requestId"`
	Timestamp string `json:"timestamp"`
	Locale    string `json:"locale,omitempty"`
	Reason    string `json:"reason,omitempty"`

	Intent *Intent `json:"intent,omitempty"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// SlotValue returns the value the platform recognised for the slot, empty when it wasn't said
func (i *Intent) SlotValue(name string) string {
	if i == nil {
		return ""
	}
	return i.Slots[name].Value
}

type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          Response       `json:"response"`
}

type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	SSML string `json:"ssml"`
}

// NewSpeechResponse joins the sentences into a single SSML response that ends the session
func NewSpeechResponse(sentences ...string) ResponseEnvelope {
	response := ResponseEnvelope{
		Version: "1.0",
		Response: Response{
			ShouldEndSession: true,
		},
	}

	if len(sentences) > 0 {
		response.Response.OutputSpeech = &OutputSpeech{
			Type: "SSML",
			SSML: "<speak>" + strings.Join(sentences, " ") + "</speak>",
		}
	}

	return response
}
