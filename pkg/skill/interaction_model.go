package skill

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jkartist/alexa-sfmta/pkg/util"
)

type SlotDefinition struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type IntentDefinition struct {
	Name  string
	Slots []SlotDefinition

	// Utterances are templates, "{a|b}" is either a or b, "{|a}" is an optional a
	// and "{-|Slot}" is where the slot is said
	Utterances []string
}

type InteractionModel struct {
	Intents []IntentDefinition
}

type intentSchema struct {
	Intents []intentSchemaEntry `json:"intents"`
}

type intentSchemaEntry struct {
	Intent string           `json:"intent"`
	Slots  []SlotDefinition `json:"slots,omitempty"`
}

func (m *InteractionModel) Schema() ([]byte, error) {
	schema := intentSchema{Intents: []intentSchemaEntry{}}
	for _, intent := range m.Intents {
		schema.Intents = append(schema.Intents, intentSchemaEntry{
			Intent: intent.Name,
			Slots:  intent.Slots,
		})
	}

	return json.MarshalIndent(schema, "", "  ")
}

// Utterances lists every expansion of every template as "<intent> <utterance>", one per line
func (m *InteractionModel) Utterances() string {
	var lines []string

	for _, intent := range m.Intents {
		for _, template := range intent.Utterances {
			expansions, err := ExpandUtterance(template)
			if err != nil {
				continue
			}

			for _, utterance := range expansions {
				lines = append(lines, intent.Name+" "+utterance)
			}
		}
	}

	return strings.Join(util.RemoveDuplicateStrings(lines, nil), "\n")
}

// ExpandUtterance generates every sentence an utterance template can produce
func ExpandUtterance(template string) ([]string, error) {
	expansions := []string{""}

	remaining := template
	for remaining != "" {
		start := strings.IndexByte(remaining, '{')
		if start == -1 {
			expansions = appendToAll(expansions, []string{remaining})
			break
		}

		end := strings.IndexByte(remaining[start:], '}')
		if end == -1 {
			return nil, fmt.Errorf("unclosed { in utterance %q", template)
		}
		end += start

		expansions = appendToAll(expansions, []string{remaining[:start]})
		expansions = appendToAll(expansions, alternatives(remaining[start+1:end]))

		remaining = remaining[end+1:]
	}

	for i, expansion := range expansions {
		expansions[i] = strings.Join(strings.Fields(expansion), " ")
	}

	return util.RemoveDuplicateStrings(expansions, nil), nil
}

func alternatives(group string) []string {
	options := strings.Split(group, "|")

	if len(options) == 2 && options[0] == "-" {
		return []string{"{" + options[1] + "}"}
	}

	return options
}

func appendToAll(prefixes []string, suffixes []string) []string {
	result := make([]string, 0, len(prefixes)*len(suffixes))
	for _, prefix := range prefixes {
		for _, suffix := range suffixes {
			result = append(result, prefix+suffix)
		}
	}
	return result
}
