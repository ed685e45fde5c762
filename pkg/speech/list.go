package speech

import (
	"fmt"
	"strings"
)

type Conjunction int

const (
	And Conjunction = iota
	Or
)

func (c Conjunction) String() string {
	if c == Or {
		return "or"
	}
	return "and"
}

// RenderList turns items into a list that reads naturally when spoken,
// eg. "4", "4 and 12", "4, 12, and 35"
func RenderList[T any](items []T, conjunction Conjunction) string {
	words := make([]string, len(items))
	for i, item := range items {
		words[i] = fmt.Sprint(item)
	}

	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " " + conjunction.String() + " " + words[1]
	}

	last := len(words) - 1
	return strings.Join(words[:last], ", ") + ", " + conjunction.String() + " " + words[last]
}
