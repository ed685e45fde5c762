package model

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jkartist/alexa-sfmta/pkg/org511"
	"golang.org/x/exp/slices"
)

const SlotFileExtension = ".txt"

// SaveSlotFile writes one value per line with no newline after the last one, replacing any existing file
func SaveSlotFile(dir string, name string, values []string) (string, error) {
	path := filepath.Join(dir, name+SlotFileExtension)

	if err := os.WriteFile(path, []byte(strings.Join(values, "\n")), 0o644); err != nil {
		return "", fmt.Errorf("writing slot file %s: %w", path, err)
	}

	return path, nil
}

// LineIDs keeps the order 511.org returned the lines in
func LineIDs(lines []org511.Line) []string {
	ids := make([]string, len(lines))
	for i, line := range lines {
		ids[i] = line.ID
	}
	return ids
}

// StopIDs sorts the ids numerically, anything that isn't a number goes at the end
func StopIDs(stops []org511.Stop) []string {
	ids := make([]string, len(stops))
	for i, stop := range stops {
		ids[i] = stop.ID
	}

	slices.SortStableFunc(ids, compareStopIDs)

	return ids
}

func compareStopIDs(a string, b string) int {
	aNumber, aErr := strconv.Atoi(a)
	bNumber, bErr := strconv.Atoi(b)

	switch {
	case aErr == nil && bErr == nil:
		return cmp.Compare(aNumber, bNumber)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	}

	return strings.Compare(a, b)
}

func StopNames(stops []org511.Stop) []string {
	names := make([]string, len(stops))
	for i, stop := range stops {
		names[i] = stop.Name
	}
	return names
}
