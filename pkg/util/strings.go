package util

import "strings"

func RemoveDuplicateStrings(strings []string, ignoreList []string) []string {
	presentStrings := make(map[string]bool)
	var list []string

	for _, ignoreString := range ignoreList {
		presentStrings[ignoreString] = true
	}

	for _, item := range strings {
		if _, value := presentStrings[item]; !value && item != "" {
			presentStrings[item] = true
			list = append(list, item)
		}
	}
	return list
}

// SplitList splits a delimited value such as "22|33|J" dropping blank and repeated entries
func SplitList(value string, separator string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, separator)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}

	return RemoveDuplicateStrings(parts, nil)
}
