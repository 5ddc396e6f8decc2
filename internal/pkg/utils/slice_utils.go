package utils

import "strings"

// SplitTags turns comma-separated tag lists into a flat, de-duplicated slice.
// Each input may itself hold several tags, e.g. "WNT,DataStore". Empty entries are dropped.
func SplitTags(values ...string) []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			tag := strings.TrimSpace(part)
			if tag == "" {
				continue
			}
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}
