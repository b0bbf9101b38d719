package section

import (
	"sort"
	"strings"
)

// SortLabels returns a copy of labels ordered by section and then by
// case-folded label, which is the order Build expects.
func SortLabels(labels []string, alphabet string) ([]string, error) {
	alpha, err := parseAlphabet(alphabet)
	if err != nil {
		return nil, err
	}
	type keyed struct {
		label  string
		bucket int
		folded string
	}
	keys := make([]keyed, len(labels))
	for i, label := range labels {
		keys[i] = keyed{label: label, bucket: alpha.bucket(label), folded: strings.ToLower(strings.TrimSpace(label))}
	}
	sort.SliceStable(keys, func(i, j int) bool {
		if keys[i].bucket != keys[j].bucket {
			return keys[i].bucket < keys[j].bucket
		}
		return keys[i].folded < keys[j].folded
	})
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.label
	}
	return out, nil
}
