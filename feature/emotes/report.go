package emotes

import "strings"

// joinIdentifiers renders the display identifiers space-joined in append
// order.
func joinIdentifiers(list []Emote) string {
	parts := make([]string, 0, len(list))
	for _, e := range list {
		parts = append(parts, e.Identifier())
	}
	return strings.Join(parts, " ")
}

// joinPreviews renders the CDN preview strings space-joined.
func joinPreviews(list []Emote) string {
	parts := make([]string, 0, len(list))
	for _, e := range list {
		parts = append(parts, e.PreviewString())
	}
	return strings.Join(parts, " ")
}

// buildErrorReport groups failed emotes by identical error message and
// renders each group as "{message} ( {identifiers} )", groups joined by
// " \ ". Group order follows first appearance.
func buildErrorReport(failed []Emote) string {
	var order []string
	groups := make(map[string][]Emote)
	for _, e := range failed {
		if _, ok := groups[e.ErrorMessage]; !ok {
			order = append(order, e.ErrorMessage)
		}
		groups[e.ErrorMessage] = append(groups[e.ErrorMessage], e)
	}

	parts := make([]string, 0, len(order))
	for _, msg := range order {
		parts = append(parts, msg+" ( "+joinIdentifiers(groups[msg])+" )")
	}
	return strings.Join(parts, " \\ ")
}

// buildFuzzyReport renders the fuzzy suggestions joined by " ; ".
func buildFuzzyReport(fuzzy []FuzzyEmote) string {
	parts := make([]string, 0, len(fuzzy))
	for _, f := range fuzzy {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, " ; ")
}
