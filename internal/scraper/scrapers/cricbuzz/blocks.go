package cricbuzz

import "regexp"

// matchBlockRegex carves one chunk per match out of the normalized blob: from
// the matchId anchor through the end of the team2 object, plus a trailing
// venueInfo object when immediately present. The blob as a whole is not valid
// JSON, so anchor-bounded chunking beats a full parse that would fail
// outright on the first oddity.
var matchBlockRegex = regexp.MustCompile(`"matchId":\d+.*?"team2":\{.*?\}(?:,.*?"venueInfo":\{.*?\})?`)

// splitBlocks returns the per-match chunks in document order. Zero chunks is
// a valid outcome for pages whose payload has no match list.
func splitBlocks(blob string) []string {
	return matchBlockRegex.FindAllString(blob, -1)
}
