package cricbuzz

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/Vodeneev/cricfeed/internal/pkg/models"
	"github.com/Vodeneev/cricfeed/internal/pkg/timeutil"
)

// matchIDRegex matches the mandatory numeric match id
var matchIDRegex = regexp.MustCompile(`"matchId":(\d+)`)

// seriesNameRegex matches a series declaration; also used for back-scans
var seriesNameRegex = regexp.MustCompile(`"seriesName":"(.*?)"`)

// statusRegex matches the human-readable status line
var statusRegex = regexp.MustCompile(`"status":"(.*?)"`)

// stateRegex matches the machine state ("In Progress", "Complete", ...)
var stateRegex = regexp.MustCompile(`"state":"(.*?)"`)

// startDateRegex matches the epoch-ms start; quoted on some pages, bare on others
var startDateRegex = regexp.MustCompile(`"startDate":"?(\d+)`)

// venueInfoRegex captures the venue sub-object for timezone extraction
var venueInfoRegex = regexp.MustCompile(`"venueInfo":(\{.*?\})`)

// team1Regex and team2Regex capture the per-team sub-objects
var team1Regex = regexp.MustCompile(`"team1":(\{.*?\})`)
var team2Regex = regexp.MustCompile(`"team2":(\{.*?\})`)

// teamNameRegex matches the display name inside a team sub-object
var teamNameRegex = regexp.MustCompile(`"teamName":"(.*?)"`)

// imageIDRegex matches the numeric logo image id inside a team sub-object
var imageIDRegex = regexp.MustCompile(`"imageId":(\d+)`)

const (
	defaultSeries  = "Cricket Series"
	defaultStatus  = "Scheduled"
	defaultTeam    = "Unknown Team"
	teamLogoURL    = "https://static.cricbuzz.com/a/img/v1/152x152/i1/c%s/i.jpg"
	placeholderURL = "https://placehold.co/152x152?text=%s"
)

// extractRecord builds one rawRecord from a chunk. The full blob is needed
// for the series back-scan: series names are declared once and apply to all
// following matches until the next declaration. Chunks without an id or
// without both team sub-objects are dropped.
func extractRecord(chunk, blob string) (rawRecord, bool) {
	idM := matchIDRegex.FindStringSubmatch(chunk)
	if idM == nil {
		return rawRecord{}, false
	}
	t1M := team1Regex.FindStringSubmatch(chunk)
	t2M := team2Regex.FindStringSubmatch(chunk)
	if t1M == nil || t2M == nil {
		return rawRecord{}, false
	}

	r := rawRecord{
		id:     idM[1],
		series: seriesBefore(chunk, blob, idM[1]),
		team1:  extractTeam(t1M[1]),
		team2:  extractTeam(t2M[1]),
	}

	statusM := statusRegex.FindStringSubmatch(chunk)
	stateM := stateRegex.FindStringSubmatch(chunk)
	if stateM != nil {
		r.state = stateM[1]
	}
	switch {
	case statusM != nil:
		r.status = statusM[1]
	case stateM != nil:
		r.status = stateM[1]
	default:
		r.status = defaultStatus
	}

	if startM := startDateRegex.FindStringSubmatch(chunk); startM != nil {
		if ms, err := strconv.ParseInt(startM[1], 10, 64); err == nil {
			r.startMs = ms
			r.hasStart = true
		}
	}

	if venueM := venueInfoRegex.FindStringSubmatch(chunk); venueM != nil {
		var venue struct {
			Timezone string `json:"timezone"`
		}
		if err := json.Unmarshal([]byte(venueM[1]), &venue); err == nil && venue.Timezone != "" {
			if off, ok := timeutil.OffsetMinutes(venue.Timezone); ok {
				r.offsetMin = off
				r.hasOffset = true
			}
		}
	}

	return r, true
}

// seriesBefore resolves the series name for a chunk: the in-chunk value when
// present, otherwise the nearest declaration preceding this chunk's id anchor
// in the blob.
func seriesBefore(chunk, blob, id string) string {
	if m := seriesNameRegex.FindStringSubmatch(chunk); m != nil {
		return m[1]
	}
	idx := strings.Index(blob, `"matchId":`+id)
	if idx != -1 {
		all := seriesNameRegex.FindAllStringSubmatch(blob[:idx], -1)
		if len(all) > 0 {
			return all[len(all)-1][1]
		}
	}
	return defaultSeries
}

// extractTeam parses one team sub-object into display form.
func extractTeam(sub string) models.TeamInfo {
	name := defaultTeam
	if m := teamNameRegex.FindStringSubmatch(sub); m != nil {
		name = m[1]
	}
	logo := placeholderLogo(name)
	if m := imageIDRegex.FindStringSubmatch(sub); m != nil {
		logo = fmt.Sprintf(teamLogoURL, m[1])
	}
	return models.TeamInfo{Name: name, Logo: logo}
}

// placeholderLogo generates a logo URL from the first character of the name.
func placeholderLogo(name string) string {
	initial := ""
	for _, r := range name {
		initial = string(r)
		break
	}
	return fmt.Sprintf(placeholderURL, url.QueryEscape(initial))
}
