package aggregate

import (
	"sort"

	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/model"
)

// FreeAgentCode is the team code assigned when a player's last observed
// team name is not a recognized franchise.
const FreeAgentCode = "Free Agent"

// teamCodes maps free-text franchise names to short codes. Renamed
// franchises map to the same code as their old name.
var teamCodes = map[string]string{ //nolint:gochecknoglobals // static lookup table
	"Chennai Super Kings":          "CSK",
	"Mumbai Indians":               "MI",
	"Royal Challengers Bangalore":  "RCB",
	"Royal Challengers Bengaluru":  "RCB",
	"Kolkata Knight Riders":        "KKR",
	"Sunrisers Hyderabad":          "SRH",
	"Rajasthan Royals":             "RR",
	"Delhi Capitals":               "DC",
	"Punjab Kings":                 "PBKS",
	"Lucknow Super Giants":         "LSG",
	"Gujarat Titans":               "GT",
}

// TeamCode resolves a free-text team name to its short code.
func TeamCode(name string) string {
	if code, ok := teamCodes[name]; ok {
		return code
	}
	return FreeAgentCode
}

// LastTeams resolves each player's current team as the team of their
// most recent delivery: the batting team where they last appeared as
// striker, falling back to the bowling team where they last bowled.
// "Most recent" orders by date first, then by original record order,
// so the tie-break is explicit rather than an artifact of sort
// stability. Returned values are short codes.
func LastTeams(deliveries []model.Delivery) map[string]string {
	// Index deliveries oldest-to-newest, preserving input order for
	// equal dates, then walk forward so the last write wins.
	order := make([]int, len(deliveries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return deliveries[order[i]].Date.Before(deliveries[order[j]].Date)
	})

	asBatter := make(map[string]string)
	asBowler := make(map[string]string)
	for _, idx := range order {
		d := deliveries[idx]
		asBatter[d.Striker] = d.BattingTeam
		asBowler[d.Bowler] = d.BowlingTeam
	}

	teams := make(map[string]string, len(asBatter)+len(asBowler))
	for player, team := range asBatter {
		teams[player] = TeamCode(team)
	}
	for player, team := range asBowler {
		if _, ok := asBatter[player]; ok {
			continue // batting appearance takes precedence
		}
		teams[player] = TeamCode(team)
	}
	return teams
}
