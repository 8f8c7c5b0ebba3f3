package models

import "sort"

// TeamRecord is a team's regular-season record
type TeamRecord struct {
	TeamID        string     `json:"teamId"`
	Conference    Conference `json:"conference"`
	Wins          int        `json:"wins"`
	Losses        int        `json:"losses"`
	PointsFor     int        `json:"pointsFor"`
	PointsAgainst int        `json:"pointsAgainst"`
}

// GamesPlayed is wins plus losses
func (r TeamRecord) GamesPlayed() int {
	return r.Wins + r.Losses
}

// WinPct is zero for a team that has not played
func (r TeamRecord) WinPct() float64 {
	if r.GamesPlayed() == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.GamesPlayed())
}

// PointDiff is points scored minus points allowed
func (r TeamRecord) PointDiff() int {
	return r.PointsFor - r.PointsAgainst
}

// AddGame folds a final game into the record. Games the team did not play and
// games that are not final are ignored.
func (r *TeamRecord) AddGame(g *Game) {
	if g == nil || !g.Played() || !g.Involves(r.TeamID) {
		return
	}

	scored, allowed := g.HomeScore, g.AwayScore
	if g.AwayTeamID == r.TeamID {
		scored, allowed = allowed, scored
	}
	r.PointsFor += scored
	r.PointsAgainst += allowed
	if g.WinnerID() == r.TeamID {
		r.Wins++
	} else {
		r.Losses++
	}
}

// SortStandings orders records by win percentage, then point differential,
// then team ID.
func SortStandings(records []TeamRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.WinPct() != b.WinPct() {
			return a.WinPct() > b.WinPct()
		}
		if a.PointDiff() != b.PointDiff() {
			return a.PointDiff() > b.PointDiff()
		}
		return a.TeamID < b.TeamID
	})
}
