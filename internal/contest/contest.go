// Package contest carries the sales-contest demo dataset. The remote API
// has no contest endpoints yet; the collections here are read-only and the
// pages treat them like any fetched collection, so swapping in a real
// fetcher later does not change the views.
package contest

// LeaderboardEntry is one ranked seller on the contest leaderboard.
type LeaderboardEntry struct {
	Name      string
	Target    string // e.g. "20%"
	Achieved  string
	Highlight bool // current leader
}

// Row is one contest in the status table.
type Row struct {
	Team    string
	Contest string
	Target  string
	Status  string // Upcoming, Ongoing, Complete
}

// ProgressPoint is one week of contest progress.
type ProgressPoint struct {
	Week  string
	Value float64
}

// Participation is one department's share of contest participants.
type Participation struct {
	Department string
	Value      float64
}

// Leaderboard returns the current contest standings.
func Leaderboard() []LeaderboardEntry {
	return []LeaderboardEntry{
		{Name: "Orxan Hüseyinov", Target: "20%", Achieved: "30%", Highlight: true},
		{Name: "Ayla Mammadova", Target: "20%", Achieved: "20%"},
		{Name: "Seving Aslanova", Target: "20%", Achieved: "20%"},
	}
}

// Rows returns the contest status table.
func Rows() []Row {
	return []Row{
		{Team: "Team Sales", Contest: "Sales Contest", Target: "15%", Status: "Upcoming"},
		{Team: "Team Marketing", Contest: "Marketing Contest", Target: "20%", Status: "Ongoing"},
		{Team: "All Employees", Contest: "Best Employee Contest", Target: "10%", Status: "Ongoing"},
		{Team: "Team Management", Contest: "Management Contest", Target: "20%", Status: "Ongoing"},
		{Team: "All Teams", Contest: "Team Contest", Target: "30%", Status: "Complete"},
	}
}

// Progress returns the weekly contest progress series.
func Progress() []ProgressPoint {
	return []ProgressPoint{
		{Week: "1W", Value: 5},
		{Week: "2W", Value: 10},
		{Week: "3W", Value: 15},
		{Week: "4W", Value: 20},
		{Week: "5W", Value: 25},
	}
}

// DepartmentParticipation returns contest participation by department.
func DepartmentParticipation() []Participation {
	return []Participation{
		{Department: "Marketing", Value: 18},
		{Department: "Management", Value: 11},
		{Department: "Sales", Value: 9},
	}
}
