// Package report carries the reporting datasets the charts render: the
// monthly sales curve, yearly target-vs-achieved series, incentive
// payouts, and quarterly team performance. Like package contest, these are
// demo collections standing in for endpoints the remote does not expose.
package report

// MonthlySale is one month on the sales report chart.
type MonthlySale struct {
	Month  string
	Amount float64
}

// YearlyPoint is one month of target vs achieved sales.
type YearlyPoint struct {
	Month    string
	Target   float64
	Achieved float64
}

// IncentivePoint is one month of incentive payouts.
type IncentivePoint struct {
	Month string
	Value float64
}

// TeamQuarter is one team's quarterly performance row.
type TeamQuarter struct {
	Team       string
	Achieved   string
	Target     string
	Rate       string
	Incentives string
}

// MonthlySales returns the month-by-month sales report series.
func MonthlySales() []MonthlySale {
	return []MonthlySale{
		{Month: "Jan", Amount: 90000}, {Month: "Feb", Amount: 70000},
		{Month: "Mar", Amount: 50000}, {Month: "Apr", Amount: 55000},
		{Month: "May", Amount: 57000}, {Month: "Jun", Amount: 60000},
		{Month: "Jul", Amount: 59000}, {Month: "Aug", Amount: 65000},
		{Month: "Sep", Amount: 62000}, {Month: "Oct", Amount: 72000},
		{Month: "Nov", Amount: 75000}, {Month: "Dec", Amount: 89000},
	}
}

// YearlySales returns the yearly target/achieved series.
func YearlySales() []YearlyPoint {
	return []YearlyPoint{
		{Month: "Jan", Target: 1000, Achieved: 800},
		{Month: "Feb", Target: 1200, Achieved: 900},
		{Month: "Mar", Target: 1500, Achieved: 1100},
		{Month: "Apr", Target: 1000, Achieved: 950},
		{Month: "May", Target: 1300, Achieved: 1200},
		{Month: "Jun", Target: 1400, Achieved: 1300},
		{Month: "Jul", Target: 1700, Achieved: 1500},
		{Month: "Aug", Target: 1800, Achieved: 1600},
		{Month: "Sep", Target: 1600, Achieved: 1400},
		{Month: "Oct", Target: 1500, Achieved: 1300},
		{Month: "Nov", Target: 1700, Achieved: 1500},
		{Month: "Dec", Target: 2000, Achieved: 1800},
	}
}

// Incentives returns the monthly incentive payout series.
func Incentives() []IncentivePoint {
	return []IncentivePoint{
		{Month: "Jan", Value: 400},
		{Month: "Feb", Value: 600},
		{Month: "Mar", Value: 500},
		{Month: "Apr", Value: 900},
	}
}

// QuarterlyPerformance returns per-team quarterly results.
func QuarterlyPerformance() []TeamQuarter {
	return []TeamQuarter{
		{Team: "TEAM 1", Achieved: "$20,000", Target: "$25,000", Rate: "80%", Incentives: "$20,000"},
		{Team: "TEAM 2", Achieved: "$17,000", Target: "$18,000", Rate: "70%", Incentives: "$17,000"},
		{Team: "TEAM 3", Achieved: "$28,000", Target: "$30,000", Rate: "81%", Incentives: "$28,000"},
		{Team: "TEAM 4", Achieved: "$14,000", Target: "$15,000", Rate: "85%", Incentives: "$14,000"},
		{Team: "TEAM 5", Achieved: "$17,000", Target: "$20,000", Rate: "70%", Incentives: "$17,000"},
	}
}

// Underperforming returns employees flagged for follow-up.
func Underperforming() []string {
	return []string{
		"Parviz Aslanov",
		"Seving Aslanova",
		"Ceyhun Aslanov",
		"Ayla Mammadova",
		"Orxan Hüseyinov",
	}
}
