package dash

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdash/cmd/salesdash/ui"
	"salesdash/internal/config"
	"salesdash/internal/erp"
	"salesdash/internal/session"
)

func testApp(t *testing.T) *App {
	t.Helper()
	mgr := session.NewManager(session.NewStore(t.TempDir()))
	client := erp.New("http://localhost:0", mgr.Token)
	mgr.AttachClient(client)
	return &App{
		Cfg:     config.DefaultConfig(),
		Styles:  ui.NewStyles(ui.LightTheme()),
		Client:  client,
		Session: mgr,
	}
}

func TestParseIncentives(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{" , ,", nil},
		{"5% bonus", []string{"5% bonus"}},
		{"5% bonus, travel , meal card", []string{"5% bonus", "travel", "meal card"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseIncentives(tc.in), "input %q", tc.in)
	}
}

func TestBuildSaleRows(t *testing.T) {
	date := time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)
	sales := []erp.Sale{
		{ID: "s1", ProductName: "Laptop", Amount: 1200, DateOfSale: date},
		{ID: "s2", ProductName: "Laptop", Amount: 1100, DateOfSale: date.AddDate(0, 1, 0)},
		{ID: "s3", ProductName: "Phone", Amount: 600, DateOfSale: date},
	}

	rows := buildSaleRows(sales)
	require.Len(t, rows, 3)

	// Quantity counts duplicate product names across the loaded set.
	assert.Equal(t, 2, rows[0].Quantity)
	assert.Equal(t, 2, rows[1].Quantity)
	assert.Equal(t, 1, rows[2].Quantity)

	// Day before month.
	assert.Equal(t, "07/03/2024", rows[0].Date)
	assert.Equal(t, "march", rows[0].month)
	assert.Equal(t, "april", rows[1].month)
}

func TestCollectDepartments(t *testing.T) {
	rows := []TeamRow{
		{Department: "Sales"},
		{Department: "Marketing"},
		{Department: "Sales"},
		{Department: ""},
	}
	got := collectDepartments(rows)
	assert.Equal(t, []string{"All", "Marketing", "Sales"}, got)
}

func TestSignupValidation(t *testing.T) {
	app := testApp(t)

	cases := []struct {
		name    string
		fields  [signupFieldCount]string
		wantErr string
	}{
		{
			name:    "missing name",
			fields:  [signupFieldCount]string{"", "a@b.com", "secret1", "secret1"},
			wantErr: "name is required",
		},
		{
			name:    "bad email",
			fields:  [signupFieldCount]string{"Mina", "not-an-email", "secret1", "secret1"},
			wantErr: "enter a valid email address",
		},
		{
			name:    "short password",
			fields:  [signupFieldCount]string{"Mina", "a@b.com", "abc", "abc"},
			wantErr: "password must be at least 6 characters",
		},
		{
			name:    "mismatch",
			fields:  [signupFieldCount]string{"Mina", "a@b.com", "secret1", "secret2"},
			wantErr: "passwords do not match",
		},
		{
			name:   "valid",
			fields: [signupFieldCount]string{"Mina", "a@b.com", "secret1", "secret1"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newSignupModel(app)
			for i, v := range tc.fields {
				m.inputs[i].SetValue(v)
			}
			assert.Equal(t, tc.wantErr, m.validate())
		})
	}
}

func TestRateParsing(t *testing.T) {
	assert.InDelta(t, 0.8, rate("80%"), 1e-9)
	assert.InDelta(t, 1.0, rate("140%"), 1e-9)
	assert.Zero(t, rate("n/a"))
	assert.Zero(t, rate("-5%"))
}

func TestLeaderboardItem(t *testing.T) {
	plain := leaderboardItem{}
	plain.entry.Name = "Ayla"
	assert.Equal(t, "Ayla", plain.Title())

	leader := leaderboardItem{}
	leader.entry.Name = "Orxan"
	leader.entry.Highlight = true
	assert.Contains(t, leader.Title(), "Orxan")
	assert.NotEqual(t, "Orxan", leader.Title(), "leader gets a marker")
}
