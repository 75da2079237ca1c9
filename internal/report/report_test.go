package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/scholar/internal/award"
	"github.com/roach88/scholar/internal/record"
	"github.com/roach88/scholar/internal/registry"
)

func entry(s record.Student) registry.Entry {
	return registry.Entry{Student: s, Result: award.Calculate(s)}
}

func fullRoster() []registry.Entry {
	return []registry.Entry{
		entry(record.Student{ID: 1, Name: "Ada Obi", Gender: "Female", State: "OSUN", WellDressed: true, WellBehaved: true}),
		entry(record.Student{ID: 2, Name: "Musa Bello", Gender: "Male", State: "KANO"}),
		entry(record.Student{ID: 3, Name: "Kemi Adeyemi", Gender: "Female", State: "LAGOS", WellBehaved: true}),
		entry(record.Student{ID: 4, Name: "Tunde Bakare", Gender: "Male", State: "OSUN", WellDressed: true}),
	}
}

func assertGolden(t *testing.T, name string, r Report) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, buf.Bytes())
}

func TestWriteText_Golden(t *testing.T) {
	tests := []struct {
		name    string
		entries []registry.Entry
	}{
		{"full_roster", fullRoster()},
		{"single_student", []registry.Entry{
			entry(record.Student{ID: 12, Name: "Musa Bello", Gender: "Male", State: "KANO"}),
		}},
		{"empty_roster", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertGolden(t, tt.name, Build(tt.entries))
		})
	}
}

func TestWriteText_BannerHasTrophies(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Build(fullRoster())))

	lines := strings.Split(buf.String(), "\n")
	require.Greater(t, len(lines), 2)
	assert.Equal(t, strings.Repeat(" ", 30)+"🏆 PROFESSOR'S SCHOLARSHIP AWARD REPORT 🏆", lines[1])
}

func TestBuild_GrandTotals(t *testing.T) {
	r := Build(fullRoster())

	assert.Equal(t, "142000", r.Totals.TotalAward.String())
	assert.Equal(t, "7100.00", r.Totals.Deduction.StringFixed(2))
	assert.Equal(t, "134900.00", r.Totals.NetPayment.StringFixed(2))
	assert.Equal(t, award.DeductionPercent, r.DeductionPercent)
	assert.False(t, r.Empty())
}

func TestBuild_TotalsMatchRecomputation(t *testing.T) {
	entries := fullRoster()
	r := Build(entries)

	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(award.Calculate(e.Student).TotalAward)
	}
	assert.True(t, total.Equal(r.Totals.TotalAward))
	assert.True(t, r.Totals.TotalAward.Sub(r.Totals.Deduction).Equal(r.Totals.NetPayment))
}

func TestBuild_NoDriftOverManyRecords(t *testing.T) {
	var entries []registry.Entry
	for i := 0; i < 1000; i++ {
		entries = append(entries, entry(record.Student{ID: int64(i + 1), Gender: "Female", State: "OSUN", WellDressed: true, WellBehaved: true}))
	}

	r := Build(entries)
	assert.Equal(t, "51000000", r.Totals.TotalAward.String())
	assert.Equal(t, "2550000.00", r.Totals.Deduction.StringFixed(2))
	assert.Equal(t, "48450000.00", r.Totals.NetPayment.StringFixed(2))
}

func TestBuild_Empty(t *testing.T) {
	r := Build(nil)
	assert.True(t, r.Empty())
	assert.NotNil(t, r.Students)
	assert.True(t, r.Totals.TotalAward.IsZero())
}

func TestReport_JSON(t *testing.T) {
	data, err := json.Marshal(Build(fullRoster()[:1]))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	students := got["students"].([]any)
	require.Len(t, students, 1)
	first := students[0].(map[string]any)
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "Ada Obi", first["name"])
	assert.Equal(t, "OSUN", first["state"])
	assert.Equal(t, true, first["well_dressed"])
	assert.Equal(t, "51000", first["total_award"])
	assert.Equal(t, "2550", first["deduction"])
	assert.Equal(t, "48450", first["net_payment"])
	assert.Equal(t, float64(5), got["deduction_percent"])
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "₦0.00"},
		{"1000", "₦1,000.00"},
		{"2550", "₦2,550.00"},
		{"48450", "₦48,450.00"},
		{"1234567.891", "₦1,234,567.89"},
		{"999.995", "₦1,000.00"},
		{"-1050.5", "-₦1,050.50"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(decimal.RequireFromString(tt.in)))
		})
	}
}
