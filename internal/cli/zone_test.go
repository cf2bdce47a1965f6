package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonmap/internal/cli"
	"github.com/rshade/carbonmap/internal/config"
)

const stateYAML = `
schemaVersion: 1.0.0
application:
  selectedZoneName: DE
  electricityMixMode: consumption
  currentYear: 2018
data:
  countries:
    DE:
      series:
        - year: 2017
          exchange: {FR: 1.5, PL: 0.2}
          primaryEnergyProductionTWh: {coal: 30, nuclear: 10}
          totalPrimaryEnergyProductionTWh: 50
          totalEmissionsMegatonsCO2: 25
        - year: 2018
          exchange: {FR: -0.5}
          primaryEnergyConsumptionTWh: {coal: 10, solar: 5, nuclear: 5}
          totalPrimaryEnergyConsumptionTWh: 40
          totalFootprintMegatonsCO2: 100
          totalFootprintTonsCO2PerCapita: 9.5
    FR: {}
`

// setupCLITest isolates config and logging for a command test and returns the
// path of a state snapshot written to a temp dir.
func setupCLITest(t *testing.T) string {
	t.Helper()
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvStateFile, "")
	t.Setenv(config.EnvPrecision, "")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)

	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte(stateYAML), 0o600))
	return path
}

// runCLI executes the root command with args and returns combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestZoneShow_CurrentYear(t *testing.T) {
	state := setupCLITest(t)

	out, err := runCLI(t, "zone", "show", "--state", state)
	require.NoError(t, err)

	assert.Contains(t, out, "Zone DE")
	assert.Contains(t, out, "2018")
	assert.Contains(t, out, "2,500.0 gCO2eq/kWh")
	assert.Contains(t, out, "12.5%")
	assert.Contains(t, out, "25.0%")
	assert.Contains(t, out, "FR, PL")
}

func TestZoneShow_IndexProductionJSON(t *testing.T) {
	state := setupCLITest(t)

	out, err := runCLI(t, "zone", "show", "--state", state,
		"--mode", "production", "--index", "0", "--output", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "DE", doc["zone_name"])
	assert.Equal(t, "production", doc["mix_mode"])
	assert.Equal(t, true, doc["has_data"])
	assert.InDelta(t, 2017.0, doc["year"], 0)
	assert.InDelta(t, 0.0, doc["time_index"], 0)
	assert.InDelta(t, 500.0, doc["carbon_intensity"], 1e-9)
	assert.Equal(t, []any{}, doc["exchange_keys"])
	assert.Nil(t, doc["start_time"])
	assert.Equal(t, "2019", doc["end_time"])

	renewable, ok := doc["renewable_ratio"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 0.0, renewable["percentage"], 1e-9)

	lowCarbon, ok := doc["low_carbon_ratio"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 0.2, lowCarbon["percentage"], 1e-9)
}

func TestZoneShow_NaNIntensityIsNull(t *testing.T) {
	state := setupCLITest(t)

	// 2017 has no consumption totals, so the intensity is NaN.
	out, err := runCLI(t, "zone", "show", "--state", state, "--year", "2017", "-o", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, true, doc["has_data"])
	assert.Nil(t, doc["carbon_intensity"])
	assert.Nil(t, doc["time_index"])
}

func TestZoneShow_PopulationDomain(t *testing.T) {
	state := setupCLITest(t)

	out, err := runCLI(t, "zone", "show", "--state", state, "--domain", "population")
	require.NoError(t, err)
	assert.Contains(t, out, "9.5 tCO2eq/capita")
}

func TestZoneShow_NoData(t *testing.T) {
	state := setupCLITest(t)

	out, err := runCLI(t, "zone", "show", "--state", state, "--zone", "FR")
	require.NoError(t, err)
	assert.Contains(t, out, "Zone FR")
	assert.Contains(t, out, "no data for selection")
}

func TestZoneShow_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad domain", []string{"--domain", "water"}, "water"},
		{"bad mode", []string{"--mode", "imports"}, "imports"},
		{"bad output", []string{"--output", "xml"}, "unsupported output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := setupCLITest(t)
			args := append([]string{"zone", "show", "--state", state}, tt.args...)
			_, err := runCLI(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestZoneShow_NoStateFile(t *testing.T) {
	setupCLITest(t)

	_, err := runCLI(t, "zone", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no state snapshot")
}

func TestZoneShow_StateFromConfig(t *testing.T) {
	state := setupCLITest(t)
	t.Setenv(config.EnvStateFile, state)

	out, err := runCLI(t, "zone", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Zone DE")
}

func TestZoneHistory_Table(t *testing.T) {
	state := setupCLITest(t)

	out, err := runCLI(t, "zone", "history", "--state", state)
	require.NoError(t, err)

	assert.Contains(t, out, "YEAR")
	assert.Contains(t, out, "2017-01-01")
	assert.Contains(t, out, "2018-01-01")
	assert.Contains(t, out, "2,500.0 gCO2eq/kWh")
	assert.Contains(t, out, "History ends 2019")
}

func TestZoneHistory_JSON(t *testing.T) {
	state := setupCLITest(t)

	out, err := runCLI(t, "zone", "history", "--state", state, "-o", "json")
	require.NoError(t, err)

	var doc struct {
		ZoneName string `json:"zone_name"`
		EndTime  string `json:"end_time"`
		Entries  []struct {
			Index     int      `json:"index"`
			Year      int      `json:"year"`
			Datetime  string   `json:"datetime"`
			Intensity *float64 `json:"carbon_intensity"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "DE", doc.ZoneName)
	assert.Equal(t, "2019", doc.EndTime)
	require.Len(t, doc.Entries, 2)
	assert.Equal(t, "2017-01-01T00:00:00Z", doc.Entries[0].Datetime)
	assert.Nil(t, doc.Entries[0].Intensity)
	require.NotNil(t, doc.Entries[1].Intensity)
	assert.InDelta(t, 2500.0, *doc.Entries[1].Intensity, 1e-9)
}

func TestZoneHistory_EmptyZone(t *testing.T) {
	state := setupCLITest(t)

	out, err := runCLI(t, "zone", "history", "--state", state, "--zone", "ES")
	require.NoError(t, err)
	assert.Contains(t, out, "No history for the selected zone")
}

func TestZoneExchanges(t *testing.T) {
	state := setupCLITest(t)

	out, err := runCLI(t, "zone", "exchanges", "--state", state)
	require.NoError(t, err)
	assert.Contains(t, out, "ZONE")
	assert.Regexp(t, `FR\s+2`, out)
	assert.Regexp(t, `PL\s+1`, out)

	out, err = runCLI(t, "zone", "exchanges", "--state", state, "--mode", "production")
	require.NoError(t, err)
	assert.Contains(t, out, "No exchanges")
}

func TestZoneExchanges_JSON(t *testing.T) {
	state := setupCLITest(t)

	out, err := runCLI(t, "zone", "exchanges", "--state", state, "-o", "json")
	require.NoError(t, err)

	var doc struct {
		Keys []string `json:"exchange_keys"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []string{"FR", "PL"}, doc.Keys)
}

func TestZone_CountriesDirOverrides(t *testing.T) {
	state := setupCLITest(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "FR.yaml"),
		[]byte("series:\n  - year: 2018\n    exchange: {DE: 2}\n"), 0o600))

	out, err := runCLI(t, "zone", "exchanges", "--state", state, "--countries", dir, "--zone", "FR", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"DE"`)
}

func TestZoneHistory_SortAndLimit(t *testing.T) {
	state := setupCLITest(t)

	out, err := runCLI(t, "zone", "history", "--state", state,
		"--sort", "year:desc", "--limit", "1", "-o", "json")
	require.NoError(t, err)

	var doc struct {
		Entries []struct {
			Index int `json:"index"`
			Year  int `json:"year"`
		} `json:"entries"`
		Pagination struct {
			Returned   int  `json:"returned"`
			TotalItems int  `json:"total_items"`
			HasMore    bool `json:"has_more"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	require.Len(t, doc.Entries, 1)
	assert.Equal(t, 2018, doc.Entries[0].Year)
	assert.Equal(t, 1, doc.Entries[0].Index)
	assert.Equal(t, 1, doc.Pagination.Returned)
	assert.Equal(t, 2, doc.Pagination.TotalItems)
	assert.True(t, doc.Pagination.HasMore)

	out, err = runCLI(t, "zone", "history", "--state", state, "--offset", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "2017-01-01")
	assert.Contains(t, out, "2018-01-01")
}

func TestZoneHistory_InvalidSort(t *testing.T) {
	state := setupCLITest(t)

	_, err := runCLI(t, "zone", "history", "--state", state, "--sort", "savings")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sort field")

	_, err = runCLI(t, "zone", "history", "--state", state, "--limit", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit cannot be negative")
}

func TestZoneShow_PopulationFieldAbsent(t *testing.T) {
	state := setupCLITest(t)

	out, err := runCLI(t, "zone", "show", "--state", state, "--domain", "population", "--year", "2017")
	require.NoError(t, err)
	assert.Contains(t, out, "n/a")
	assert.NotContains(t, out, "NaN")

	out, err = runCLI(t, "zone", "show", "--state", state, "--domain", "population", "--year", "2017", "-o", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, true, doc["has_data"])
	assert.Nil(t, doc["carbon_intensity"])
}
