package mission

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rebelnav/navodds/route"
)

func TestLoadFalcon_JSON(t *testing.T) {
	f, err := LoadFalcon(filepath.Join("testdata", "millennium-falcon.json"))
	require.NoError(t, err)
	assert.Equal(t, 6, *f.Autonomy)
	assert.Equal(t, "Tatooine", f.Departure)
	assert.Equal(t, "Endor", f.Arrival)
	require.Len(t, f.Routes, 5)
	assert.Equal(t, "Dagobah", f.Routes[0].Destination)
	assert.Equal(t, 6, *f.Routes[0].TravelTime)
}

func TestLoadFalcon_YAMLDefaultsAndSnakeCase(t *testing.T) {
	f, err := LoadFalcon(filepath.Join("testdata", "millennium-falcon.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDeparture, f.Departure)
	assert.Equal(t, DefaultArrival, f.Arrival)
	require.Len(t, f.Routes, 5)
	for _, r := range f.Routes {
		require.NotNil(t, r.TravelTime, "travel_time spelling must be accepted")
	}
	assert.Equal(t, 4, *f.Routes[1].TravelTime)
}

func TestLoadEmpire(t *testing.T) {
	for _, name := range []string{"empire-8.json", "empire-8.yaml"} {
		t.Run(name, func(t *testing.T) {
			e, err := LoadEmpire(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, 8, e.Days())
			hz := e.Hazards()
			require.Len(t, hz, 3)
			assert.Equal(t, "Hoth", hz[0].Planet)
			assert.Equal(t, 6, hz[0].Day)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := LoadFalcon(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, ErrFileNotFound)

	_, err = LoadEmpire(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestParseFalcon_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":          `{autonomy: 6`,
		"missing autonomy":  `{"routes": []}`,
		"zero autonomy":     `{"autonomy": 0, "routes": []}`,
		"negative autonomy": `{"autonomy": -2, "routes": []}`,
		"string autonomy":   `{"autonomy": "six", "routes": []}`,
		"no routes at all":  `{"autonomy": 6}`,
		"route no origin":   `{"autonomy": 6, "routes": [{"destination": "Hoth", "travelTime": 1}]}`,
		"route no time":     `{"autonomy": 6, "routes": [{"origin": "Tatooine", "destination": "Hoth"}]}`,
		"route negative":    `{"autonomy": 6, "routes": [{"origin": "Tatooine", "destination": "Hoth", "travelTime": -1}]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseFalcon([]byte(doc), FormatJSON)
			require.Error(t, err)
			assert.ErrorIs(t, err, route.ErrMalformedInput)
		})
	}
}

func TestParseFalcon_ValidationMessageUsesDocumentKeys(t *testing.T) {
	_, err := ParseFalcon([]byte(`{"autonomy": 6, "routes": [{"origin": "A", "destination": "B"}]}`), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "routes[0].travelTime is required")
}

func TestParseFalcon_EmptyRoutesAllowed(t *testing.T) {
	f, err := ParseFalcon([]byte(`{"autonomy": 1, "routes": []}`), FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, f.Routes)
}

func TestParseEmpire_Malformed(t *testing.T) {
	cases := map[string]string{
		"missing countdown":  `{"bounty_hunters": []}`,
		"negative countdown": `{"countdown": -1}`,
		"hunter no planet":   `{"countdown": 3, "bounty_hunters": [{"day": 1}]}`,
		"hunter no day":      `{"countdown": 3, "bounty_hunters": [{"planet": "Hoth"}]}`,
		"hunter neg day":     `{"countdown": 3, "bounty_hunters": [{"planet": "Hoth", "day": -4}]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseEmpire([]byte(doc), FormatJSON)
			require.Error(t, err)
			assert.ErrorIs(t, err, route.ErrMalformedInput)
		})
	}
}

func TestParseEmpire_ZeroCountdownAndNoHunters(t *testing.T) {
	e, err := ParseEmpire([]byte(`{"countdown": 0}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 0, e.Days())
	assert.Empty(t, e.Hazards())
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := ParseEmpire([]byte(`countdown = 3`), Format("toml"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("a/b.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("B.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("empire.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("empire"))
}

func TestLoadFalcon_RoutesDBResolvedRelativeToDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "falcon.json"),
		[]byte(`{"autonomy": 6, "routes_db": "universe.db"}`), 0o600))

	f, err := LoadFalcon(filepath.Join(dir, "falcon.json"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "universe.db"), f.RoutesDBPath())

	f.RoutesDB = "/abs/universe.db"
	assert.Equal(t, "/abs/universe.db", f.RoutesDBPath())
}
