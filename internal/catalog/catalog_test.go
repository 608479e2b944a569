package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cities.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

const validCatalog = `cities:
  - slug: jakarta
    name: Jakarta
    country: Indonesia
    country_code: ID
    latitude: -6.2088
    longitude: 106.8456
    timezone: Asia/Jakarta
    method: 11
  - slug: london
    name: London
    country: United Kingdom
    country_code: GB
    latitude: 51.5074
    longitude: -0.1278
    timezone: Europe/London
    method: 3
`

func TestLoadValidCatalog(t *testing.T) {
	cities, err := Load(writeCatalog(t, validCatalog))
	require.NoError(t, err)

	require.Len(t, cities, 2)
	assert.Equal(t, "jakarta", cities[0].Slug)
	assert.Equal(t, 11, cities[0].Method)
	assert.Equal(t, "Europe/London", cities[1].Timezone)

	loc := cities[0].Location()
	assert.Equal(t, "jakarta", loc.Slug)
	assert.Equal(t, "Jakarta", loc.Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEmptyCatalog(t *testing.T) {
	_, err := Load(writeCatalog(t, "cities: []\n"))
	assert.Error(t, err)
}

func TestLoadRejectsBadEntries(t *testing.T) {
	cases := map[string]string{
		"missing slug": `cities:
  - name: Jakarta
    latitude: -6.2
    longitude: 106.8
    timezone: Asia/Jakarta
`,
		"latitude out of range": `cities:
  - slug: broken
    name: Broken
    latitude: 200
    longitude: 106.8
    timezone: Asia/Jakarta
`,
		"bad timezone": `cities:
  - slug: broken
    name: Broken
    latitude: -6.2
    longitude: 106.8
    timezone: Not/A_Zone
`,
		"duplicate slug": `cities:
  - slug: jakarta
    name: Jakarta
    latitude: -6.2
    longitude: 106.8
    timezone: Asia/Jakarta
  - slug: jakarta
    name: Jakarta Again
    latitude: -6.3
    longitude: 106.9
    timezone: Asia/Jakarta
`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeCatalog(t, content))
			assert.Error(t, err)
		})
	}
}
