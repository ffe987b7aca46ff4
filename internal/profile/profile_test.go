package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/password-guesser/internal/schemas"
	"github.com/jonathan/password-guesser/internal/types"
)

const johnJSON = `{
	"personal": {
		"first_name": "John",
		"last_name": "Smith",
		"birthdate": "1990-05-15",
		"pet_name": "Buddy",
		"phone": "(555) 123-4567"
	},
	"network": {"ssid": "Smith-Home WiFi"},
	"interests": {"hobbies": ["fishing", "rock climbing"], "favorite_number": "7"},
	"custom": {"words": ["John", "rex"], "numbers": ["42", "7"]}
}`

const johnYAML = `personal:
  first_name: John
  last_name: Smith
  birthdate: "1990-05-15"
  pet_name: Buddy
custom:
  numbers: ["42"]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_JSON(t *testing.T) {
	p, err := Load(writeFile(t, "john.json", johnJSON))
	require.NoError(t, err)

	assert.Equal(t, "John", p.Personal.FirstName)
	assert.Equal(t, "1990-05-15", p.Personal.Birthdate)
	assert.Equal(t, []string{"fishing", "rock climbing"}, p.Interests.Hobbies)
}

func TestLoad_YAML(t *testing.T) {
	for _, ext := range []string{"john.yaml", "john.yml"} {
		p, err := Load(writeFile(t, ext, johnYAML))
		require.NoError(t, err, ext)
		assert.Equal(t, "Buddy", p.Personal.PetName)
		assert.Equal(t, []string{"42"}, p.Custom.Numbers)
	}
}

func TestLoad_EmptyYAMLIsEmptyProfile(t *testing.T) {
	p, err := Load(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Empty(t, SeedWords(p))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantMsg string
	}{
		{"unknown extension", "p.toml", "[personal]", "unknown format"},
		{"json schema violation", "p.json", `{"personal": {"birthdate": "May 15"}}`, "schema validation failed"},
		{"json unknown section", "p.json", `{"socials": {}}`, "schema validation failed"},
		{"yaml unknown field", "p.yaml", "personal:\n  middle_name: Q\n", "failed to parse YAML"},
		{"yaml invalid date", "p.yaml", "personal:\n  birthdate: \"1990-13-45\"\n", "invalid profile"},
		{"yaml bad number", "p.yaml", "custom:\n  numbers: [\"12a\"]\n", "invalid profile"},
		{"yaml bad url", "p.yaml", "harvest:\n  urls: [\"not a url\"]\n", "invalid profile"},
		{"yaml spider too deep", "p.yaml", "harvest:\n  spider_depth: 9\n", "invalid profile"},
		{"json spider too deep", "p.json", `{"harvest": {"spider_depth": 9}}`, "schema validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := Load(path)
			require.Error(t, err)

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, path, loadErr.Path)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad_SchemaErrorsAreStructured(t *testing.T) {
	_, err := Load(writeFile(t, "p.json", `{"custom": {"numbers": ["x"]}}`))
	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestSeedWords(t *testing.T) {
	p, err := Parse([]byte(johnJSON), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"john", "smith", "buddy",
		"smith-home wifi", "home", "wifi",
		"fishing", "rock climbing", "rock", "climbing",
		"rex",
	}, SeedWords(p))
}

func TestSeedWords_SkipsBlank(t *testing.T) {
	p := &types.Profile{Custom: types.Custom{Words: []string{"  ", "", " Rex "}}}
	assert.Equal(t, []string{"rex"}, SeedWords(p))
}

func TestSeedNumbers(t *testing.T) {
	p, err := Parse([]byte(johnJSON), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"1990", "90", "05", "15", "0515", "1505", "05151990", "15051990", "051590", "150590",
		"5551234567", "4567",
		"7",
		"42",
	}, SeedNumbers(p))
}

func TestDecomposeDate(t *testing.T) {
	frags := DecomposeDate("1990-05-15")
	assert.Contains(t, frags, "1990")
	assert.Contains(t, frags, "90")
	assert.Contains(t, frags, "0515")
	assert.Contains(t, frags, "051590")
	assert.Len(t, frags, 10)

	assert.Len(t, DecomposeDate(" 2001-12-03 "), 10)

	for _, bad := range []string{"", "1990/05/15", "90-05-15", "1990-5-3", "1990-13-45", "1990-02-30"} {
		assert.Nil(t, DecomposeDate(bad), bad)
	}
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("/tmp/x.JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = FormatFromPath("x.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatFromPath("x.txt")
	assert.Error(t, err)
}
