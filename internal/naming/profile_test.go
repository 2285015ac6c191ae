package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowsStripsInvalidCharacters(t *testing.T) {
	got := Windows.FileName(`Re<po>rt:"2024"|?.docx`)
	for _, c := range windowsInvalid {
		if c == '.' {
			continue
		}
		assert.NotContains(t, got, string(c))
	}
	assert.True(t, strings.HasSuffix(got, ".docx"))
}

func TestWindowsReservedNames(t *testing.T) {
	cases := []string{"CON", "con", "Con", "PRN", "AUX", "NUL", "COM1", "COM9", "LPT1", "LPT9"}
	for _, name := range cases {
		got := Windows.FileName(name)
		assert.NotEqual(t, strings.ToUpper(name), strings.ToUpper(got), name)

		gotExt := Windows.FileName(name + ".txt")
		assert.NotEqual(t, strings.ToUpper(name)+".TXT", strings.ToUpper(gotExt), name)

		gotDir := Windows.DirName(name)
		assert.NotEqual(t, strings.ToUpper(name), strings.ToUpper(gotDir), name)
	}
}

func TestWindowsTrimsTrailingDotsAndSpaces(t *testing.T) {
	assert.Equal(t, "Report.txt", Windows.FileName("Report . .txt"))
	assert.Equal(t, "Budgets", Windows.DirName("Budgets.. "))
}

func TestWindowsCapsLength(t *testing.T) {
	long := strings.Repeat("a", 400) + ".docx"
	got := Windows.FileName(long)
	assert.LessOrEqual(t, len(got), MaxNameLength)
	assert.True(t, strings.HasSuffix(got, ".docx"))
}

func TestWindowsSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"CON",
		"CON.txt",
		`Bad<Name>*.xlsx`,
		"Trailing. .pdf",
		strings.Repeat("x", 300) + ".md",
		"Normal_Report_2024.docx",
		"",
	}
	for _, in := range inputs {
		once := Windows.FileName(in)
		assert.Equal(t, once, Windows.FileName(once), "input %q", in)

		onceDir := Windows.DirName(in)
		assert.Equal(t, onceDir, Windows.DirName(onceDir), "input %q", in)
	}
}

func TestPOSIXStripsSeparatorsAndNul(t *testing.T) {
	assert.Equal(t, "a_b_c.txt", POSIX.FileName("a/b\x00c.txt"))
	assert.Equal(t, "unnamed", POSIX.FileName(""))
	assert.Equal(t, "Reports", POSIX.DirName("Reports"))
}

func TestPOSIXKeepsWindowsHostileNames(t *testing.T) {
	// POSIX has no reserved device names and allows most punctuation.
	assert.Equal(t, "CON", POSIX.FileName("CON"))
	assert.Equal(t, "a<b>.txt", POSIX.FileName("a<b>.txt"))
}

func TestForPlatformForcesWindows(t *testing.T) {
	assert.Equal(t, "windows", ForPlatform(true).String())
}

func TestDisambiguate(t *testing.T) {
	assert.Equal(t, "Report_7.docx", Disambiguate("Report.docx", 7))
	assert.Equal(t, "notes_12", Disambiguate("notes", 12))
}
