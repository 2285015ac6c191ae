package populate

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"time"
)

// Filename date conventions the name composer emits, most specific first so
// an 8-digit YYYYMMDD run is not misread as MMDDYYYY.
var datePatterns = []struct {
	re    *regexp.Regexp
	order func(g []string) (year, month, day int)
}{
	{
		regexp.MustCompile(`(\d{4})[-_](\d{2})[-_](\d{2})`),
		func(g []string) (int, int, int) { return atoi(g[1]), atoi(g[2]), atoi(g[3]) },
	},
	{
		regexp.MustCompile(`(\d{4})(\d{2})(\d{2})`),
		func(g []string) (int, int, int) { return atoi(g[1]), atoi(g[2]), atoi(g[3]) },
	},
	{
		regexp.MustCompile(`(\d{2})(\d{2})(\d{4})`),
		func(g []string) (int, int, int) { return atoi(g[3]), atoi(g[1]), atoi(g[2]) },
	},
	{
		regexp.MustCompile(`(\d{4})(\d{2})(?:[^0-9]|$)`),
		func(g []string) (int, int, int) { return atoi(g[1]), atoi(g[2]), 1 },
	},
	{
		regexp.MustCompile(`Q([1-4])[-_](\d{4})`),
		func(g []string) (int, int, int) { return atoi(g[2]), atoi(g[1]) * 3, 15 },
	},
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// dateFromName extracts a date embedded in a generated file name, if any.
// Out-of-range candidates are skipped so stray digit runs don't yield absurd
// timestamps; days are clamped to the month.
func dateFromName(name string) (time.Time, bool) {
	for _, p := range datePatterns {
		g := p.re.FindStringSubmatch(name)
		if g == nil {
			continue
		}
		year, month, day := p.order(g)
		if year < 2000 || year > 2030 || month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}
		switch {
		case month == 2 && day > 28:
			day = 28
		case day > 30 && (month == 4 || month == 6 || month == 9 || month == 11):
			day = 30
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
	}
	return time.Time{}, false
}

// stampTimes forges access and modification times for one written file. The
// date comes from the filename when one is embedded there, otherwise from the
// stream within the same fixed window the name composer uses, so identical
// seeds forge identical times. atime trails mtime but never passes now.
func stampTimes(name string, r *rand.Rand, now time.Time) (atime, mtime time.Time) {
	date, ok := dateFromName(name)
	if !ok {
		date = time.Date(2023+r.IntN(3), time.Month(1+r.IntN(12)), 1+r.IntN(28),
			0, 0, 0, 0, time.Local)
	}

	// Mostly business hours, occasionally off-hours.
	var hour int
	if r.Float64() < 0.8 {
		hour = 8 + r.IntN(10)
	} else {
		if n := r.IntN(14); n < 8 {
			hour = n
		} else {
			hour = n + 10
		}
	}

	mtime = date.Add(time.Duration(hour)*time.Hour +
		time.Duration(r.IntN(60))*time.Minute +
		time.Duration(r.IntN(60))*time.Second)

	atime = mtime.Add(time.Duration(r.IntN(86400*30)) * time.Second)
	if atime.After(now) {
		atime = now
	}
	return atime, mtime
}
