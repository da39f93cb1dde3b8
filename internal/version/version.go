// Package version содержит сведения о сборке, которые проставляются через -ldflags:
//
//	go build -ldflags "-X eventchance/internal/version.BuildDate=2026-03-01 -X eventchance/internal/version.BuildCommit=abc123"
package version

import (
	"fmt"
	"runtime"
	"time"
)

var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
	BuildCI     string
)

// Номер сборки - число дней от этой даты
var buildEpoch = time.Date(
	2026, time.January, 1,
	0, 0, 0, 0,
	time.UTC,
)

// Info - сведения о сборке, отдаются на GET /version.
type Info struct {
	BuildID    int    `json:"buildId"`
	BuildDate  string `json:"buildDate,omitempty"`
	Commit     string `json:"commit"`
	Branch     string `json:"branch"`
	CI         string `json:"ci"`
	GoVersion  string `json:"goVersion"`
	Calculated bool   `json:"calculated"`
	Error      string `json:"error,omitempty"`
}

// CalculateBuildID считает номер сборки по BuildDate
func CalculateBuildID(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}

	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("build date %s is before epoch", date)
	}

	// Обе даты в UTC, поэтому часы делятся на сутки без остатка
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Get возвращает сведения о текущей сборке
func Get() Info {
	info := Info{
		BuildDate: BuildDate,
		Commit:    coalesce(BuildCommit, "unknown"),
		Branch:    coalesce(BuildBranch, "unknown"),
		CI:        coalesce(BuildCI, "local"),
		GoVersion: runtime.Version(),
	}

	id, err := CalculateBuildID(BuildDate)
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.BuildID = id
	info.Calculated = true
	return info
}

// String returns a human-readable build string.
func String() string {
	info := Get()

	if !info.Calculated {
		return fmt.Sprintf("eventchance build unknown (%s)", info.Error)
	}

	return fmt.Sprintf("eventchance build %d (%s) commit[%s] branch[%s] ci[%s]",
		info.BuildID, info.BuildDate, info.Commit, info.Branch, info.CI)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
