package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultLeavePatterns match the shift names the rostering team books leave
// under. Overridable via LEAVE_REPORT_PATTERNS or the --leave-pattern flag.
var DefaultLeavePatterns = []string{"annual leave", "conference", "study leave", "sick leave"}

// Config carries every knob for one extraction run. Flags override the
// environment, which overrides the defaults baked into Load.
type Config struct {
	DatabaseURL    string
	OutputPath     string
	PDFPath        string
	MonthsAhead    int
	IncludePending bool
	MinSMOShifts   int
	SMOMarker      string
	LeavePatterns  []string
	DayPolicy      string
	TopN           int
	QueryTimeout   time.Duration
	AsOf           string
	Verbose        bool
}

func Load() Config {
	return Config{
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		OutputPath:     getEnv("LEAVE_REPORT_OUTPUT", "smo_leave_report.json"),
		PDFPath:        getEnv("LEAVE_REPORT_PDF", ""),
		MonthsAhead:    getEnvInt("LEAVE_REPORT_MONTHS", 6),
		IncludePending: getEnvBool("LEAVE_REPORT_INCLUDE_PENDING", true),
		MinSMOShifts:   getEnvInt("LEAVE_REPORT_MIN_SMO_SHIFTS", 4),
		SMOMarker:      getEnv("LEAVE_REPORT_SMO_MARKER", "smo"),
		LeavePatterns:  getEnvList("LEAVE_REPORT_PATTERNS", DefaultLeavePatterns),
		DayPolicy:      getEnv("LEAVE_REPORT_DAY_POLICY", "calendar"),
		TopN:           getEnvInt("LEAVE_REPORT_TOP", 10),
		QueryTimeout:   getEnvDuration("LEAVE_REPORT_QUERY_TIMEOUT", 60*time.Second),
		AsOf:           getEnv("LEAVE_REPORT_AS_OF", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}

// RunDate resolves the as-of override, falling back to now.
func (c Config) RunDate(now time.Time) (time.Time, error) {
	if strings.TrimSpace(c.AsOf) == "" {
		return now, nil
	}
	return time.Parse("2006-01-02", c.AsOf)
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if c.MonthsAhead <= 0 {
		return fmt.Errorf("months ahead must be positive")
	}
	if c.MinSMOShifts < 1 {
		return fmt.Errorf("minimum SMO shift count must be at least 1")
	}
	if strings.TrimSpace(c.SMOMarker) == "" {
		return fmt.Errorf("SMO marker must not be empty")
	}
	if len(c.LeavePatterns) == 0 {
		return fmt.Errorf("at least one leave pattern is required")
	}
	if c.DayPolicy != "calendar" && c.DayPolicy != "flat" {
		return fmt.Errorf("day policy must be calendar or flat, got %q", c.DayPolicy)
	}
	if c.TopN < 0 {
		return fmt.Errorf("top count must not be negative")
	}
	if c.QueryTimeout <= 0 {
		return fmt.Errorf("query timeout must be positive")
	}
	if strings.TrimSpace(c.AsOf) != "" {
		if _, err := time.Parse("2006-01-02", c.AsOf); err != nil {
			return fmt.Errorf("as-of date must be YYYY-MM-DD: %w", err)
		}
	}
	return nil
}
