package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSetAny reports whether any of the named flags was set explicitly.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				found = true
			}
		}
	})
	return found
}

// envOverride maps an environment key (without the FIBCALC_ prefix) to the
// flag names it stands in for and a function applying its value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

func uintOverride(dst func(*AppConfig) *uint64) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			*dst(c) = parsed
		}
	}
}

func intOverride(dst func(*AppConfig) *int) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst(c) = parsed
		}
	}
}

func boolOverride(dst func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		p := dst(c)
		*p = parseBoolEnv(v, *p)
	}
}

// envOverrides is the table of supported FIBCALC_* variables.
var envOverrides = []envOverride{
	{"N", []string{"n"}, uintOverride(func(c *AppConfig) *uint64 { return &c.N })},
	{"NAIVE_N", []string{"naive-n"}, uintOverride(func(c *AppConfig) *uint64 { return &c.NaiveN })},
	{"NAIVE_LIMIT", []string{"naive-limit"}, uintOverride(func(c *AppConfig) *uint64 { return &c.NaiveLimit })},
	{"REPEAT", []string{"repeat"}, intOverride(func(c *AppConfig) *int { return &c.Repeat })},
	{"PARALLEL", []string{"parallel"}, intOverride(func(c *AppConfig) *int { return &c.Parallel })},
	{"LAST_DIGITS", []string{"last-digits"}, intOverride(func(c *AppConfig) *int { return &c.LastDigits })},

	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	{"ALGO", []string{"algo"}, func(c *AppConfig, v string) { c.Algo = v }},
	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, v string) { c.OutputFile = v }},

	{"CALCULATE", []string{"calculate", "c"}, boolOverride(func(c *AppConfig) *bool { return &c.ShowValue })},
	{"VERBOSE", []string{"v"}, boolOverride(func(c *AppConfig) *bool { return &c.Verbose })},
	{"DETAILS", []string{"details", "d"}, boolOverride(func(c *AppConfig) *bool { return &c.Details })},
	{"QUIET", []string{"quiet", "q"}, boolOverride(func(c *AppConfig) *bool { return &c.Quiet })},
	{"METRICS", []string{"metrics"}, boolOverride(func(c *AppConfig) *bool { return &c.Metrics })},
	{"NO_COLOR", []string{"no-color"}, boolOverride(func(c *AppConfig) *bool { return &c.NoColor })},
	{"TUI", []string{"tui"}, boolOverride(func(c *AppConfig) *bool { return &c.TUI })},
}

// parseBoolEnv accepts true/1/yes and false/0/no, case-insensitively.
// Anything else leaves defaultVal in place.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies FIBCALC_* values for flags not set on the
// command line: CLI flags > environment > defaults. Unparseable values are
// ignored.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
