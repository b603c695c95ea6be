// Package filter provides client-side filtering of log entries using
// boolean expressions. Search results from the Olog service can be narrowed
// further than the server-side query parameters allow, e.g.:
//
//	f, err := filter.Compile(`hasTag("magnets") && daysSince(CreatedAt) < 7`)
//	matched, err := f.Apply(result.Logs)
package filter

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/sligara7/go-olog/olog"
)

// Filter is a compiled filter expression
type Filter struct {
	program    *vm.Program
	expression string
}

// Compile compiles a filter expression. The expression must evaluate to a
// boolean.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // Allow entry fields
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{
		program:    program,
		expression: expression,
	}, nil
}

// Expression returns the original expression string.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a single log entry.
func (f *Filter) Match(entry olog.Log) (bool, error) {
	result, err := expr.Run(f.program, buildEnv(entry))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}
	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression did not return a boolean")
	}
	return matched, nil
}

// Apply returns the entries matching the filter.
func (f *Filter) Apply(entries []olog.Log) ([]olog.Log, error) {
	var matched []olog.Log
	for _, entry := range entries {
		ok, err := f.Match(entry)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

// buildEnv creates the evaluation environment for one entry: its fields
// under stable names plus the helper functions.
func buildEnv(entry olog.Log) map[string]any {
	env := helperFunctions()

	env["ID"] = entry.ID
	env["Title"] = entry.Title
	env["Description"] = entry.Description
	env["Owner"] = entry.Owner
	env["Level"] = entry.Level
	env["Tags"] = entry.TagNames()
	env["Logbooks"] = entry.LogbookNames()
	env["Attachments"] = len(entry.Attachments)
	env["CreatedAt"] = entry.CreatedTime()
	env["Entry"] = entry

	env["hasTag"] = func(name string) bool {
		return slices.Contains(entry.TagNames(), name)
	}
	env["inLogbook"] = func(name string) bool {
		return slices.Contains(entry.LogbookNames(), name)
	}

	return env
}

// helperFunctions returns the static helpers usable in expressions.
func helperFunctions() map[string]any {
	return map[string]any{
		// Date helpers
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"monthsAgo": func(months int) time.Time {
			return time.Now().AddDate(0, -months, 0)
		},
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse("2006-01-02", dateStr)
			return t
		},
		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		// Current time
		"now": time.Now,
	}
}
