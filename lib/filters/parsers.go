package filters

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// ParsePathFilter understands "|" (or), "&" (and), "!" (not) and doublestar
// globs. A glob without a wildcard also matches everything under that prefix,
// so "lib" behaves like a git pathspec and not only like an exact name.
func ParsePathFilter(rule string) (PathFilter, error) {
	rule = strings.TrimSpace(rule)

	switch {
	case rule == "":
		return All, nil

	case strings.Index(rule, "|") >= 0:
		clauses, err := ParsePathFilterList(strings.Split(rule, "|"))
		if err != nil {
			return nil, err
		}

		return func(path string) bool {
			result := false
			for _, f := range clauses {
				result = result || f(path)
			}
			return result
		}, nil

	case strings.Index(rule, "&") >= 0:
		clauses, err := ParsePathFilterList(strings.Split(rule, "&"))
		if err != nil {
			return nil, err
		}

		return func(path string) bool {
			result := true
			for _, f := range clauses {
				result = result && f(path)
			}
			return result
		}, nil

	case strings.HasPrefix(rule, "!"):
		f, err := ParsePathFilter(rule[1:])
		if err != nil {
			return nil, err
		}

		return func(path string) bool {
			return !f(path)
		}, nil

	default:
		pattern := strings.TrimSuffix(rule, "/")
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, errors.Errorf("invalid pathspec glob: %v", rule)
		}

		return func(path string) bool {
			if m, err := doublestar.PathMatch(pattern, path); err == nil && m {
				return true
			}

			m, err := doublestar.PathMatch(pattern+"/**", path)
			return err == nil && m
		}, nil
	}
}

func ParsePathFilterList(rules []string) ([]PathFilter, error) {
	result := make([]PathFilter, 0, len(rules))

	for _, rule := range rules {
		f, err := ParsePathFilter(rule)
		if err != nil {
			return nil, err
		}

		result = append(result, f)
	}

	return result, nil
}

// ParsePathFilters combines a pathspec argument list: any matching pattern
// includes the path, and no patterns at all means no restriction.
func ParsePathFilters(rules []string) (PathFilter, error) {
	fs, err := ParsePathFilterList(rules)
	if err != nil {
		return nil, err
	}

	return GroupPathFilters(fs...), nil
}
