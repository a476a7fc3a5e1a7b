package catalog

import (
	"fmt"
	"strings"
)

// validate performs all structural checks on a category and question set.
// Returns a combined error describing all problems found, or nil if valid.
func validate(categories []Category, questions []Question) error {
	var errs []string

	if len(categories) == 0 {
		errs = append(errs, "no categories defined")
	}
	if len(questions) == 0 {
		errs = append(errs, "no questions defined")
	}

	catSet := make(map[CategoryID]bool, len(categories))
	for _, c := range categories {
		if c.ID == "" {
			errs = append(errs, "category with empty ID")
			continue
		}
		if catSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate category ID: %q", c.ID))
		}
		catSet[c.ID] = true
	}

	idSet := make(map[string]bool, len(questions))
	populated := make(map[CategoryID]bool)
	for _, q := range questions {
		if q.ID == "" {
			errs = append(errs, "question with empty ID")
			continue
		}
		if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		idSet[q.ID] = true

		if !catSet[q.Category] {
			errs = append(errs, fmt.Sprintf("question %q references unknown category %q", q.ID, q.Category))
		}
		populated[q.Category] = true

		if len(q.Options) == 0 {
			errs = append(errs, fmt.Sprintf("question %q has no options", q.ID))
		}

		optSet := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if optSet[o.ID] {
				errs = append(errs, fmt.Sprintf("question %q: duplicate option ID %q", q.ID, o.ID))
			}
			optSet[o.ID] = true
			if o.Value < 0 {
				errs = append(errs, fmt.Sprintf("question %q option %q: value must be >= 0, got %d", q.ID, o.ID, o.Value))
			}
		}
	}

	for _, c := range categories {
		if c.ID != "" && !populated[c.ID] {
			errs = append(errs, fmt.Sprintf("category %q has no questions", c.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
