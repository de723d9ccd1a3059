package importer

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alexanderramin/lifetrack/internal/domain"
)

// Validate checks the backup for errors before conversion.
// Returns a slice of all validation errors found.
func Validate(schema *BackupSchema) []error {
	var errs []error

	if schema.Version != SchemaVersion {
		errs = append(errs, fmt.Errorf("version: unsupported value %d (expected %d)", schema.Version, SchemaVersion))
	}
	errs = append(errs, validateProfile(schema.Profile)...)
	for i := range schema.Tasks {
		errs = append(errs, validateTask(fmt.Sprintf("tasks[%d]", i), &schema.Tasks[i])...)
	}
	for i := range schema.Entries {
		errs = append(errs, validateEntry(fmt.Sprintf("entries[%d]", i), &schema.Entries[i])...)
	}

	return errs
}

func validateProfile(p *ProfileImport) []error {
	if p == nil {
		return nil
	}
	// Profile.Apply owns the age rule; run it against a scratch profile.
	var scratch domain.Profile
	patch := domain.ProfilePatch{Age: &p.Age}
	if err := scratch.Apply(patch, time.Time{}); err != nil {
		return []error{fmt.Errorf("profile.%w", err)}
	}
	return nil
}

func validateTask(path string, t *TaskImport) []error {
	var errs []error

	errs = append(errs, validateText(path+".title", t.Title)...)
	if t.Priority != "" && !domain.ValidPriorities[t.Priority] {
		errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", path, t.Priority))
	}
	if t.Status != "" && !domain.ValidTaskStatuses[t.Status] {
		errs = append(errs, fmt.Errorf("%s.status: invalid value %q", path, t.Status))
	}
	errs = append(errs, validateDates(path, t.Date, t.CreatedAt)...)

	return errs
}

func validateEntry(path string, e *EntryImport) []error {
	var errs []error

	if !domain.ValidEntryTypes[e.Type] {
		errs = append(errs, fmt.Errorf("%s.type: invalid value %q", path, e.Type))
	}
	if !e.Amount.IsPositive() {
		errs = append(errs, fmt.Errorf("%s.amount: must be greater than zero (got %s)", path, e.Amount.String()))
	}
	errs = append(errs, validateText(path+".description", e.Description)...)
	errs = append(errs, validateDates(path, e.Date, e.CreatedAt)...)

	return errs
}

// validateText checks a required free-text field the way the domain
// constructors see it: surrounding whitespace trimmed.
func validateText(field, value string) []error {
	value = strings.TrimSpace(value)
	if value == "" {
		return []error{fmt.Errorf("%s is required", field)}
	}
	if utf8.RuneCountInString(value) > domain.MaxTitleLen {
		return []error{fmt.Errorf("%s: longer than %d characters", field, domain.MaxTitleLen)}
	}
	return nil
}

func validateDates(path, date, createdAt string) []error {
	var errs []error
	if date == "" {
		errs = append(errs, fmt.Errorf("%s.date is required", path))
	} else if _, err := time.Parse(domain.DateLayout, date); err != nil {
		errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", path, date))
	}
	if createdAt != "" {
		if _, err := time.Parse(time.RFC3339Nano, createdAt); err != nil {
			errs = append(errs, fmt.Errorf("%s.created_at: invalid timestamp %q (expected RFC 3339)", path, createdAt))
		}
	}
	return errs
}
