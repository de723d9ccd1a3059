package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

// Typed flag values reject bad input at parse time, before any service runs.

type priorityValue struct{ p *domain.Priority }

func newPriorityValue(p *domain.Priority) pflag.Value { return &priorityValue{p: p} }

func (v *priorityValue) String() string { return string(*v.p) }
func (v *priorityValue) Type() string   { return "priority" }
func (v *priorityValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !domain.ValidPriorities[s] {
		return fmt.Errorf("must be low, medium or high")
	}
	*v.p = domain.Priority(s)
	return nil
}

type taskStatusValue struct{ s *domain.TaskStatus }

func newTaskStatusValue(s *domain.TaskStatus) pflag.Value { return &taskStatusValue{s: s} }

func (v *taskStatusValue) String() string { return string(*v.s) }
func (v *taskStatusValue) Type() string   { return "status" }
func (v *taskStatusValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !domain.ValidTaskStatuses[s] {
		return fmt.Errorf("must be pending or completed")
	}
	*v.s = domain.TaskStatus(s)
	return nil
}

type entryTypeValue struct{ t *domain.EntryType }

func newEntryTypeValue(t *domain.EntryType) pflag.Value { return &entryTypeValue{t: t} }

func (v *entryTypeValue) String() string { return string(*v.t) }
func (v *entryTypeValue) Type() string   { return "type" }
func (v *entryTypeValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !domain.ValidEntryTypes[s] {
		return fmt.Errorf("must be income, expense or saving")
	}
	*v.t = domain.EntryType(s)
	return nil
}

type decimalValue struct{ d *decimal.Decimal }

func newDecimalValue(d *decimal.Decimal) pflag.Value { return &decimalValue{d: d} }

func (v *decimalValue) String() string { return v.d.String() }
func (v *decimalValue) Type() string   { return "amount" }
func (v *decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	*v.d = d
	return nil
}

type monthValue struct{ m *string }

func newMonthValue(m *string) pflag.Value { return &monthValue{m: m} }

func (v *monthValue) String() string { return *v.m }
func (v *monthValue) Type() string   { return "YYYY-MM" }
func (v *monthValue) Set(s string) error {
	s = strings.TrimSpace(s)
	if err := domain.ValidateMonth("month", s); err != nil {
		return err
	}
	*v.m = s
	return nil
}
