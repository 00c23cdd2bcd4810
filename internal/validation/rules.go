package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	timeOfDayPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	phonePattern     = regexp.MustCompile(`^\+?\d{10,15}$`)
	emailTLDPattern  = regexp.MustCompile(`\.[A-Za-z]{2,}$`)

	validate = validator.New()
)

// rule reports a failure for a single field, or ok=true when the field passes.
type rule func() (FieldError, bool)

// collector keeps at most one error per field, first failure wins.
type collector struct {
	errs []FieldError
	seen map[string]struct{}
}

func (c *collector) run(rules ...rule) {
	for _, r := range rules {
		fe, ok := r()
		if ok {
			continue
		}
		if _, dup := c.seen[fe.Field]; dup {
			continue
		}
		if c.seen == nil {
			c.seen = make(map[string]struct{})
		}
		c.seen[fe.Field] = struct{}{}
		c.errs = append(c.errs, fe)
	}
}

func (c *collector) result() Result {
	return Result{Errors: c.errs}
}

func check(field, message string, pass bool) rule {
	return func() (FieldError, bool) {
		return FieldError{Field: field, Message: message}, pass
	}
}

// checkFn defers evaluation of pass, for cross-field rules that depend on
// preconditions.
func checkFn(field, message string, pass func() bool) rule {
	return func() (FieldError, bool) {
		return FieldError{Field: field, Message: message}, pass()
	}
}

func minLen(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}

func isTimeOfDay(s string) bool {
	return timeOfDayPattern.MatchString(s)
}

func isPhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}

// isEmail also rejects quoted local parts and single-letter top-level domains,
// both of which the validator's email tag lets through.
func isEmail(s string) bool {
	if strings.ContainsRune(s, '"') || !emailTLDPattern.MatchString(s) {
		return false
	}
	return validate.Var(s, "required,email") == nil
}
