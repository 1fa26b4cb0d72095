package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	apperrors "github.com/visualpath/visualpath-api/pkg/util"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Collector accumulates field violations so a submission reports every
// broken constraint at once instead of failing on the first.
type Collector struct {
	violations map[string]any
}

// New returns an empty collector.
func New() *Collector {
	return &Collector{violations: map[string]any{}}
}

// Require records a violation when the trimmed value is empty.
func (c *Collector) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.add(field, "is required")
	}
}

// Length enforces rune-length bounds on a non-empty value.
func (c *Collector) Length(field, value string, min, max int) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return
	}
	n := len([]rune(trimmed))
	if n < min {
		c.add(field, fmt.Sprintf("must be at least %d characters", min))
	} else if n > max {
		c.add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

// Email checks basic address shape on a non-empty value.
func (c *Collector) Email(field, value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return
	}
	if !emailPattern.MatchString(trimmed) {
		c.add(field, "must be a valid email address")
	}
}

// URL checks an optional http(s) URL.
func (c *Collector) URL(field string, value *string) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return
	}
	parsed, err := url.ParseRequestURI(strings.TrimSpace(*value))
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		c.add(field, "must be a valid http(s) URL")
	}
}

// Time parses an RFC3339 timestamp or a plain date, recording a violation
// on failure. Returns the zero time when parsing fails.
func (c *Collector) Time(field, value string) time.Time {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		c.add(field, "is required")
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return t
	}
	if t, err := time.Parse(time.DateOnly, trimmed); err == nil {
		return t
	}
	c.add(field, "must be an ISO 8601 date")
	return time.Time{}
}

// OneOf enforces enum membership on a non-empty value.
func (c *Collector) OneOf(field, value string, allowed []string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	for _, candidate := range allowed {
		if value == candidate {
			return
		}
	}
	c.add(field, fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")))
}

// Each enforces a non-empty array whose every element is in the enum.
func (c *Collector) Each(field string, values []string, allowed []string) {
	if len(values) == 0 {
		c.add(field, "must contain at least one entry")
		return
	}
	for _, value := range values {
		found := false
		for _, candidate := range allowed {
			if value == candidate {
				found = true
				break
			}
		}
		if !found {
			c.add(field, fmt.Sprintf("contains invalid entry %q", value))
			return
		}
	}
}

// Range enforces numeric bounds.
func (c *Collector) Range(field string, value, min, max int) {
	if value < min || value > max {
		c.add(field, fmt.Sprintf("must be between %d and %d", min, max))
	}
}

// Add records a custom violation for a field.
func (c *Collector) Add(field, message string) {
	c.add(field, message)
}

// HasErrors reports whether any violation was recorded.
func (c *Collector) HasErrors() bool {
	return len(c.violations) > 0
}

// Err returns nil when clean, otherwise a validation DomainError carrying
// every recorded violation.
func (c *Collector) Err(message string) error {
	if !c.HasErrors() {
		return nil
	}
	return apperrors.NewValidationError(message, c.violations)
}

func (c *Collector) add(field, message string) {
	if _, exists := c.violations[field]; exists {
		return
	}
	c.violations[field] = message
}

// NormalizeEmail trims and lowercases an address so equal emails compare
// equal before any lookup or conflict check.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// TrimPtr trims an optional free-text field, collapsing blank to nil.
func TrimPtr(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
