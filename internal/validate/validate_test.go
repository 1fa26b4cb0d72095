package validate

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/visualpath/visualpath-api/pkg/util"
)

func TestCollectorReportsAllViolations(t *testing.T) {
	v := New()
	v.Require("name", "")
	v.Require("email", "  ")
	v.Email("email", "")
	v.OneOf("track", "ROBOTICS", []string{"WEB", "MOBILE"})

	err := v.Err("invalid payload")
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Len(t, domainErr.Details, 3)
	assert.Contains(t, domainErr.Details, "name")
	assert.Contains(t, domainErr.Details, "email")
	assert.Contains(t, domainErr.Details, "track")
}

func TestCollectorKeepsFirstViolationPerField(t *testing.T) {
	v := New()
	v.Require("name", "")
	v.Length("name", "", 2, 10)

	err := v.Err("invalid payload")
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "is required", domainErr.Details["name"])
}

func TestCollectorCleanReturnsNil(t *testing.T) {
	v := New()
	v.Require("name", "Ada")
	v.Email("email", "ada@example.org")
	assert.NoError(t, v.Err("invalid payload"))
}

func TestEmailShape(t *testing.T) {
	valid := []string{"ada@example.org", "a.b+c@sub.example.co"}
	invalid := []string{"ada", "ada@", "@example.org", "a b@example.org", "ada@example"}

	for _, addr := range valid {
		v := New()
		v.Email("email", addr)
		assert.False(t, v.HasErrors(), "expected %q to be valid", addr)
	}
	for _, addr := range invalid {
		v := New()
		v.Email("email", addr)
		assert.True(t, v.HasErrors(), "expected %q to be invalid", addr)
	}
}

func TestTimeParsesBothFormats(t *testing.T) {
	v := New()
	ts := v.Time("at", "2026-09-12T10:00:00Z")
	require.False(t, v.HasErrors())
	assert.Equal(t, time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC), ts)

	v = New()
	day := v.Time("at", "2026-09-12")
	require.False(t, v.HasErrors())
	assert.Equal(t, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), day)

	v = New()
	v.Time("at", "next tuesday")
	assert.True(t, v.HasErrors())
}

func TestURLRequiresHTTPScheme(t *testing.T) {
	good := "https://example.org/resume.pdf"
	bad := "ftp://example.org/resume.pdf"

	v := New()
	v.URL("resumeUrl", &good)
	assert.False(t, v.HasErrors())

	v = New()
	v.URL("resumeUrl", &bad)
	assert.True(t, v.HasErrors())

	v = New()
	v.URL("resumeUrl", nil)
	assert.False(t, v.HasErrors())
}

func TestEachRejectsEmptyAndUnknown(t *testing.T) {
	allowed := []string{"PHOTOGRAPHY", "EDITING"}

	v := New()
	v.Each("interests", nil, allowed)
	assert.True(t, v.HasErrors())

	v = New()
	v.Each("interests", []string{"PHOTOGRAPHY", "KNITTING"}, allowed)
	assert.True(t, v.HasErrors())

	v = New()
	v.Each("interests", []string{"PHOTOGRAPHY"}, allowed)
	assert.False(t, v.HasErrors())
}

func TestRangeBounds(t *testing.T) {
	v := New()
	v.Range("age", 13, 13, 30)
	v.Range("age2", 30, 13, 30)
	assert.False(t, v.HasErrors())

	v = New()
	v.Range("age", 12, 13, 30)
	assert.True(t, v.HasErrors())

	v = New()
	v.Range("age", 31, 13, 30)
	assert.True(t, v.HasErrors())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.org", NormalizeEmail("  ADA@Example.ORG "))
	assert.Equal(t, NormalizeEmail("ada@example.org"), NormalizeEmail(NormalizeEmail("ADA@EXAMPLE.ORG")))
}

func TestTrimPtr(t *testing.T) {
	blank := "   "
	padded := "  hello  "

	assert.Nil(t, TrimPtr(nil))
	assert.Nil(t, TrimPtr(&blank))
	require.NotNil(t, TrimPtr(&padded))
	assert.Equal(t, "hello", *TrimPtr(&padded))
}
