package domain

import "time"

// SupportStatus enumerates lifecycle states for social media support requests.
type SupportStatus string

const (
	SupportStatusPending    SupportStatus = "PENDING"
	SupportStatusInProgress SupportStatus = "IN_PROGRESS"
	SupportStatusCompleted  SupportStatus = "COMPLETED"
	SupportStatusDeclined   SupportStatus = "DECLINED"
)

// Platform enumerates supported social media platforms.
type Platform string

const (
	PlatformInstagram Platform = "INSTAGRAM"
	PlatformFacebook  Platform = "FACEBOOK"
	PlatformTikTok    Platform = "TIKTOK"
	PlatformYouTube   Platform = "YOUTUBE"
	PlatformLinkedIn  Platform = "LINKEDIN"
	PlatformX         Platform = "X"
)

// SupportType enumerates the kinds of help offered.
type SupportType string

const (
	SupportAccountSetup SupportType = "ACCOUNT_SETUP"
	SupportContentPlan  SupportType = "CONTENT_PLAN"
	SupportGrowth       SupportType = "GROWTH"
	SupportAudit        SupportType = "AUDIT"
)

// SocialSupportRequest asks for help running social media accounts.
// Handles maps a platform name to the account handle on that platform;
// at least one requested platform must have a handle entry.
type SocialSupportRequest struct {
	ID          string
	Name        string
	Email       string
	OrgName     *string
	Platforms   []Platform
	Handles     map[string]string
	SupportType SupportType
	Description string
	Status      SupportStatus
	AdminNotes  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SupportStatusValues lists valid status strings.
func SupportStatusValues() []string {
	return enumValues(SupportStatusPending, SupportStatusInProgress, SupportStatusCompleted, SupportStatusDeclined)
}

// PlatformValues lists valid platform strings.
func PlatformValues() []string {
	return enumValues(PlatformInstagram, PlatformFacebook, PlatformTikTok, PlatformYouTube, PlatformLinkedIn, PlatformX)
}

// SupportTypeValues lists valid support type strings.
func SupportTypeValues() []string {
	return enumValues(SupportAccountSetup, SupportContentPlan, SupportGrowth, SupportAudit)
}
