package entity

import "time"

type ProviderStatus string

const (
	ProviderApplied         ProviderStatus = "applied"
	ProviderUnderReview     ProviderStatus = "under_review"
	ProviderApproved        ProviderStatus = "approved"
	ProviderRejected        ProviderStatus = "rejected"
	ProviderSuspended       ProviderStatus = "suspended"
	ProviderChangesRequired ProviderStatus = "changes_required"
)

// ProviderApplication is the identity application a user files to become a tasker.
// There is at most one per user.
type ProviderApplication struct {
	ID                  string            `json:"id" firestore:"id"`
	UserID              string            `json:"userId" firestore:"userId"`
	UserName            string            `json:"userName" firestore:"userName"`
	UserEmail           string            `json:"userEmail" firestore:"userEmail"`
	UserPhone           string            `json:"userPhone" firestore:"userPhone"`
	Skills              []string          `json:"skills" firestore:"skills"`
	SpecificServices    []string          `json:"specificServices,omitempty" firestore:"specificServices,omitempty"`
	Experience          string            `json:"experience" firestore:"experience"`
	Availability        string            `json:"availability" firestore:"availability"`
	RequestedPricing    map[string]string `json:"requestedPricing" firestore:"requestedPricing"`
	Status              ProviderStatus    `json:"status" firestore:"status"`
	AppliedDate         string            `json:"appliedDate" firestore:"appliedDate"`
	SubmissionTimestamp *time.Time        `json:"submissionTimestamp,omitempty" firestore:"submissionTimestamp,omitempty"`
	BlockedDates        []string          `json:"blockedDates,omitempty" firestore:"blockedDates,omitempty"`
	AdminFeedback       string            `json:"adminFeedback,omitempty" firestore:"adminFeedback,omitempty"`
}

// IsPending reports whether the application waits on an admin decision.
func (a *ProviderApplication) IsPending() bool {
	return a.Status == ProviderApplied || a.Status == ProviderChangesRequired || a.Status == ProviderUnderReview
}
