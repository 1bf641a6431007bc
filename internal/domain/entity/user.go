package entity

type UserRole string

const (
	RoleStudent  UserRole = "Student"
	RoleParent   UserRole = "Parent"
	RoleCustomer UserRole = "Customer"
)

type AccountStatus string

const (
	AccountActive    AccountStatus = "Active"
	AccountSuspended AccountStatus = "Suspended"
)

type PublishState string

const (
	PublishDraft     PublishState = "draft"
	PublishSubmitted PublishState = "submitted"
	PublishApproved  PublishState = "approved"
	PublishRejected  PublishState = "rejected"
)

// SubmissionStatus is the portfolio review state, separate from the identity application.
type SubmissionStatus string

const (
	SubmissionDraft     SubmissionStatus = "draft"
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionApproved  SubmissionStatus = "approved"
)

type PriceType string

const (
	PricePerHour PriceType = "per_hour"
	PricePerTask PriceType = "per_task"
)

type TaskerService struct {
	ID           string       `json:"id" firestore:"id"`
	Title        string       `json:"title" firestore:"title"`
	Description  string       `json:"description" firestore:"description"`
	Category     Category     `json:"category" firestore:"category"`
	IsActive     bool         `json:"isActive" firestore:"isActive"`
	IsBookable   bool         `json:"isBookable" firestore:"isBookable"`
	PublishState PublishState `json:"service_publish_state" firestore:"service_publish_state"`
	Tags         []string     `json:"tags" firestore:"tags"`
	Priority     int          `json:"priority" firestore:"priority"`
	Price        int64        `json:"price" firestore:"price"`
	PriceType    PriceType    `json:"priceType" firestore:"priceType"`
	MinDuration  int          `json:"minDuration" firestore:"minDuration"`
	PricingNotes string       `json:"pricingNotes,omitempty" firestore:"pricingNotes,omitempty"`
	HasDiscount  bool         `json:"hasDiscount" firestore:"hasDiscount"`
}

type DayAvailability struct {
	IsClosed bool   `json:"isClosed" firestore:"isClosed"`
	Start    string `json:"start" firestore:"start"`
	End      string `json:"end" firestore:"end"`
}

// TaskerProfileSettings is the tasker's portfolio.
type TaskerProfileSettings struct {
	DisplayName          string                     `json:"displayName" firestore:"displayName"`
	Headline             string                     `json:"headline" firestore:"headline"`
	PhotoURL             string                     `json:"photoUrl" firestore:"photoUrl"`
	PublicBio            string                     `json:"publicBio" firestore:"publicBio"`
	ServiceArea          string                     `json:"serviceArea" firestore:"serviceArea"`
	Languages            []string                   `json:"languages" firestore:"languages"`
	IsAgeEligible        bool                       `json:"isAgeEligible" firestore:"isAgeEligible"`
	IsPubliclyVisible    bool                       `json:"isPubliclyVisible" firestore:"isPubliclyVisible"`
	CustomRates          map[string]string          `json:"customRates" firestore:"customRates"`
	PendingApproval      bool                       `json:"pendingApproval" firestore:"pendingApproval"`
	WeeklySchedule       string                     `json:"weeklySchedule" firestore:"weeklySchedule"`
	ExperienceLevel      string                     `json:"experienceLevel" firestore:"experienceLevel"`
	YearsExperience      *int                       `json:"yearsExperience,omitempty" firestore:"yearsExperience,omitempty"`
	SpecialStrengths     []string                   `json:"specialStrengths" firestore:"specialStrengths"`
	Certifications       string                     `json:"certifications,omitempty" firestore:"certifications,omitempty"`
	ExperienceHighlights []string                   `json:"experienceHighlights" firestore:"experienceHighlights"`
	WorkingStyle         string                     `json:"workingStyle" firestore:"workingStyle"`
	IntroMessage         string                     `json:"introMessage" firestore:"introMessage"`
	OfferedServices      []TaskerService            `json:"offeredServices" firestore:"offeredServices"`
	AvailabilityGrid     map[string]DayAvailability `json:"availabilityGrid" firestore:"availabilityGrid"`
	BlockedDates         []string                   `json:"blockedDates" firestore:"blockedDates"`
	BlockedDateReasons   map[string]string          `json:"blockedDateReasons,omitempty" firestore:"blockedDateReasons,omitempty"`
	IsUnavailableMode    bool                       `json:"isUnavailableMode" firestore:"isUnavailableMode"`
	AcceptingNewBookings bool                       `json:"acceptingNewBookings" firestore:"acceptingNewBookings"`
	PreferredJobTypes    []Category                 `json:"preferredJobTypes" firestore:"preferredJobTypes"`
	IsDeactivated        bool                       `json:"isDeactivated" firestore:"isDeactivated"`
	SubmissionStatus     SubmissionStatus           `json:"tasker_submission_status" firestore:"tasker_submission_status"`
	AcceptedGuidelines   bool                       `json:"acceptedGuidelines" firestore:"acceptedGuidelines"`
}

func (s *TaskerProfileSettings) IsBlockedOn(date string) bool {
	for _, d := range s.BlockedDates {
		if d == date {
			return true
		}
	}
	return false
}

type Preferences struct {
	PreferredTime       string `json:"preferredTime" firestore:"preferredTime"`
	Newsletter          bool   `json:"newsletter" firestore:"newsletter"`
	ServiceReminders    bool   `json:"serviceReminders" firestore:"serviceReminders"`
	AutoApproveCleaners bool   `json:"autoApproveCleaners" firestore:"autoApproveCleaners"`
}

type HouseholdNotes struct {
	GateCode            string `json:"gateCode" firestore:"gateCode"`
	PetInfo             string `json:"petInfo" firestore:"petInfo"`
	GeneralInstructions string `json:"generalInstructions" firestore:"generalInstructions"`
}

type UserProfile struct {
	ID                    string                 `json:"id" firestore:"id"`
	Name                  string                 `json:"name" firestore:"name"`
	Email                 string                 `json:"email" firestore:"email"`
	Phone                 string                 `json:"phone" firestore:"phone"`
	Address               string                 `json:"address" firestore:"address"`
	City                  string                 `json:"city" firestore:"city"`
	Role                  UserRole               `json:"role" firestore:"role"`
	ProviderStatus        ProviderStatus         `json:"providerStatus,omitempty" firestore:"providerStatus,omitempty"`
	JoinedDate            string                 `json:"joinedDate" firestore:"joinedDate"`
	Status                AccountStatus          `json:"status" firestore:"status"`
	Bio                   string                 `json:"bio,omitempty" firestore:"bio,omitempty"`
	TaskerProfileSettings *TaskerProfileSettings `json:"taskerProfileSettings,omitempty" firestore:"taskerProfileSettings,omitempty"`
	Preferences           Preferences            `json:"preferences" firestore:"preferences"`
	Notes                 HouseholdNotes         `json:"notes" firestore:"notes"`
}

func (u *UserProfile) IsSuspended() bool {
	return u.Status == AccountSuspended
}
