package entity

// Service is a catalog entry customers can book. Price is the display string
// shown to customers, e.g. "KES 2,000/session".
type Service struct {
	ID                 string   `json:"id" firestore:"id" yaml:"id"`
	Title              string   `json:"title" firestore:"title" yaml:"title"`
	Description        string   `json:"description" firestore:"description" yaml:"description"`
	Price              string   `json:"price" firestore:"price" yaml:"price"`
	DurationMinutes    int      `json:"durationMinutes" firestore:"durationMinutes" yaml:"durationMinutes"`
	Category           Category `json:"category" firestore:"category" yaml:"category"`
	ImageURL           string   `json:"imageUrl" firestore:"imageUrl" yaml:"imageUrl"`
	IsActive           bool     `json:"isActive" firestore:"isActive" yaml:"isActive"`
	MaxJobsPerDay      *int     `json:"maxJobsPerDay,omitempty" firestore:"maxJobsPerDay,omitempty" yaml:"maxJobsPerDay,omitempty"`
	AllowedProviderIDs []string `json:"allowedProviderIds,omitempty" firestore:"allowedProviderIds,omitempty" yaml:"allowedProviderIds,omitempty"`
	BlockedDates       []string `json:"blockedDates,omitempty" firestore:"blockedDates,omitempty" yaml:"blockedDates,omitempty"`
}

// AllowsProvider reports whether a provider may take bookings for the service.
// An empty allow-list admits every provider.
func (s *Service) AllowsProvider(providerID string) bool {
	if len(s.AllowedProviderIDs) == 0 {
		return true
	}
	for _, id := range s.AllowedProviderIDs {
		if id == providerID {
			return true
		}
	}
	return false
}

func (s *Service) IsBlockedOn(date string) bool {
	for _, d := range s.BlockedDates {
		if d == date {
			return true
		}
	}
	return false
}
