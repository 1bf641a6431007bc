package service

import "skillio/internal/domain/entity"

// IsDiscoverable reports whether a tasker may be listed under category.
// Identity approval, portfolio approval, public visibility and an active account are all
// required, plus either an active offered service in the category or a matching
// preferred job type.
func IsDiscoverable(u *entity.UserProfile, category entity.Category) bool {
	if u == nil || u.TaskerProfileSettings == nil {
		return false
	}
	s := u.TaskerProfileSettings

	if u.ProviderStatus != entity.ProviderApproved ||
		s.SubmissionStatus != entity.SubmissionApproved ||
		!s.IsPubliclyVisible ||
		s.IsDeactivated {
		return false
	}

	for _, offered := range s.OfferedServices {
		if offered.Category == category && offered.IsActive {
			return true
		}
	}
	for _, preferred := range s.PreferredJobTypes {
		if preferred == category {
			return true
		}
	}
	return false
}

func DiscoverTaskers(users []*entity.UserProfile, category entity.Category) []*entity.UserProfile {
	out := make([]*entity.UserProfile, 0)
	for _, u := range users {
		if IsDiscoverable(u, category) {
			out = append(out, u)
		}
	}
	return out
}

// PublishedServices selects the offered services shown on a public profile. It is
// independent of profile-level approval.
func PublishedServices(settings *entity.TaskerProfileSettings) []entity.TaskerService {
	out := make([]entity.TaskerService, 0)
	if settings == nil {
		return out
	}
	for _, s := range settings.OfferedServices {
		if s.PublishState == entity.PublishApproved && s.IsActive {
			out = append(out, s)
		}
	}
	return out
}
