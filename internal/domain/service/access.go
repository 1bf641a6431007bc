package service

import "skillio/internal/domain/entity"

// Capability is a single admin permission.
type Capability string

const (
	CapManageServices     Capability = "manage_services"
	CapManageBookings     Capability = "manage_bookings"
	CapReleasePayouts     Capability = "release_payouts"
	CapReviewApplications Capability = "review_applications"
	CapReviewPortfolios   Capability = "review_portfolios"
	CapModerateReviews    Capability = "moderate_reviews"
	CapManageBooks        Capability = "manage_books"
	CapManageUsers        Capability = "manage_users"
	CapViewTreasury       Capability = "view_treasury"
	CapViewActivity       Capability = "view_activity"
	CapManageAdmins       Capability = "manage_admins"
)

var roleCapabilities = map[entity.AdminRole][]Capability{
	entity.AdminSuperOwner: {
		CapManageServices, CapManageBookings, CapReleasePayouts, CapReviewApplications,
		CapReviewPortfolios, CapModerateReviews, CapManageBooks, CapManageUsers,
		CapViewTreasury, CapViewActivity, CapManageAdmins,
	},
	entity.AdminJuniorOwner: {
		CapManageServices, CapManageBookings, CapReleasePayouts, CapReviewApplications,
		CapReviewPortfolios, CapModerateReviews, CapManageBooks, CapManageUsers,
		CapViewTreasury, CapViewActivity,
	},
	entity.AdminManager: {
		CapManageServices, CapManageBookings, CapReviewApplications, CapReviewPortfolios,
		CapModerateReviews, CapManageBooks, CapViewActivity,
	},
	entity.AdminStaff: {
		CapManageBookings, CapManageBooks, CapViewActivity,
	},
}

func RoleHas(role entity.AdminRole, capability Capability) bool {
	for _, c := range roleCapabilities[role] {
		if c == capability {
			return true
		}
	}
	return false
}

func Capabilities(role entity.AdminRole) []Capability {
	return append([]Capability(nil), roleCapabilities[role]...)
}
