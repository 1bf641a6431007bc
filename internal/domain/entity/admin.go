package entity

import "time"

type AdminRole string

const (
	AdminSuperOwner  AdminRole = "Super Owner"
	AdminJuniorOwner AdminRole = "Junior Owner"
	AdminManager     AdminRole = "Manager"
	AdminStaff       AdminRole = "Staff"
)

func (r AdminRole) Valid() bool {
	switch r {
	case AdminSuperOwner, AdminJuniorOwner, AdminManager, AdminStaff:
		return true
	}
	return false
}

type AdminAccount struct {
	ID           string    `json:"id" firestore:"id"`
	Username     string    `json:"username" firestore:"username"`
	PasswordHash string    `json:"passwordHash" firestore:"passwordHash"`
	Role         AdminRole `json:"role" firestore:"role"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
}
