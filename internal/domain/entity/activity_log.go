package entity

import "time"

type ActivityLog struct {
	ID        string    `json:"id" firestore:"id"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
	Action    string    `json:"action" firestore:"action"`
	User      string    `json:"user" firestore:"user"`
	ServiceID string    `json:"serviceId,omitempty" firestore:"serviceId,omitempty"`
}

const SystemActor = "SYSTEM"
