package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillio/internal/domain/entity"
	"skillio/internal/infrastructure/token"
)

// Notifier pushes events to connected clients. Delivery is best effort.
type Notifier interface {
	Notify(userID string, event entity.Event)
	NotifyAdmins(event entity.Event)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, entity.Event) {}
func (nopNotifier) NotifyAdmins(entity.Event)   {}

func notifierOrNop(n Notifier) Notifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}

// AccountCreator provisions a login with an external identity provider.
type AccountCreator interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
}

type TokenIssuer interface {
	Issue(id token.Identity) (string, time.Time, error)
}

// Actor is whoever triggers a state change, used for permissions and the activity log.
type Actor struct {
	ID    string
	Name  string
	Admin bool
	Role  entity.AdminRole
}

func (a Actor) label() string {
	if a.Name != "" {
		return a.Name
	}
	if a.ID != "" {
		return a.ID
	}
	return entity.SystemActor
}

func event(t entity.EventType, payload interface{}) entity.Event {
	return entity.Event{Type: t, Payload: payload, At: time.Now()}
}

// newReference builds short human-friendly ids such as "BK-3F9A1C2D".
func newReference(prefix string) string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return prefix + strings.ToUpper(raw[:8])
}
