package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillio/pkg/logger"
)

// EscrowRequest describes money moving into or out of the platform's escrow.
type EscrowRequest struct {
	BookingID string
	Amount    int64
	Phone     string
	Reference string
}

type EscrowReceipt struct {
	Reference   string    `json:"reference"`
	BookingID   string    `json:"bookingId"`
	Amount      int64     `json:"amount"`
	Channel     string    `json:"channel"`
	ProcessedAt time.Time `json:"processedAt"`
}

// EscrowGateway captures customer payments into escrow and pays them out.
type EscrowGateway interface {
	Capture(ctx context.Context, req EscrowRequest) (*EscrowReceipt, error)
	Release(ctx context.Context, req EscrowRequest) (*EscrowReceipt, error)
	Refund(ctx context.Context, req EscrowRequest) (*EscrowReceipt, error)
}

// SimulatedMpesaGateway accepts every request. The optional delay only paces callers
// and is abandoned when ctx is done.
type SimulatedMpesaGateway struct {
	delay time.Duration
}

func NewSimulatedMpesaGateway(delay time.Duration) *SimulatedMpesaGateway {
	return &SimulatedMpesaGateway{delay: delay}
}

func (g *SimulatedMpesaGateway) Capture(ctx context.Context, req EscrowRequest) (*EscrowReceipt, error) {
	return g.process(ctx, "capture", req)
}

func (g *SimulatedMpesaGateway) Release(ctx context.Context, req EscrowRequest) (*EscrowReceipt, error) {
	return g.process(ctx, "release", req)
}

func (g *SimulatedMpesaGateway) Refund(ctx context.Context, req EscrowRequest) (*EscrowReceipt, error) {
	return g.process(ctx, "refund", req)
}

func (g *SimulatedMpesaGateway) process(ctx context.Context, op string, req EscrowRequest) (*EscrowReceipt, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	ref := req.Reference
	if ref == "" {
		ref = fmt.Sprintf("MP%s", strings.ToUpper(uuid.New().String()[:10]))
	}

	logger.Debug("simulated mpesa %s: booking=%s amount=%d ref=%s", op, req.BookingID, req.Amount, ref)

	return &EscrowReceipt{
		Reference:   ref,
		BookingID:   req.BookingID,
		Amount:      req.Amount,
		Channel:     "mpesa-simulated",
		ProcessedAt: time.Now().UTC(),
	}, nil
}
