package adapters

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"lightspace/internal/core/logger"
	"lightspace/internal/features/checkout/domain"
	"lightspace/internal/features/checkout/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// declineReasons are the plausible processor responses the simulation picks
// from when a charge fails.
var declineReasons = []string{
	"Payment declined by your bank",
	"Insufficient funds",
	"Card expired",
	"Invalid CVV code",
	"Payment processing failed",
}

// SimulatedGateway implements ports.PaymentGateway without a real processor:
// it sleeps a uniformly random duration within the configured window and then
// declines at the configured rate. The storefront's only payment backend.
type SimulatedGateway struct {
	failureRate float64
	latencyMin  time.Duration
	latencyMax  time.Duration
	ids         ports.TransactionIDGenerator
	// randFloat is swappable so tests can force the outcome.
	randFloat func() float64
}

// NewSimulatedGateway creates a gateway with the given decline rate and
// latency window.
func NewSimulatedGateway(failureRate float64, latencyMin, latencyMax time.Duration, ids ports.TransactionIDGenerator) *SimulatedGateway {
	return &SimulatedGateway{
		failureRate: failureRate,
		latencyMin:  latencyMin,
		latencyMax:  latencyMax,
		ids:         ids,
		randFloat:   rand.Float64,
	}
}

// Charge waits out the simulated network latency and resolves the charge.
// Cancelling the context aborts the wait and returns ctx.Err().
func (g *SimulatedGateway) Charge(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error) {
	delay := g.latencyMin
	if g.latencyMax > g.latencyMin {
		delay += time.Duration(g.randFloat() * float64(g.latencyMax-g.latencyMin))
	}

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if g.randFloat() < g.failureRate {
		reason := declineReasons[int(g.randFloat()*float64(len(declineReasons)))%len(declineReasons)]
		logger.Get().Info("Simulated charge declined",
			zap.Float64("amount", req.Amount),
			zap.String("reason", reason),
		)
		return &domain.ChargeResult{
			Success:       false,
			DeclineReason: reason,
		}, nil
	}

	txnID := g.ids.NewTransactionID()
	logger.Get().Info("Simulated charge approved",
		zap.Float64("amount", req.Amount),
		zap.String("transaction_id", txnID),
	)

	return &domain.ChargeResult{
		Success:       true,
		TransactionID: txnID,
	}, nil
}

// UUIDTransactionIDs implements ports.TransactionIDGenerator with a
// timestamp plus UUID-derived suffix, e.g. TXN_1756600000000_a1b2c3d4e.
type UUIDTransactionIDs struct{}

// NewTransactionID mints a fresh transaction identifier.
func (UUIDTransactionIDs) NewTransactionID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("TXN_%d_%s", time.Now().UnixMilli(), suffix)
}
