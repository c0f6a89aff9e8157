package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestReservationStatus_PendingCanReachEveryTerminalState(t *testing.T) {
	for _, target := range []ReservationStatus{StatusApproved, StatusRejected, StatusCancelled} {
		assert.True(t, StatusPending.CanTransitionTo(target), "pending -> %s should be legal", target)
	}
}

func TestReservationStatus_TerminalStatesAreFrozen(t *testing.T) {
	terminals := []ReservationStatus{StatusApproved, StatusRejected, StatusCancelled}
	targets := []ReservationStatus{StatusPending, StatusApproved, StatusRejected, StatusCancelled}

	for _, from := range terminals {
		for _, to := range targets {
			assert.False(t, from.CanTransitionTo(to), "%s -> %s should be illegal", from, to)
		}
	}
}

func TestReservationStatus_NoSelfLoopOrUnknownTarget(t *testing.T) {
	assert.False(t, StatusPending.CanTransitionTo(StatusPending))
	assert.False(t, StatusPending.CanTransitionTo(ReservationStatus("archived")))
}

func TestReservationRequest_Fee(t *testing.T) {
	request := &ReservationRequest{PackagePrice: 8500, DepositAmount: 2000}
	assert.Equal(t, int64(6500), request.Fee())
}
