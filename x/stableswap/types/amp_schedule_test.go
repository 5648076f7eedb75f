package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/stableswap3/x/stableswap/types"
)

func TestAmpSchedule_RampInterpolation(t *testing.T) {
	now := int64(1_700_000_000)
	s := types.AmpSchedule{
		InitialA:    2000,
		FutureA:     2000,
		InitialTime: now,
		FutureTime:  now,
	}

	rampStart := now + types.MinRampTime + 1
	require.NoError(t, s.RampTo(4000, rampStart+86400, rampStart))

	mid := rampStart + 43200
	a := s.Effective(mid)
	require.True(t, a > 2000 && a < 4000, "got %d", a)

	require.Equal(t, uint64(4000), s.Effective(rampStart+86400))
	require.Equal(t, uint64(4000), s.Effective(rampStart+86400+1))
}

func TestAmpSchedule_RampTooFast(t *testing.T) {
	now := int64(1_700_000_000)
	s := types.AmpSchedule{InitialA: 2000, FutureA: 2000, InitialTime: now, FutureTime: now}
	rampStart := now + types.MinRampTime + 1
	err := s.RampTo(30000, rampStart+86400, rampStart)
	require.ErrorIs(t, err, types.ErrRampTooFast)
}

func TestAmpSchedule_RampTooSoon(t *testing.T) {
	now := int64(1_700_000_000)
	s := types.AmpSchedule{InitialA: 2000, FutureA: 2000, InitialTime: now, FutureTime: now}
	err := s.RampTo(4000, now+types.MinRampTime+100, now+100)
	require.ErrorIs(t, err, types.ErrRampTooSoon)
}

func TestAmpSchedule_Stop(t *testing.T) {
	now := int64(1_700_000_000)
	s := types.AmpSchedule{InitialA: 2000, FutureA: 2000, InitialTime: now, FutureTime: now}
	rampStart := now + types.MinRampTime + 1
	require.NoError(t, s.RampTo(4000, rampStart+86400, rampStart))

	stopAt := rampStart + 43200
	s.Stop(stopAt)
	mid := s.Effective(stopAt)
	require.Equal(t, s.InitialA, mid)
	require.Equal(t, s.FutureA, mid)
	require.Equal(t, s.Effective(stopAt+1), mid)
}

func TestGovernanceSchedule_Timelock(t *testing.T) {
	var g types.GovernanceSchedule
	now := int64(1_700_000_000)

	require.NoError(t, g.Commit(2_000_000, 6_000_000_000, now))
	require.Equal(t, now+types.AdminActionsDelay, g.Deadline)

	_, _, err := g.Apply(now + 100)
	require.ErrorIs(t, err, types.ErrDelayNotMet)

	err = g.Commit(1, 1, now+100)
	require.ErrorIs(t, err, types.ErrPendingActionExists)

	fee, adminFee, err := g.Apply(now + types.AdminActionsDelay)
	require.NoError(t, err)
	require.Equal(t, uint64(2_000_000), fee)
	require.Equal(t, uint64(6_000_000_000), adminFee)
	require.Equal(t, int64(0), g.Deadline)

	require.NoError(t, g.Commit(1, 1, now+types.AdminActionsDelay))
}
