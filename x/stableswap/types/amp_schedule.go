package types

import sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

// AmpSchedule linearly interpolates the amplification coefficient A
// between InitialA and FutureA over [InitialTime, FutureTime].
// When no ramp is active InitialA == FutureA and both
// times equal the most recent stop/commit time.
type AmpSchedule struct {
	InitialA uint64
	FutureA uint64
	InitialTime int64
	FutureTime int64
}

// Effective returns A at time t: FutureA once t has reached
// FutureTime, otherwise the floor-divided linear interpolation.
func (s AmpSchedule) Effective(t int64) uint64 {
	if t >= s.FutureTime {
		return s.FutureA
	}
	if s.FutureA >= s.InitialA {
		delta := s.FutureA - s.InitialA
		elapsed := uint64(t - s.InitialTime)
		span := uint64(s.FutureTime - s.InitialTime)
		return s.InitialA + (delta*elapsed)/span
	}
	delta := s.InitialA - s.FutureA
	elapsed := uint64(t - s.InitialTime)
	span := uint64(s.FutureTime - s.InitialTime)
	return s.InitialA - (delta*elapsed)/span
}

// RampTo begins a ramp toward newA, reaching it at futureTime. It
// enforces rate bound and minimum-interval rules:
// - now must be at least MinRampTime past the current ramp's start
// - futureTime must be at least MinRampTime in the future
// - 0 < newA < MaxA
// - newA may not differ from the current effective A by more than a
// factor of MaxAChange in either direction
func (s *AmpSchedule) RampTo(newA uint64, futureTime, now int64) error {
	if now < s.InitialTime+MinRampTime {
		return sdkerrors.Wrap(ErrRampTooSoon, "ramp attempted before minimum interval since last ramp")
	}
	if futureTime < now+MinRampTime {
		return sdkerrors.Wrap(ErrRampTooSoon, "future time too close to now")
	}
	if newA == 0 || newA >= MaxA {
		return sdkerrors.Wrap(ErrInvalidConfig, "new A out of bounds")
	}

	current := s.Effective(now)
	if newA <= current {
		if current > newA*MaxAChange {
			return sdkerrors.Wrap(ErrRampTooFast, "new A too far below current A")
		}
	} else {
		if newA > current*MaxAChange {
			return sdkerrors.Wrap(ErrRampTooFast, "new A too far above current A")
		}
	}

	s.InitialA = current
	s.FutureA = newA
	s.InitialTime = now
	s.FutureTime = futureTime
	return nil
}

// Stop pins the schedule at its current effective value, ending any
// in-flight ramp.
func (s *AmpSchedule) Stop(now int64) {
	current := s.Effective(now)
	s.InitialA = current
	s.FutureA = current
	s.InitialTime = now
	s.FutureTime = now
}
