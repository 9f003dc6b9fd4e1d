// Package shockfront tracks the position of the primary shock in a
// time series of 1-D density profiles.
//
// Every timestep is handled on its own:
//
//   - take the numerical gradient of the density row
//   - smooth the row with a width-3 moving average
//   - form the jump ratio rho_smooth[i-1] / rho_smooth[i+1] at interior zones
//   - keep zones where the gradient is negative and the ratio exceeds the
//     threshold, and pick the one with the steepest drop
//   - when nothing qualifies fall back to the most negative gradient
//
// The chosen zone is mapped to a radius with the zone edges of that
// timestep. The first radius of a trajectory is always 0, the first
// timestep precedes shock formation.
//
// Errors:
//
//   - ErrDimension: fewer than two zones, no timesteps, time edges not T+1
//     long, or radius edges not (T, Z+1) under their declared layout.
//   - ErrThreshold: threshold is NaN or not positive.
package shockfront
