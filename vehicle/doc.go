// Package vehicle defines the aircraft state snapshot consumed and produced by
// the trajectory search.
//
// What:
//
//   - State is an immutable value: position (X, Y, Z) in meters, heading Psi in
//     degrees, vertical speed VS and forward Speed in m/s.
//   - VX, VY, VZ are a derived velocity cache filled by New; they are never read
//     back by the search and are not authoritative.
//
// Frame:
//
//	Local ENU: X = east, Y = north, Z = up. Heading 0° points north, 90° east,
//	so a forward step advances X by Speed·sin(ψ) and Y by Speed·cos(ψ).
//
// Heading is a bearing and is NOT wrapped into [0,360). A state reached by
// turning left from 0° carries a negative heading; callers must not assume
// wraparound.
//
// Distances:
//
//   - HorizontalDistance uses X and Y only. Goal acceptance and the search
//     heuristic are horizontal-only, so altitude never enters either.
package vehicle
