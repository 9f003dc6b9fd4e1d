// Package mesh converts cell-center coordinate samples of a 1-D radial mesh
// into cell-edge coordinates.
//
// Field data is laid out with one row per timestep and one column per zone.
// Edges are always reconstructed along the zone axis, so a (T, Z) center
// array becomes a (T, Z+1) edge array. Time centers are handled separately
// by TimeEdges, which turns (T,) into (T+1,).
//
// RadiusEdges carries an explicit Layout tag so that consumers never have to
// guess the orientation of an edge array from its extents.
package mesh
