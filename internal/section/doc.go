// Package section implements the fiber section equilibrium engine.
//
// A Section is built from patch fibers (polygons, typically concrete) and
// node fibers (points with an area, typically bars), each carrying a
// material.Law. Mesh freezes the geometry. Two analyses consume a meshed
// section:
//
//   - MomentCurvature: increments curvature under a constant axial force and
//     solves the neutral axis depth for force equilibrium at every step.
//   - Interaction: sweeps the neutral axis depth for a set of orientations
//     to build the P-M interaction surface with the rectangular stress block.
//
// Plane sections remain plane: the strain of a fiber at curvature φ and
// neutral axis depth c is φ·(depth - c), where depth is measured down from
// the extreme top fiber. Tension is positive for strain, stress and force.
// The axial load of a moment-curvature run is therefore negative in
// compression, while interaction points report P positive in compression.
package section
