// Package chart lays out and animates a radial bar chart.
//
// Each series gets its own ring; its value is drawn as a wedge that starts
// at north and sweeps clockwise to the angle given by a shared linear
// Scale. Render builds a retained Scene on a Mount: ring guides, tick
// guides and one ArcShape per series. The host drives the scene by calling
// Mount.Advance for animation frames and Mount.PointerMove/PointerLeave
// for hover tooltips, and paints it with whatever backend it owns.
//
// Chart wraps Render with the host lifecycle: Initialize on ready, Update
// on property change.
package chart
