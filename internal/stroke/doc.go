// Package stroke converts polylines into filled outlines for round-cap,
// round-join stroking.
//
// Instead of building offset paths with explicit join geometry, the expander
// emits one quad (thick segment body) per polyline segment plus one disk per
// vertex, all wound the same direction. Rasterized together under the
// nonzero winding rule the union is exactly a round-cap, round-join stroke:
// the disks realize both the joins and the end caps, and overlap between
// contours is harmless because coverage saturates.
//
// This trades a little fill-rate for join code that cannot produce miter
// spikes or self-intersection artifacts, which matters for the dense, tightly
// curved polylines produced by smoothed freehand input.
package stroke
