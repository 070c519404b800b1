// Package spatial reprojects point coordinates between EPSG coordinate
// reference systems using PROJ.
//
// Coordinates are always handled as (x, y) = (longitude, latitude) for
// geographic systems, whatever axis order the CRS definition declares.
package spatial
