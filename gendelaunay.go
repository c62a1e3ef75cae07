// Package gendelaunay builds Delaunay triangulations of point sets in two or
// more dimensions.
//
// Samples are given as one coordinate array per dimension, so samples[0][i]
// is the first coordinate of point i. A Factory picks one of several
// back-ends depending on dimension, size and the required robustness, and
// the result is a Triangulation with helper tables for neighbor walks and
// edge numbering. 2-D triangulations can be refined with edge flips.
package gendelaunay
