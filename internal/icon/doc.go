// Package icon produces launcher icons for every Android density bucket.
// Rendering is delegated to a Rasterizer: an external vector tool invoked
// with an explicit argument list, or an in-process resampler for raster
// sources.
package icon
