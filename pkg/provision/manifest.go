// Package provision implements the install-once gate for the SolSense
// Python environment: an ordered pip manifest, a per-user install marker,
// and an installer that runs the manifest and judges the aggregate outcome
// by the final, most failure-prone entry.
package provision

// Package represents a single pip install operation in the setup sequence.
type Package struct {
	// Name is the pip distribution name (e.g., "rasterio")
	Name string

	// Description is a short note on what the app uses it for
	Description string
}

// manifest is the fixed ordered package list for the SolSense viewer.
// Order matters: numpy must be installed before the libraries compiled
// against it, and rasterio goes last because its GDAL wheel is the entry
// most likely to fail. The final entry's outcome gates the install marker.
var manifest = []Package{
	{Name: "numpy", Description: "array math, required by the raster pipeline"},
	{Name: "pillow", Description: "image loading for splash and map tiles"},
	{Name: "matplotlib", Description: "slope and energy plots"},
	{Name: "requests", Description: "NASA POWER and Nominatim API clients"},
	{Name: "psutil", Description: "memory telemetry in the debug overlay"},
	{Name: "rasterio", Description: "GeoTIFF reading (binds native GDAL)"},
}

// Manifest returns the ordered package list.
func Manifest() []Package {
	out := make([]Package, len(manifest))
	copy(out, manifest)
	return out
}

// Sentinel returns the final manifest entry, whose pass/fail signal is
// used as the aggregate outcome of a setup pass.
func Sentinel() Package {
	return manifest[len(manifest)-1]
}

// Names returns the package names in install order.
func Names() []string {
	names := make([]string, len(manifest))
	for i, pkg := range manifest {
		names[i] = pkg.Name
	}
	return names
}
