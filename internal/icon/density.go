package icon

// FileName is the launcher icon written into every density directory.
const FileName = "ic_launcher.png"

// Density is an Android launcher icon bucket.
type Density struct {
	Name string
	Size int // square edge in pixels
}

// Dir returns the resource directory name, e.g. "mipmap-hdpi".
func (d Density) Dir() string {
	return "mipmap-" + d.Name
}

// Densities lists the launcher icon buckets in ascending size.
var Densities = []Density{
	{Name: "mdpi", Size: 48},
	{Name: "hdpi", Size: 72},
	{Name: "xhdpi", Size: 96},
	{Name: "xxhdpi", Size: 144},
	{Name: "xxxhdpi", Size: 192},
}
