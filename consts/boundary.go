package consts

const (
	DefaultServerPort = "5000"

	DefaultStatesBoundaryFile = "data/india-states-detailed.geojson"

	// DefaultStoreDriver serves boundaries straight from disk
	DefaultStoreDriver = "file"
)

// DistrictBoundaryFiles maps a lowercased state name to its district boundary file
var DistrictBoundaryFiles map[string]string

func init() {
	DistrictBoundaryFiles = make(map[string]string)

	DistrictBoundaryFiles["odisha"] = "data/odisha-districts-detailed.geojson"
}

// DefaultDistrictBoundaryFiles - copy of the built-in district registry, safe to hand to viper
func DefaultDistrictBoundaryFiles() map[string]string {
	files := make(map[string]string, len(DistrictBoundaryFiles))
	for state, file := range DistrictBoundaryFiles {
		files[state] = file
	}
	return files
}
