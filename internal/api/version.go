package api

// Just define a constant version here
const shimVersion = "1.0.0"

// ShimVersion returns the version of this library as a string.
func ShimVersion() (string, error) {
	return shimVersion, nil
}
