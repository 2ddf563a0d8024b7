package backend

// Version reports the engine library version string.
func Version() (string, error) {
	return GlobalParamString("version")
}

// GitRevision reports the engine library git commit.
func GitRevision() (string, error) {
	return GlobalParamString("gitrevision")
}

// FluidsList reports the comma-separated list of fluids the engine knows.
func FluidsList() (string, error) {
	return GlobalParamString("FluidsList")
}
