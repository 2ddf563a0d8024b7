package coolprop

import "github.com/coolprop/coolprop-go/pkg/coolprop/internal/backend"

// Version is the wrapper's semantic version, populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
var Version = "v0.0.0-in-progress"

// WrapperVersion returns the version of this Go wrapper.
func WrapperVersion() string {
	return Version
}

// EngineVersion returns the version string reported by the linked native
// engine.
func EngineVersion() (string, error) {
	v, err := backend.Version()
	if err != nil {
		return "", remapConfig(err)
	}
	return v, nil
}

// EngineGitRevision returns the git commit of the linked native engine.
func EngineGitRevision() (string, error) {
	v, err := backend.GitRevision()
	if err != nil {
		return "", remapConfig(err)
	}
	return v, nil
}
