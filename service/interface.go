package service

// Service is a long-lived subsystem owned by the Hub
// The terminal screen and the audio device are services; the frame loop only borrows them
//
// The Hub drives each service through Init, then Start, then Stop, ordered so that a
// service's dependencies are initialized and started before it and stopped after it
type Service interface {
	// Name is the registry key, unique per hub
	Name() string

	// Dependencies lists service names that must come up first, nil for none
	Dependencies() []string

	// Init receives the args given to Register: screens, mouse modes, configs, flags
	// Unrecognized args are ignored
	Init(args ...any) error

	// Start runs after every registered service has initialized
	Start() error

	// Stop releases resources; calling it more than once is a no-op
	Stop() error
}
