package config

// RunStateID represents the lifecycle state of a run
type RunStateID int

const (
	RunStateIdle RunStateID = iota
	RunStateRunning
	RunStateOver
)
