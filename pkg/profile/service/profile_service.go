package service

import "greenhouse/pkg/profile"

type ProfileService interface {
	// GetActive seeds the default profiles on first access.
	GetActive() (name string, sp profile.Setpoints, err error)
	GetAll() (active string, profiles map[string]profile.Stored, err error)
	Save(name string, sp profile.Setpoints) error
	// Activate fails with not-found when no such profile is stored.
	Activate(name string) (profile.Setpoints, error)
}
