package serviceImp

import (
	"encoding/json"
	"strings"

	"greenhouse/pkg/apperr"
	"greenhouse/pkg/profile"
	"greenhouse/pkg/profile/service"
	"greenhouse/pkg/settings/repository"
)

const (
	activeKey     = "active_profile_name"
	profilePrefix = "profile_"
)

type profileService struct {
	repo     repository.SettingsRepository
	defaults map[string]profile.Setpoints
}

func New(repo repository.SettingsRepository, defaults map[string]profile.Setpoints) service.ProfileService {
	return &profileService{repo: repo, defaults: defaults}
}

type activeName struct {
	Name string `json:"name"`
}

func (s *profileService) readActiveName() (string, error) {
	raw, ok, err := s.repo.Get(activeKey)
	if err != nil {
		return "", err
	}
	if !ok {
		if err := s.repo.Put(activeKey, activeName{Name: "Default"}); err != nil {
			return "", err
		}
		return "Default", nil
	}
	var a activeName
	if err := json.Unmarshal(raw, &a); err != nil || a.Name == "" {
		return "Default", nil
	}
	return a.Name, nil
}

func (s *profileService) GetActive() (string, profile.Setpoints, error) {
	name, err := s.readActiveName()
	if err != nil {
		return "", nil, err
	}

	raw, ok, err := s.repo.Get(profilePrefix + name)
	if err != nil {
		return "", nil, err
	}
	if ok {
		var st profile.Stored
		if err := json.Unmarshal(raw, &st); err != nil {
			return "", nil, err
		}
		return name, st.Setpoints, nil
	}

	// First access: seed every default bundle so the example profiles exist.
	for defName, sp := range s.defaults {
		if err := s.repo.Put(profilePrefix+defName, profile.Stored{ProfileName: defName, Setpoints: sp}); err != nil {
			return "", nil, err
		}
	}
	sp, ok := s.defaults[name]
	if !ok {
		sp = s.defaults["Default"]
	}
	return name, sp, nil
}

func (s *profileService) GetAll() (string, map[string]profile.Stored, error) {
	name, err := s.readActiveName()
	if err != nil {
		return "", nil, err
	}

	rows, err := s.repo.ListPrefix(profilePrefix)
	if err != nil {
		return "", nil, err
	}
	out := make(map[string]profile.Stored, len(rows))
	for _, row := range rows {
		var st profile.Stored
		if err := json.Unmarshal(row.Value, &st); err != nil {
			continue
		}
		out[strings.TrimPrefix(row.Key, profilePrefix)] = st
	}
	return name, out, nil
}

func (s *profileService) Save(name string, sp profile.Setpoints) error {
	return s.repo.Put(profilePrefix+name, profile.Stored{ProfileName: name, Setpoints: sp})
}

func (s *profileService) Activate(name string) (profile.Setpoints, error) {
	raw, ok, err := s.repo.Get(profilePrefix + name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Profile not found")
	}
	if err := s.repo.Put(activeKey, activeName{Name: name}); err != nil {
		return nil, err
	}
	var st profile.Stored
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, err
	}
	return st.Setpoints, nil
}
