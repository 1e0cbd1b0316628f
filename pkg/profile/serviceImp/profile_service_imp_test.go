package serviceImp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"greenhouse/database"
	"greenhouse/pkg/apperr"
	"greenhouse/pkg/profile"
	"greenhouse/pkg/profile/service"
	"greenhouse/pkg/settings/repositoryImp"
)

func newTestService(t *testing.T, defaults map[string]profile.Setpoints) service.ProfileService {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	if defaults == nil {
		defaults = profile.LoadDefaults(filepath.Join(t.TempDir(), "absent.yml"))
	}
	return New(repositoryImp.New(db), defaults)
}

func TestGetActiveSeedsDefaults(t *testing.T) {
	svc := newTestService(t, nil)

	name, sp, err := svc.GetActive()
	require.NoError(t, err)
	require.Equal(t, "Default", name)
	require.InDelta(t, 18.0, sp["temp_min_c"], 0.001)

	// Seeding is visible through GetAll: the example profile exists too.
	active, all, err := svc.GetAll()
	require.NoError(t, err)
	require.Equal(t, "Default", active)
	require.Contains(t, all, "Default")
	require.Contains(t, all, "Strawberry")
	require.InDelta(t, 16.0, all["Strawberry"].Setpoints["temp_min_c"], 0.001)
}

func TestActivateUnknownProfile(t *testing.T) {
	svc := newTestService(t, nil)

	_, _, err := svc.GetActive()
	require.NoError(t, err)

	_, err = svc.Activate("Tomato")
	require.EqualError(t, err, "Profile not found")
	require.Equal(t, 404, apperr.Status(err))
}

func TestSaveThenActivate(t *testing.T) {
	svc := newTestService(t, nil)

	require.NoError(t, svc.Save("Tomato", profile.Setpoints{"temp_min_c": 15, "temp_max_c": 27}))

	sp, err := svc.Activate("Tomato")
	require.NoError(t, err)
	require.InDelta(t, 27, sp["temp_max_c"], 0.001)

	name, sp, err := svc.GetActive()
	require.NoError(t, err)
	require.Equal(t, "Tomato", name)
	require.InDelta(t, 15, sp["temp_min_c"], 0.001)
}

func TestSaveOverwritesExisting(t *testing.T) {
	svc := newTestService(t, nil)

	require.NoError(t, svc.Save("Tomato", profile.Setpoints{"temp_min_c": 15}))
	require.NoError(t, svc.Save("Tomato", profile.Setpoints{"temp_min_c": 12}))

	_, all, err := svc.GetAll()
	require.NoError(t, err)
	require.InDelta(t, 12, all["Tomato"].Setpoints["temp_min_c"], 0.001)
}

func TestLoadDefaultsYamlOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yml")
	require.NoError(t, os.WriteFile(path, []byte(
		"Default:\n  temp_min_c: 20\nLettuce:\n  temp_min_c: 10\n"), 0o644))

	defaults := profile.LoadDefaults(path)
	require.InDelta(t, 20, defaults["Default"]["temp_min_c"], 0.001)
	require.Contains(t, defaults, "Lettuce")
	// Untouched builtin bundles survive.
	require.Contains(t, defaults, "Strawberry")

	svc := newTestService(t, defaults)
	name, sp, err := svc.GetActive()
	require.NoError(t, err)
	require.Equal(t, "Default", name)
	require.InDelta(t, 20, sp["temp_min_c"], 0.001)
}
