package unit_tests

import (
	"testing"
	"time"

	"chatmate/internal/models"
	"chatmate/internal/repositories"
	"chatmate/internal/securestore"
	"chatmate/internal/services"
	"chatmate/internal/tests/utils"
)

func TestConversationRepository_RoundTrip(t *testing.T) {
	store := securestore.NewMemoryStore()
	repo := repositories.NewConversationRepository(store)

	created := []models.Conversation{
		{ID: "c1", Title: "Trip planning", Type: models.TypePersonal, Context: "Plan a hiking trip", CreatedAt: time.Now().UTC().Truncate(time.Second)},
	}
	utils.NilError(t, repo.Store(created))

	loaded, err := repo.Load()
	utils.NilError(t, err)
	utils.Equal(t, len(loaded), 1)
	utils.Equal(t, loaded[0].ID, "c1")
	utils.Equal(t, loaded[0].Type, models.TypePersonal)
}

func TestConversationRepository_MissingKeyIsEmpty(t *testing.T) {
	repo := repositories.NewConversationRepository(securestore.NewMemoryStore())

	loaded, err := repo.Load()
	utils.NilError(t, err)
	utils.Equal(t, len(loaded), 0)
}

func TestConversationRepository_CorruptValueDegrades(t *testing.T) {
	store := securestore.NewMemoryStore()
	utils.NilError(t, store.Set("conversations", []byte("{not json")))
	repo := repositories.NewConversationRepository(store)

	loaded, err := repo.Load()
	utils.NilError(t, err)
	utils.Equal(t, len(loaded), 0)
}

// The net effect of a create/update/delete sequence must survive a
// fresh service over the same store.
func TestConversationStore_RoundTripAcrossInstances(t *testing.T) {
	store := securestore.NewMemoryStore()
	first := services.NewConversationService(repositories.NewConversationRepository(store))

	a, err := first.Create("Trip planning", models.TypePersonal, "Plan a hiking trip")
	utils.NilError(t, err)
	b, err := first.Create("Quarterly report", models.TypeWork, "Draft the Q3 summary")
	utils.NilError(t, err)
	_, err = first.Update(a.ID, "Trip planning", models.TypePersonal, "Plan a cycling trip")
	utils.NilError(t, err)
	utils.NilError(t, first.Delete(b.ID))

	second := services.NewConversationService(repositories.NewConversationRepository(store))
	loaded, err := second.List()
	utils.NilError(t, err)
	utils.Equal(t, len(loaded), 1)
	utils.Equal(t, loaded[0].ID, a.ID)
	utils.Equal(t, loaded[0].Context, "Plan a cycling trip")
}

func TestAppSettingsRepository_DefaultsWhenMissing(t *testing.T) {
	repo := repositories.NewAppSettingsRepository(securestore.NewMemoryStore())

	settings, err := repo.Get()
	utils.NilError(t, err)
	utils.Equal(t, settings, models.DefaultAppSettings())
}

func TestAppSettingsRepository_DefaultsWhenCorrupt(t *testing.T) {
	store := securestore.NewMemoryStore()
	utils.NilError(t, store.Set("app_settings", []byte("garbage")))
	repo := repositories.NewAppSettingsRepository(store)

	settings, err := repo.Get()
	utils.NilError(t, err)
	utils.Equal(t, settings, models.DefaultAppSettings())
}

func TestAppSettingsRepository_UpdateThenClear(t *testing.T) {
	store := securestore.NewMemoryStore()
	repo := repositories.NewAppSettingsRepository(store)

	custom := models.AppSettings{
		DefaultModel:       "gpt-4",
		ResponseStyle:      models.StyleConcise,
		ConversationLength: models.LengthShort,
	}
	utils.NilError(t, repo.Update(custom))

	settings, err := repo.Get()
	utils.NilError(t, err)
	utils.Equal(t, settings, custom)

	utils.NilError(t, repo.Clear())
	settings, err = repo.Get()
	utils.NilError(t, err)
	utils.Equal(t, settings, models.DefaultAppSettings())
}

func TestUserProfileRepository_RoundTrip(t *testing.T) {
	store := securestore.NewMemoryStore()
	repo := repositories.NewUserProfileRepository(store)

	profile := models.UserProfile{Name: "Alice", Profession: "Designer", Interests: "Typography", Goals: "Ship a portfolio"}
	utils.NilError(t, repo.Store(profile))

	loaded, err := repo.Get()
	utils.NilError(t, err)
	utils.Equal(t, loaded, profile)
}

func TestUserProfileRepository_OnboardingFlag(t *testing.T) {
	store := securestore.NewMemoryStore()
	repo := repositories.NewUserProfileRepository(store)

	done, err := repo.HasCompletedOnboarding()
	utils.NilError(t, err)
	utils.Equal(t, done, false)

	utils.NilError(t, repo.SetOnboardingComplete())
	done, err = repo.HasCompletedOnboarding()
	utils.NilError(t, err)
	utils.Equal(t, done, true)

	// only the exact "true" value counts
	utils.NilError(t, store.Set("hasCompletedOnboarding", []byte("yes")))
	done, err = repo.HasCompletedOnboarding()
	utils.NilError(t, err)
	utils.Equal(t, done, false)
}

func TestUserProfileRepository_Clear(t *testing.T) {
	store := securestore.NewMemoryStore()
	repo := repositories.NewUserProfileRepository(store)

	utils.NilError(t, repo.Store(models.UserProfile{Name: "Alice"}))
	utils.NilError(t, repo.SetOnboardingComplete())
	utils.NilError(t, repo.Clear())

	profile, err := repo.Get()
	utils.NilError(t, err)
	utils.Equal(t, profile, models.UserProfile{})

	done, err := repo.HasCompletedOnboarding()
	utils.NilError(t, err)
	utils.Equal(t, done, false)

	// clearing an already empty store is fine
	utils.NilError(t, repo.Clear())
}
