package gormrepo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dom/superheroes-api/internal/domain"
	"github.com/dom/superheroes-api/internal/repository"
	"github.com/dom/superheroes-api/internal/repository/gormrepo"
	"github.com/dom/superheroes-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// forEachBackend runs fn against SQLite and, when Docker is available, Postgres.
func forEachBackend(t *testing.T, fn func(t *testing.T, testDB *testutil.TestDB)) {
	t.Run("sqlite", func(t *testing.T) {
		fn(t, testutil.NewTestDB(t))
	})
	t.Run("postgres", func(t *testing.T) {
		fn(t, testutil.NewPostgresTestDB(t))
	})
}

func TestHeroRepository_List(t *testing.T) {
	forEachBackend(t, func(t *testing.T, testDB *testutil.TestDB) {
		repo := gormrepo.NewHeroRepository(testDB.DB)
		ctx := context.Background()

		// Empty database
		heroes, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, heroes)
		assert.Empty(t, heroes)

		testutil.SeedHeroes(t, testDB.DB, 3)

		heroes, err = repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, heroes, 3)
		for i := 1; i < len(heroes); i++ {
			assert.Less(t, heroes[i-1].ID, heroes[i].ID)
		}
	})
}

func TestHeroRepository_GetByID(t *testing.T) {
	forEachBackend(t, func(t *testing.T, testDB *testutil.TestDB) {
		repo := gormrepo.NewHeroRepository(testDB.DB)
		ctx := context.Background()

		hero := testutil.NewHeroBuilder().WithName("Doreen Green").WithSuperName("Squirrel Girl").Build(t, testDB.DB)

		tests := []struct {
			name    string
			id      uint
			wantErr bool
		}{
			{name: "existing hero", id: hero.ID},
			{name: "non-existent hero", id: hero.ID + 100, wantErr: true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := repo.GetByID(ctx, tt.id)
				if tt.wantErr {
					assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
					return
				}

				require.NoError(t, err)
				assert.Equal(t, "Doreen Green", got.Name)
				assert.Equal(t, "Squirrel Girl", got.SuperName)
			})
		}
	})
}

func TestHeroRepository_GetDetail(t *testing.T) {
	forEachBackend(t, func(t *testing.T, testDB *testutil.TestDB) {
		repo := gormrepo.NewHeroRepository(testDB.DB)
		ctx := context.Background()

		hero := testutil.NewHeroBuilder().Build(t, testDB.DB)
		lonely := testutil.NewHeroBuilder().WithName("Kitty Pryde").Build(t, testDB.DB)
		powers := testutil.SeedPowers(t, testDB.DB, 2)
		testutil.NewHeroPowerBuilder(hero, powers[0]).WithStrength(domain.StrengthStrong).Build(t, testDB.DB)
		testutil.NewHeroPowerBuilder(hero, powers[1]).WithStrength(domain.StrengthWeak).Build(t, testDB.DB)

		got, err := repo.GetDetail(ctx, hero.ID)
		require.NoError(t, err)
		require.Len(t, got.HeroPowers, 2)
		assert.Equal(t, domain.StrengthStrong, got.HeroPowers[0].Strength)
		require.NotNil(t, got.HeroPowers[0].Power)
		assert.Equal(t, powers[0].Description, got.HeroPowers[0].Power.Description)
		assert.Equal(t, domain.StrengthWeak, got.HeroPowers[1].Strength)

		got, err = repo.GetDetail(ctx, lonely.ID)
		require.NoError(t, err)
		assert.NotNil(t, got.HeroPowers)
		assert.Empty(t, got.HeroPowers)

		_, err = repo.GetDetail(ctx, lonely.ID+100)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestHeroRepository_UpdateAndExists(t *testing.T) {
	forEachBackend(t, func(t *testing.T, testDB *testutil.TestDB) {
		repo := gormrepo.NewHeroRepository(testDB.DB)
		ctx := context.Background()

		hero := testutil.NewHeroBuilder().Build(t, testDB.DB)
		hero.SuperName = "Captain Marvel"
		require.NoError(t, repo.Update(ctx, hero))

		got, err := repo.GetByID(ctx, hero.ID)
		require.NoError(t, err)
		assert.Equal(t, "Captain Marvel", got.SuperName)

		ok, err := repo.Exists(ctx, hero.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Exists(ctx, hero.ID+1)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestPowerRepository_CRUD(t *testing.T) {
	forEachBackend(t, func(t *testing.T, testDB *testutil.TestDB) {
		repo := gormrepo.NewPowerRepository(testDB.DB)
		ctx := context.Background()

		power, err := domain.NewPower("can stretch the human body to extreme lengths")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, power))
		assert.NotZero(t, power.ID)

		power.Description = "allows the wielder to use her senses at a super-human level"
		require.NoError(t, repo.Update(ctx, power))

		got, err := repo.GetByID(ctx, power.ID)
		require.NoError(t, err)
		assert.Equal(t, "allows the wielder to use her senses at a super-human level", got.Description)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)

		_, err = repo.GetByID(ctx, power.ID+1)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestPowerRepository_RejectsShortDescription(t *testing.T) {
	forEachBackend(t, func(t *testing.T, testDB *testutil.TestDB) {
		repo := gormrepo.NewPowerRepository(testDB.DB)
		ctx := context.Background()

		err := repo.Create(ctx, &domain.Power{Description: "too short"})
		assert.True(t, domain.IsValidationError(err))

		power := testutil.NewPowerBuilder().Build(t, testDB.DB)
		original := power.Description
		power.Description = "nope"
		err = repo.Update(ctx, power)
		assert.True(t, domain.IsValidationError(err))

		got, err := repo.GetByID(ctx, power.ID)
		require.NoError(t, err)
		assert.Equal(t, original, got.Description)
	})
}

func TestHeroPowerRepository_CreateAndGetDetail(t *testing.T) {
	forEachBackend(t, func(t *testing.T, testDB *testutil.TestDB) {
		repo := gormrepo.NewHeroPowerRepository(testDB.DB)
		ctx := context.Background()

		hero := testutil.NewHeroBuilder().Build(t, testDB.DB)
		power := testutil.NewPowerBuilder().Build(t, testDB.DB)

		heroPower, err := domain.NewHeroPower(hero.ID, power.ID, "Strong")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, heroPower))

		got, err := repo.GetDetail(ctx, heroPower.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Hero)
		require.NotNil(t, got.Power)
		assert.Equal(t, hero.Name, got.Hero.Name)
		assert.Equal(t, power.Description, got.Power.Description)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestHeroPowerRepository_RejectsInvalidRows(t *testing.T) {
	forEachBackend(t, func(t *testing.T, testDB *testutil.TestDB) {
		repo := gormrepo.NewHeroPowerRepository(testDB.DB)
		ctx := context.Background()

		hero := testutil.NewHeroBuilder().Build(t, testDB.DB)
		power := testutil.NewPowerBuilder().Build(t, testDB.DB)

		err := repo.Create(ctx, &domain.HeroPower{HeroID: hero.ID, PowerID: power.ID, Strength: "Mighty"})
		assert.True(t, domain.IsValidationError(err))

		// Foreign keys are enforced by the store as well
		err = repo.Create(ctx, &domain.HeroPower{HeroID: hero.ID + 100, PowerID: power.ID, Strength: domain.StrengthWeak})
		assert.Error(t, err)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	forEachBackend(t, func(t *testing.T, testDB *testutil.TestDB) {
		repos := gormrepo.NewRepositories(testDB.DB)
		ctx := context.Background()
		boom := errors.New("boom")

		err := repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
			if err := tx.Hero.Create(ctx, domain.NewHero("Jean Grey", "Dark Phoenix")); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		heroes, err := repos.Hero.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, heroes)

		err = repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
			return tx.Hero.Create(ctx, domain.NewHero("Ororo Munroe", "Storm"))
		})
		require.NoError(t, err)

		heroes, err = repos.Hero.List(ctx)
		require.NoError(t, err)
		assert.Len(t, heroes, 1)
	})
}

func TestDeleteAll(t *testing.T) {
	forEachBackend(t, func(t *testing.T, testDB *testutil.TestDB) {
		repos := gormrepo.NewRepositories(testDB.DB)
		ctx := context.Background()

		hero := testutil.NewHeroBuilder().Build(t, testDB.DB)
		power := testutil.NewPowerBuilder().Build(t, testDB.DB)
		testutil.NewHeroPowerBuilder(hero, power).Build(t, testDB.DB)

		require.NoError(t, repos.HeroPower.DeleteAll(ctx))
		require.NoError(t, repos.Hero.DeleteAll(ctx))
		require.NoError(t, repos.Power.DeleteAll(ctx))

		heroes, err := repos.Hero.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, heroes)
		powers, err := repos.Power.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, powers)
	})
}

func TestDialector(t *testing.T) {
	tests := []struct {
		url      string
		wantName string
		wantErr  bool
	}{
		{url: "postgres://u:p@localhost:5432/heroes", wantName: "postgres"},
		{url: "postgresql://u:p@localhost:5432/heroes", wantName: "postgres"},
		{url: "sqlite://app.db", wantName: "sqlite"},
		{url: "file:app.db?cache=shared", wantName: "sqlite"},
		{url: ":memory:", wantName: "sqlite"},
		{url: "mysql://localhost/heroes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			d, err := gormrepo.Dialector(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, d.Name())
		})
	}
}
