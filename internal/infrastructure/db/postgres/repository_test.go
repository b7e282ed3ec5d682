package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/cleanmatch/marketplace-api/internal/core/domain"
	"github.com/cleanmatch/marketplace-api/internal/core/ports"
)

// openTestDB returns an isolated in-memory database with the same schema
// and error translation the production connection uses.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection to :memory: is a separate database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&userModel{}, &offerModel{}))
	return db
}

func seedUser(t *testing.T, repo *UserRepository, role, email string) *domain.User {
	t.Helper()

	user, err := repo.Create(context.Background(), &domain.User{
		Role:         role,
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hashed",
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	return user
}

func strp(s string) *string { return &s }

func TestUserRepository_CreateAssignsID(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	user := seedUser(t, repo, domain.RoleCustomer, "ada@x.com")
	require.NotEmpty(t, user.ID)

	found, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, "ada@x.com", found.Email)
	require.Equal(t, domain.RoleCustomer, found.Role)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	seedUser(t, repo, domain.RoleCustomer, "ada@x.com")

	_, err := repo.Create(context.Background(), &domain.User{
		Role:         domain.RoleCleaner,
		Name:         "Other",
		Email:        "ada@x.com",
		PasswordHash: "hashed",
		CreatedAt:    time.Now().UTC(),
	})
	require.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	_, err := repo.FindByEmail(context.Background(), "ghost@x.com")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	user := seedUser(t, repo, domain.RoleCleaner, "ayse@x.com")
	price := 1500

	updated, err := repo.UpdateProfile(context.Background(), user.ID, ports.ProfileUpdate{
		City:      strp("Istanbul"),
		District:  strp("Kadikoy"),
		Gender:    strp(domain.GenderFemale),
		Regions:   []string{"Moda", "Fenerbahce"},
		BasePrice: &price,
	})
	require.NoError(t, err)
	require.Equal(t, "Istanbul", updated.City)
	require.Equal(t, []string{"Moda", "Fenerbahce"}, updated.Regions)
	require.NotNil(t, updated.BasePrice)
	require.Equal(t, 1500, *updated.BasePrice)

	// Fields outside the update stay intact.
	require.Equal(t, "ayse@x.com", updated.Email)
	require.Equal(t, domain.RoleCleaner, updated.Role)
}

func TestUserRepository_UpdateProfile_RegionsRoundTrip(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	user := seedUser(t, repo, domain.RoleCleaner, "ayse@x.com")

	_, err := repo.UpdateProfile(context.Background(), user.ID, ports.ProfileUpdate{
		Regions: []string{"Moda", "Caddebostan", "Suadiye"},
	})
	require.NoError(t, err)

	reloaded, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Moda", "Caddebostan", "Suadiye"}, reloaded.Regions)
}

func TestUserRepository_UpdateProfile_NilMeansUnchanged(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	user := seedUser(t, repo, domain.RoleCustomer, "ada@x.com")

	_, err := repo.UpdateProfile(context.Background(), user.ID, ports.ProfileUpdate{
		City:     strp("Ankara"),
		District: strp("Cankaya"),
		Street:   strp("Tunali Hilmi"),
	})
	require.NoError(t, err)

	// A later update with nil fields must not wipe earlier values.
	updated, err := repo.UpdateProfile(context.Background(), user.ID, ports.ProfileUpdate{
		Phone: strp("+905551112233"),
	})
	require.NoError(t, err)
	require.Equal(t, "Ankara", updated.City)
	require.Equal(t, "Tunali Hilmi", updated.Street)
	require.Equal(t, "+905551112233", updated.Phone)
}

func TestUserRepository_UpdateProfile_PhoneConflict(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	first := seedUser(t, repo, domain.RoleCustomer, "first@x.com")
	second := seedUser(t, repo, domain.RoleCustomer, "second@x.com")

	_, err := repo.UpdateProfile(context.Background(), first.ID, ports.ProfileUpdate{
		Phone: strp("+905550001122"),
	})
	require.NoError(t, err)

	_, err = repo.UpdateProfile(context.Background(), second.ID, ports.ProfileUpdate{
		Phone: strp("+905550001122"),
	})
	require.ErrorIs(t, err, domain.ErrPhoneTaken)
}

func TestUserRepository_UpdateProfile_NotFound(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	_, err := repo.UpdateProfile(context.Background(), "missing-id", ports.ProfileUpdate{
		City: strp("Izmir"),
	})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_ListByRole_NewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	base := time.Now().UTC().Truncate(time.Second)
	older, err := repo.Create(context.Background(), &domain.User{
		Role: domain.RoleCleaner, Name: "Old", Email: "old@x.com", PasswordHash: "x",
		CreatedAt: base.Add(-2 * time.Hour),
	})
	require.NoError(t, err)
	newer, err := repo.Create(context.Background(), &domain.User{
		Role: domain.RoleCleaner, Name: "New", Email: "new@x.com", PasswordHash: "x",
		CreatedAt: base,
	})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), &domain.User{
		Role: domain.RoleCustomer, Name: "Cust", Email: "cust@x.com", PasswordHash: "x",
		CreatedAt: base,
	})
	require.NoError(t, err)

	cleaners, err := repo.ListByRole(context.Background(), domain.RoleCleaner)
	require.NoError(t, err)
	require.Len(t, cleaners, 2)
	require.Equal(t, newer.ID, cleaners[0].ID)
	require.Equal(t, older.ID, cleaners[1].ID)
}

func TestOfferRepository_CreateAndList(t *testing.T) {
	db := openTestDB(t)
	users := NewUserRepository(db)
	offers := NewOfferRepository(db)

	customer := seedUser(t, users, domain.RoleCustomer, "ada@x.com")
	cleaner := seedUser(t, users, domain.RoleCleaner, "ayse@x.com")

	base := time.Now().UTC().Truncate(time.Second)
	first, err := offers.Create(context.Background(), &domain.Offer{
		CustomerID: customer.ID,
		CleanerID:  cleaner.ID,
		Price:      500,
		Note:       "weekly",
		CreatedAt:  base.Add(-time.Hour),
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := offers.Create(context.Background(), &domain.Offer{
		CustomerID: customer.ID,
		CleanerID:  cleaner.ID,
		Price:      700,
		CreatedAt:  base,
	})
	require.NoError(t, err)

	received, err := offers.ListByCleaner(context.Background(), cleaner.ID)
	require.NoError(t, err)
	require.Len(t, received, 2)
	require.Equal(t, second.ID, received[0].ID)
	require.Equal(t, first.ID, received[1].ID)
	require.Equal(t, "weekly", received[1].Note)

	sent, err := offers.ListByCustomer(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, sent, 2)

	none, err := offers.ListByCleaner(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Empty(t, none)
}
