package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/wardrobe/internal/database"
	"github.com/example/wardrobe/internal/identity"
	"github.com/example/wardrobe/internal/models"
	"github.com/example/wardrobe/internal/utils"
)

func newTestService(t *testing.T) *identity.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// In-memory sqlite lives on a single connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return identity.NewService(db)
}

func TestRoleLifecycle(t *testing.T) {
	svc := newTestService(t)

	exists, err := svc.RoleExists(models.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, svc.CreateRole(models.RoleAdmin))

	exists, err = svc.RoleExists(models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCreateAccountHashesPassword(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.CreateAccount("jamie@example.com", "jamie", "hunter2hunter2")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)
	assert.True(t, utils.CheckPassword(user.PasswordHash, "hunter2hunter2"))
	assert.False(t, utils.CheckPassword(user.PasswordHash, "wrong"))
}

func TestFindByEmail(t *testing.T) {
	svc := newTestService(t)

	missing, err := svc.FindByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	created, err := svc.CreateAccount("jamie@example.com", "jamie", "hunter2hunter2")
	require.NoError(t, err)

	found, err := svc.FindByEmail("jamie@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
}

func TestRoleMembership(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.CreateRole(models.RoleSuperAdmin))
	user, err := svc.CreateAccount("jamie@example.com", "jamie", "hunter2hunter2")
	require.NoError(t, err)

	isMember, err := svc.IsInRole(user, models.RoleSuperAdmin)
	require.NoError(t, err)
	assert.False(t, isMember)

	require.NoError(t, svc.AddToRole(user, models.RoleSuperAdmin))

	isMember, err = svc.IsInRole(user, models.RoleSuperAdmin)
	require.NoError(t, err)
	assert.True(t, isMember)

	// Granting a role that does not exist is an error.
	err = svc.AddToRole(user, "Ghost")
	assert.Error(t, err)
}
