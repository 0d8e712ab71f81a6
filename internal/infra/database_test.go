package infra_test

import (
	"testing"

	"revup/internal/config"
	"revup/internal/infra"
	"revup/internal/infra/dbtest"
	"revup/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations_SeedsDefaultUsers(t *testing.T) {
	db := dbtest.New(t)

	var users []model.User
	require.NoError(t, db.Order("username").Find(&users).Error)
	require.Len(t, users, 3)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "admin", users[0].Role)
	assert.Equal(t, "staff", users[1].Role)
	assert.Equal(t, "viewer", users[2].Role)
}

func TestRunMigrations_DoesNotOverwriteExistingUsers(t *testing.T) {
	db := dbtest.New(t)
	require.NoError(t, db.Model(&model.User{}).Where("username = ?", "admin").
		Update("password", "changed").Error)

	require.NoError(t, infra.RunMigrations(db))

	var admin model.User
	require.NoError(t, db.First(&admin, "username = ?", "admin").Error)
	assert.Equal(t, "changed", admin.Password)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestNewDatabase_FileStore(t *testing.T) {
	path := t.TempDir() + "/RevUp.db"
	db, err := infra.NewDatabase(&config.Config{DBDriver: "sqlite", DatabaseURL: path})
	require.NoError(t, err)
	require.NoError(t, infra.Close(db))

	// Reopening an existing file keeps the seeded rows and does not fail.
	db, err = infra.NewDatabase(&config.Config{DBDriver: "sqlite", DatabaseURL: path})
	require.NoError(t, err)
	defer infra.Close(db)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestNewDatabase_UnknownDriver(t *testing.T) {
	_, err := infra.NewDatabase(&config.Config{DBDriver: "oracle"})
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}
