package pkg

import (
	"os"
	"testing"
	"time"

	"github.com/glebarez/sqlite" // go get github.com/glebarez/sqlite
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	JWT_SECRET = "cet-test-secret"
	JWT_EXPIRED_IN = time.Minute * 15
	JWT_REFRESH_EXPIRED_IN = time.Hour
	os.Exit(m.Run())
}

/* FRESH IN-MEMORY DATABASE PER TEST; ONE CONNECTION SO :memory: IS SHARED */
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&Institute{}, &EmissionFactor{}, &ConsumptionRecord{}))

	CET = DBClient{DB: db}
}

func seedTestFactors(t *testing.T) {
	t.Helper()
	require.NoError(t, SeedEmissionFactors(CET.DB))
}

func registerTestInstitute(t *testing.T, username string) Institute {
	t.Helper()

	inst, err := RegisterInstitute(RegisterInstituteInput{
		Username:      username,
		Email:         username + "@example.edu",
		Password:      "green-campus-pw",
		InstituteName: "Test Institute of Technology",
		City:          "Pune",
		State:         "Maharashtra",
	})
	require.NoError(t, err)
	return inst
}
