package test_utils

import (
	"context"
	"database/sql"
	"testing"

	"github.com/saati/saati/pkg/user"
)

// CreateTestUser inserts a user row and returns a context carrying it, for
// repository tests that need a real user behind foreign keys.
func CreateTestUser(t *testing.T, db *sql.DB) (context.Context, user.User) {
	t.Helper()

	result, err := db.Exec(
		"INSERT INTO users (uid, username, display_name, language, timezone) VALUES (?, ?, ?, ?, ?)",
		"test-uid", "tester", "Test User", "en", "UTC",
	)
	if err != nil {
		t.Fatalf("Failed to insert test user: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get test user id: %v", err)
	}

	u := user.User{
		Id:          int(id),
		Uid:         "test-uid",
		Username:    "tester",
		DisplayName: "Test User",
		Settings:    user.Settings{Language: "en", Timezone: "UTC"},
	}
	return user.WithUser(context.Background(), u), u
}
