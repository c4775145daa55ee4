package services

import (
	"testing"

	"fintrack/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("alice@example.com", "password123")
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected non-empty user ID")
		}
		if user.Email != "alice@example.com" {
			t.Errorf("expected email alice@example.com, got %s", user.Email)
		}
		if user.Password == "password123" {
			t.Error("password must be stored as a hash, not plaintext")
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("bob@example.com", "password123")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("bob@example.com", "different-password")
		testutil.AssertAppError(t, err, "EMAIL_EXISTS")

		// The failed attempt must not have created a second account.
		var count int64
		db.Table("users").Where("email = ?", "bob@example.com").Count(&count)
		if count != 1 {
			t.Errorf("expected exactly 1 user, got %d", count)
		}
	})

	t.Run("email_is_case_sensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("Carol@example.com", "password123")
		testutil.AssertNoError(t, err)

		// A differently cased email is a distinct identity.
		_, err = svc.CreateUser("carol@example.com", "password123")
		testutil.AssertNoError(t, err)

		_, err = svc.GetUserByEmail("CAROL@example.com")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})

	t.Run("empty_credentials", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "password123")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateUser("dave@example.com", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		created := testutil.CreateTestUserWithEmail(t, db, "erin@example.com")

		user, err := svc.GetUserByEmail("erin@example.com")
		testutil.AssertNoError(t, err)
		if user.ID != created.ID {
			t.Errorf("expected user %s, got %s", created.ID, user.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByEmail("missing@example.com")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)
	user := testutil.CreateTestUser(t, db)

	if !svc.VerifyPassword(user, "password123") {
		t.Error("expected correct password to verify")
	}
	if svc.VerifyPassword(user, "wrong-password") {
		t.Error("expected wrong password to fail verification")
	}
}
