package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/taskdeck/taskdeck-go/internal/crypto"
	"github.com/taskdeck/taskdeck-go/internal/model"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newTestAuthService(store UserStore) *AuthService {
	return NewAuthService(store, testSecret, time.Hour, bcrypt.MinCost)
}

func validSignup() model.SignupRequest {
	return model.SignupRequest{
		FullName:        "Jane Doe",
		Email:           "jane@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestSignup_FullNameTooShort(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	req := validSignup()
	req.FullName = "Jo"

	if _, err := svc.Signup(context.Background(), req); err != ErrInvalidFullName {
		t.Errorf("expected ErrInvalidFullName, got %v", err)
	}
}

func TestSignup_InvalidEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	req := validSignup()
	req.Email = "not-an-email"

	if _, err := svc.Signup(context.Background(), req); err != ErrInvalidEmail {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestSignup_EmailTooLong(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	req := validSignup()
	req.Email = strings.Repeat("a", 250) + "@x.com"

	if _, err := svc.Signup(context.Background(), req); err != ErrInvalidEmail {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestSignup_PasswordTooShort(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	req := validSignup()
	req.Password = "abc"
	req.ConfirmPassword = "abc"

	if _, err := svc.Signup(context.Background(), req); err != ErrPasswordTooShort {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestSignup_PasswordMismatch(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	req := validSignup()
	req.ConfirmPassword = "secret2"

	if _, err := svc.Signup(context.Background(), req); err != ErrPasswordMismatch {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestSignup_StoresHashNotPlaintext(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	resp, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	stored, err := store.GetByID(context.Background(), resp.User.ID)
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if stored.PasswordHash == "secret1" {
		t.Error("stored password equals plaintext")
	}
	if !crypto.VerifyPassword("secret1", stored.PasswordHash) {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestSignup_TokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	resp, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}
	if !resp.Success {
		t.Error("Signup() response not marked successful")
	}

	claims, err := crypto.ValidateToken(resp.Token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.UserID != resp.User.ID {
		t.Errorf("token UserID = %q, want %q", claims.UserID, resp.User.ID)
	}
	if claims.Email != "jane@x.com" {
		t.Errorf("token Email = %q, want %q", claims.Email, "jane@x.com")
	}
}

func TestSignup_DuplicateEmailCaseInsensitive(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("first Signup() unexpected error: %v", err)
	}

	req := validSignup()
	req.Email = "  Jane@X.com "

	if _, err := svc.Signup(context.Background(), req); err != ErrEmailTaken {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "Jane@X.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if resp.User.FullName != "Jane Doe" {
		t.Errorf("Login() FullName = %q, want %q", resp.User.FullName, "Jane Doe")
	}
	if resp.Token == "" {
		t.Error("Login() returned empty token")
	}
}

func TestLogin_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	_, wrongPassErr := svc.Login(context.Background(), model.LoginRequest{
		Email:    "jane@x.com",
		Password: "wrong-password",
	})
	_, unknownEmailErr := svc.Login(context.Background(), model.LoginRequest{
		Email:    "nobody@x.com",
		Password: "secret1",
	})

	if wrongPassErr != ErrInvalidCredentials {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassErr)
	}
	if unknownEmailErr != ErrInvalidCredentials {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmailErr)
	}
}

func TestCurrentUser(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	resp, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	user, err := svc.CurrentUser(context.Background(), resp.User.ID)
	if err != nil {
		t.Fatalf("CurrentUser() unexpected error: %v", err)
	}
	if user.FullName != "Jane Doe" || user.Email != "jane@x.com" {
		t.Errorf("CurrentUser() = %q/%q, want Jane Doe/jane@x.com", user.FullName, user.Email)
	}
}

func TestCurrentUser_UnknownID(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	if _, err := svc.CurrentUser(context.Background(), "user-999"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
