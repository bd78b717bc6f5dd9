package users

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/miragechat/identity/internal/common"
	"github.com/miragechat/identity/internal/logging"
	"github.com/miragechat/identity/internal/server/models"
)

// ---- fakes ----

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger          { return n }

type fakeRepo struct {
	conflicts    []string
	conflictsErr error

	created   *models.User
	createErr error

	markErr error

	credID   string
	credHash string
	credErr  error

	exists    bool
	existsErr error
}

func (f *fakeRepo) CheckUniqueness(ctx context.Context, email, username string) ([]string, error) {
	return f.conflicts, f.conflictsErr
}
func (f *fakeRepo) Create(ctx context.Context, u *models.User) error {
	f.created = u
	return f.createErr
}
func (f *fakeRepo) MarkVerified(ctx context.Context, email, code string) error {
	return f.markErr
}
func (f *fakeRepo) FetchCredential(ctx context.Context, identifier string) (string, string, error) {
	return f.credID, f.credHash, f.credErr
}
func (f *fakeRepo) VerifiedUserExists(ctx context.Context, userID string) (bool, error) {
	return f.exists, f.existsErr
}

type fakeHasher struct {
	verifyOK  bool
	verifyErr error
}

func (f *fakeHasher) Hash(pw string) (string, error) { return "hashed:" + pw, nil }
func (f *fakeHasher) Verify(pw, encoded string) (bool, error) {
	return f.verifyOK, f.verifyErr
}

type fakeTokens struct {
	issued   string
	issueErr error

	subject  string
	parseErr error
}

func (f *fakeTokens) Issue(userID string) (string, error) {
	f.issued = userID
	return "token-for-" + userID, f.issueErr
}
func (f *fakeTokens) Parse(tok string) (string, error) { return f.subject, f.parseErr }

func newService(repo *fakeRepo, h *fakeHasher, tk *fakeTokens) *Service {
	return NewService(repo, h, tk, nopLogger{})
}

// ---- StartRegistration ----

func TestStartRegistration_Success(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	s := newService(repo, &fakeHasher{}, &fakeTokens{})

	err := s.StartRegistration(context.Background(), "Ann", "a@x.com", "ann", "p1")
	if err != nil {
		t.Fatalf("StartRegistration error: %v", err)
	}

	if repo.created == nil {
		t.Fatalf("expected Create to be called")
	}
	if repo.created.PasswordHash != "hashed:p1" {
		t.Fatalf("password not hashed: %q", repo.created.PasswordHash)
	}
	code, err := strconv.Atoi(repo.created.VerificationCode)
	if err != nil || len(repo.created.VerificationCode) != 6 {
		t.Fatalf("verification code not 6 digits: %q", repo.created.VerificationCode)
	}
	if code < 100000 || code > 999999 {
		t.Fatalf("verification code out of range: %d", code)
	}
}

func TestStartRegistration_ConflictsJoined(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{conflicts: []string{"email is already registered", "username is already taken"}}
	s := newService(repo, &fakeHasher{}, &fakeTokens{})

	err := s.StartRegistration(context.Background(), "Bob", "a@x.com", "bob", "p2")
	if err == nil {
		t.Fatalf("expected conflict error")
	}
	if !common.IsValidation(err) {
		t.Fatalf("conflict must be a validation error, got %v", err)
	}
	want := "email is already registered | username is already taken"
	if err.Error() != want {
		t.Fatalf("message mismatch: got %q want %q", err.Error(), want)
	}
	if repo.created != nil {
		t.Fatalf("no user must be created on conflict")
	}
}

func TestStartRegistration_StoreFailureIsOpaque(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{conflictsErr: errors.New("connection refused")}
	s := newService(repo, &fakeHasher{}, &fakeTokens{})

	err := s.StartRegistration(context.Background(), "Ann", "a@x.com", "ann", "p1")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected common.ErrorInternal, got %v", err)
	}
}

// ---- VerifyUser ----

func TestVerifyUser_Success(t *testing.T) {
	t.Parallel()

	s := newService(&fakeRepo{}, &fakeHasher{}, &fakeTokens{})
	if err := s.VerifyUser(context.Background(), "a@x.com", "123456"); err != nil {
		t.Fatalf("VerifyUser error: %v", err)
	}
}

func TestVerifyUser_DomainErrorsVerbatim(t *testing.T) {
	t.Parallel()

	for _, want := range []error{common.ErrUserNotFound, common.ErrWrongVerificationCode} {
		s := newService(&fakeRepo{markErr: want}, &fakeHasher{}, &fakeTokens{})
		err := s.VerifyUser(context.Background(), "a@x.com", "000000")
		if !errors.Is(err, want) {
			t.Errorf("expected %v, got %v", want, err)
		}
	}
}

func TestVerifyUser_StoreFailureIsOpaque(t *testing.T) {
	t.Parallel()

	s := newService(&fakeRepo{markErr: errors.New("boom")}, &fakeHasher{}, &fakeTokens{})
	err := s.VerifyUser(context.Background(), "a@x.com", "123456")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected common.ErrorInternal, got %v", err)
	}
}

// ---- Signin ----

func TestSignin_Success(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{credID: "u1", credHash: "$argon2id$..."}
	tk := &fakeTokens{}
	s := newService(repo, &fakeHasher{verifyOK: true}, tk)

	tok, err := s.Signin(context.Background(), "ann", "p1")
	if err != nil {
		t.Fatalf("Signin error: %v", err)
	}
	if tok != "token-for-u1" {
		t.Fatalf("unexpected token: %q", tok)
	}
	if tk.issued != "u1" {
		t.Fatalf("token issued for wrong subject: %q", tk.issued)
	}
}

func TestSignin_WrongPassword(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{credID: "u1", credHash: "$argon2id$..."}
	s := newService(repo, &fakeHasher{verifyOK: false}, &fakeTokens{})

	_, err := s.Signin(context.Background(), "ann", "nope")
	if !errors.Is(err, common.ErrWrongPassword) {
		t.Fatalf("expected common.ErrWrongPassword, got %v", err)
	}
}

func TestSignin_UserNotFound(t *testing.T) {
	t.Parallel()

	s := newService(&fakeRepo{credErr: common.ErrUserNotFound}, &fakeHasher{}, &fakeTokens{})

	_, err := s.Signin(context.Background(), "ghost", "p")
	if !errors.Is(err, common.ErrUserNotFound) {
		t.Fatalf("expected common.ErrUserNotFound, got %v", err)
	}
}

func TestSignin_MalformedHashIsOpaque(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{credID: "u1", credHash: "garbage"}
	s := newService(repo, &fakeHasher{verifyErr: common.ErrMalformedHash}, &fakeTokens{})

	_, err := s.Signin(context.Background(), "ann", "p1")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected common.ErrorInternal, got %v", err)
	}
}

// ---- VerifySession ----

func TestVerifySession_Success(t *testing.T) {
	t.Parallel()

	s := newService(&fakeRepo{exists: true}, &fakeHasher{}, &fakeTokens{subject: "u1"})
	if err := s.VerifySession(context.Background(), "tok"); err != nil {
		t.Fatalf("VerifySession error: %v", err)
	}
}

func TestVerifySession_TokenErrorsVerbatim(t *testing.T) {
	t.Parallel()

	for _, want := range []error{common.ErrTokenExpired, common.ErrInvalidToken} {
		s := newService(&fakeRepo{}, &fakeHasher{}, &fakeTokens{parseErr: want})
		err := s.VerifySession(context.Background(), "tok")
		if !errors.Is(err, want) {
			t.Errorf("expected %v, got %v", want, err)
		}
	}
}

func TestVerifySession_SubjectGone(t *testing.T) {
	t.Parallel()

	// Token still valid, but the subject is missing or unverified.
	s := newService(&fakeRepo{exists: false}, &fakeHasher{}, &fakeTokens{subject: "u1"})
	err := s.VerifySession(context.Background(), "tok")
	if !errors.Is(err, common.ErrUserNotFound) {
		t.Fatalf("expected common.ErrUserNotFound, got %v", err)
	}
}

// ---- code generation ----

func TestGenerateVerificationCode_Range(t *testing.T) {
	t.Parallel()

	for i := 0; i < 1000; i++ {
		code, err := generateVerificationCode()
		if err != nil {
			t.Fatalf("generateVerificationCode error: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("code %q is not 6 digits", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric", code)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d out of [100000, 999999]", n)
		}
	}
}
