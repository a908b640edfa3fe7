// service/auth/auth_service_test.go
package authsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/yukta0302/rentwala/model"
	authrepo "github.com/yukta0302/rentwala/repository/auth"
	"github.com/yukta0302/rentwala/util/hash"
)

type mockRepo struct {
	byEmailFn func(ctx context.Context, email string) (*model.User, error)
	createFn  func(ctx context.Context, u *model.User) error
}

var _ authrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.byEmailFn == nil {
		return nil, errors.New("no user")
	}
	return m.byEmailFn(ctx, email)
}

func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}

// --- tests ---

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			u.ID = 42
			return nil
		},
	}
	svc := New(m, "test-secret")

	req := model.RegisterReq{
		Name:     "Yukta",
		Email:    "USER@Example.COM",
		Password: "supersecret",
	}

	u, tok, err := svc.Register(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotEmpty(t, tok)
	require.Equal(t, int64(42), u.ID)
	require.Equal(t, "user@example.com", u.Email)
	require.NotEqual(t, "supersecret", u.PasswordHash)
	require.True(t, hash.Check(u.PasswordHash, "supersecret"))
}

func TestRegister_BadInput(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{}, "test-secret")

	_, _, err := svc.Register(ctx, model.RegisterReq{
		Email:    " ",
		Name:     "u",
		Password: "123456",
	})
	require.ErrorIs(t, err, ErrBadInput)

	_, _, err = svc.Register(ctx, model.RegisterReq{
		Email:    "ok@example.com",
		Name:     "u",
		Password: "123",
	})
	require.ErrorIs(t, err, ErrBadInput)
}

func TestRegister_EmailTaken(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "users_email_key",
			}
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Register(ctx, model.RegisterReq{
		Name:     "taken",
		Email:    "taken@example.com",
		Password: "123456",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_CreateError(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return errors.New("db down")
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Register(ctx, model.RegisterReq{
		Name:     "ok",
		Email:    "ok@example.com",
		Password: "123456",
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	hashed, err := hash.HashPassword("hunter22")
	require.NoError(t, err)

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: 7, Name: "Yukta", Email: "y@example.com", PasswordHash: hashed}, nil
		},
	}
	svc := New(m, "test-secret")

	u, tok, err := svc.Login(ctx, model.LoginReq{Email: "y@example.com", Password: "hunter22"})
	require.NoError(t, err)
	require.Equal(t, int64(7), u.ID)
	require.NotEmpty(t, tok)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	hashed, err := hash.HashPassword("hunter22")
	require.NoError(t, err)

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: 7, Email: "y@example.com", PasswordHash: hashed}, nil
		},
	}
	svc := New(m, "test-secret")

	_, _, err = svc.Login(ctx, model.LoginReq{Email: "y@example.com", Password: "nope"})
	require.ErrorIs(t, err, ErrInvalidCreds)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return nil, errors.New("sql: no rows in result set")
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Login(ctx, model.LoginReq{Email: "ghost@example.com", Password: "whatever"})
	require.ErrorIs(t, err, ErrInvalidCreds)
}
