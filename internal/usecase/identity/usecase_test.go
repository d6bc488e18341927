package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"assetcare-backend/internal/auth"
	domain "assetcare-backend/internal/domain/identity"
	"assetcare-backend/internal/testutil/identmock"
)

func newAuth(t *testing.T) *auth.Service {
	t.Helper()
	return auth.NewService("test-secret", time.Hour)
}

func hashOf(t *testing.T, svc *auth.Service, pw string) string {
	t.Helper()
	h, err := svc.HashPassword(pw)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestUsecase_Login(t *testing.T) {
	svc := newAuth(t)
	goodHash := hashOf(t, svc, "s3cret-pass")

	account := func(active bool) *domain.UserAccount {
		return &domain.UserAccount{
			ID:           1,
			PersonID:     7,
			Username:     "tech",
			PasswordHash: goodHash,
			Active:       active,
		}
	}

	tests := []struct {
		name    string
		repo    *identmock.Repo
		in      LoginInput
		wantErr error
	}{
		{
			name: "valid credentials",
			repo: &identmock.Repo{
				GetUserByUsernameFn: func(ctx context.Context, username string) (*domain.UserAccount, error) {
					return account(true), nil
				},
				RoleCodesForPersonFn: func(ctx context.Context, personID uint64) ([]string, error) {
					return []string{domain.RoleMaintenanceTechnician}, nil
				},
			},
			in: LoginInput{Username: "tech", Password: "s3cret-pass"},
		},
		{
			name: "wrong password",
			repo: &identmock.Repo{
				GetUserByUsernameFn: func(ctx context.Context, username string) (*domain.UserAccount, error) {
					return account(true), nil
				},
			},
			in:      LoginInput{Username: "tech", Password: "nope"},
			wantErr: auth.ErrInvalidCredentials,
		},
		{
			name: "unknown username maps to the same sentinel",
			repo: &identmock.Repo{
				GetUserByUsernameFn: func(ctx context.Context, username string) (*domain.UserAccount, error) {
					return nil, domain.ErrNotFound
				},
			},
			in:      LoginInput{Username: "ghost", Password: "s3cret-pass"},
			wantErr: auth.ErrInvalidCredentials,
		},
		{
			name: "deactivated account",
			repo: &identmock.Repo{
				GetUserByUsernameFn: func(ctx context.Context, username string) (*domain.UserAccount, error) {
					return account(false), nil
				},
			},
			in:      LoginInput{Username: "tech", Password: "s3cret-pass"},
			wantErr: auth.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUsecase(tt.repo, svc)
			out, err := u.Login(context.Background(), tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if out.Token == "" {
				t.Fatal("empty token")
			}
			claims, err := svc.ValidateToken(out.Token)
			if err != nil {
				t.Fatal(err)
			}
			if claims.PersonID != 7 || claims.Username != "tech" {
				t.Fatalf("claims mismatch: %+v", claims)
			}
			if len(out.Roles) != 1 || out.Roles[0] != domain.RoleMaintenanceTechnician {
				t.Fatalf("roles = %v", out.Roles)
			}
		})
	}
}

func TestUsecase_CreateUser(t *testing.T) {
	admin := domain.Actor{PersonID: 1, Username: "root", Superuser: true}
	tech := domain.Actor{PersonID: 7, Roles: []string{domain.RoleMaintenanceTechnician}}

	t.Run("admin creates a user with a hashed password", func(t *testing.T) {
		svc := newAuth(t)
		var created *domain.UserAccount
		repo := &identmock.Repo{
			GetPersonFn: func(ctx context.Context, id uint64) (*domain.Person, error) {
				return &domain.Person{ID: id}, nil
			},
			GetUserByUsernameFn: func(ctx context.Context, username string) (*domain.UserAccount, error) {
				return nil, domain.ErrNotFound
			},
			CreateUserFn: func(ctx context.Context, u *domain.UserAccount) error {
				u.ID = 10
				created = u
				return nil
			},
		}
		u := NewUsecase(repo, svc)

		acct, err := u.CreateUser(context.Background(), admin, CreateUserInput{
			PersonID: 7, Username: "tech", Password: "s3cret-pass",
		})
		if err != nil {
			t.Fatal(err)
		}
		if created == nil || acct.ID != 10 {
			t.Fatal("user not created")
		}
		if acct.PasswordHash == "s3cret-pass" || acct.PasswordHash == "" {
			t.Fatal("password stored unhashed")
		}
		if !svc.CheckPassword("s3cret-pass", acct.PasswordHash) {
			t.Fatal("stored hash does not verify")
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo := &identmock.Repo{
			GetPersonFn: func(ctx context.Context, id uint64) (*domain.Person, error) {
				return &domain.Person{ID: id}, nil
			},
			GetUserByUsernameFn: func(ctx context.Context, username string) (*domain.UserAccount, error) {
				return &domain.UserAccount{ID: 3, Username: username}, nil
			},
		}
		u := NewUsecase(repo, newAuth(t))
		_, err := u.CreateUser(context.Background(), admin, CreateUserInput{
			PersonID: 7, Username: "tech", Password: "s3cret-pass",
		})
		if !errors.Is(err, domain.ErrUsernameTaken) {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("technician cannot create users", func(t *testing.T) {
		u := NewUsecase(&identmock.Repo{}, newAuth(t))
		_, err := u.CreateUser(context.Background(), tech, CreateUserInput{
			PersonID: 8, Username: "x", Password: "s3cret-pass",
		})
		if !errors.Is(err, domain.ErrPermissionDenied) {
			t.Fatalf("err = %v", err)
		}
	})
}

func TestUsecase_AssignRole(t *testing.T) {
	admin := domain.Actor{PersonID: 1, Superuser: true}

	t.Run("resolves the role code", func(t *testing.T) {
		var gotPerson, gotRole uint64
		repo := &identmock.Repo{
			GetRoleByCodeFn: func(ctx context.Context, code string) (*domain.Role, error) {
				if code != domain.RoleMaintenanceChief {
					t.Fatalf("code = %q", code)
				}
				return &domain.Role{ID: 4, Code: code}, nil
			},
			GetPersonFn: func(ctx context.Context, id uint64) (*domain.Person, error) {
				return &domain.Person{ID: id}, nil
			},
			AssignRoleFn: func(ctx context.Context, personID, roleID uint64) error {
				gotPerson, gotRole = personID, roleID
				return nil
			},
		}
		u := NewUsecase(repo, newAuth(t))
		if err := u.AssignRole(context.Background(), admin, 7, domain.RoleMaintenanceChief); err != nil {
			t.Fatal(err)
		}
		if gotPerson != 7 || gotRole != 4 {
			t.Fatalf("assigned person=%d role=%d", gotPerson, gotRole)
		}
	})

	t.Run("unknown role code", func(t *testing.T) {
		repo := &identmock.Repo{
			GetRoleByCodeFn: func(ctx context.Context, code string) (*domain.Role, error) {
				return nil, domain.ErrNotFound
			},
		}
		u := NewUsecase(repo, newAuth(t))
		err := u.AssignRole(context.Background(), admin, 7, "janitor")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("err = %v", err)
		}
	})
}
