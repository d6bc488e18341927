package identmock

import (
	"context"

	domain "assetcare-backend/internal/domain/identity"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies identity.Repository.
type Repo struct {
	CreatePersonFn func(ctx context.Context, p *domain.Person) error
	GetPersonFn    func(ctx context.Context, id uint64) (*domain.Person, error)
	ListPersonsFn  func(ctx context.Context) ([]domain.Person, error)
	SavePersonFn   func(ctx context.Context, p *domain.Person) error

	CreateUserFn        func(ctx context.Context, u *domain.UserAccount) error
	GetUserFn           func(ctx context.Context, id uint64) (*domain.UserAccount, error)
	GetUserByUsernameFn func(ctx context.Context, username string) (*domain.UserAccount, error)
	GetUserByPersonIDFn func(ctx context.Context, personID uint64) (*domain.UserAccount, error)
	SaveUserFn          func(ctx context.Context, u *domain.UserAccount) error

	CreateRoleFn    func(ctx context.Context, r *domain.Role) error
	GetRoleByCodeFn func(ctx context.Context, code string) (*domain.Role, error)
	ListRolesFn     func(ctx context.Context) ([]domain.Role, error)

	AssignRoleFn         func(ctx context.Context, personID, roleID uint64) error
	RemoveRoleFn         func(ctx context.Context, personID, roleID uint64) error
	RoleCodesForPersonFn func(ctx context.Context, personID uint64) ([]string, error)
}

func (m *Repo) CreatePerson(ctx context.Context, p *domain.Person) error {
	if m.CreatePersonFn != nil {
		return m.CreatePersonFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetPerson(ctx context.Context, id uint64) (*domain.Person, error) {
	if m.GetPersonFn != nil {
		return m.GetPersonFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListPersons(ctx context.Context) ([]domain.Person, error) {
	if m.ListPersonsFn != nil {
		return m.ListPersonsFn(ctx)
	}
	return nil, nil
}

func (m *Repo) SavePerson(ctx context.Context, p *domain.Person) error {
	if m.SavePersonFn != nil {
		return m.SavePersonFn(ctx, p)
	}
	return nil
}

func (m *Repo) CreateUser(ctx context.Context, u *domain.UserAccount) error {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetUser(ctx context.Context, id uint64) (*domain.UserAccount, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetUserByUsername(ctx context.Context, username string) (*domain.UserAccount, error) {
	if m.GetUserByUsernameFn != nil {
		return m.GetUserByUsernameFn(ctx, username)
	}
	return nil, context.Canceled
}

func (m *Repo) GetUserByPersonID(ctx context.Context, personID uint64) (*domain.UserAccount, error) {
	if m.GetUserByPersonIDFn != nil {
		return m.GetUserByPersonIDFn(ctx, personID)
	}
	return nil, context.Canceled
}

func (m *Repo) SaveUser(ctx context.Context, u *domain.UserAccount) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, u)
	}
	return nil
}

func (m *Repo) CreateRole(ctx context.Context, r *domain.Role) error {
	if m.CreateRoleFn != nil {
		return m.CreateRoleFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetRoleByCode(ctx context.Context, code string) (*domain.Role, error) {
	if m.GetRoleByCodeFn != nil {
		return m.GetRoleByCodeFn(ctx, code)
	}
	return nil, context.Canceled
}

func (m *Repo) ListRoles(ctx context.Context) ([]domain.Role, error) {
	if m.ListRolesFn != nil {
		return m.ListRolesFn(ctx)
	}
	return nil, nil
}

func (m *Repo) AssignRole(ctx context.Context, personID, roleID uint64) error {
	if m.AssignRoleFn != nil {
		return m.AssignRoleFn(ctx, personID, roleID)
	}
	return nil
}

func (m *Repo) RemoveRole(ctx context.Context, personID, roleID uint64) error {
	if m.RemoveRoleFn != nil {
		return m.RemoveRoleFn(ctx, personID, roleID)
	}
	return nil
}

func (m *Repo) RoleCodesForPerson(ctx context.Context, personID uint64) ([]string, error) {
	if m.RoleCodesForPersonFn != nil {
		return m.RoleCodesForPersonFn(ctx, personID)
	}
	return nil, nil
}
