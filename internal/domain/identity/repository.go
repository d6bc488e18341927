package identity

import "context"

type Repository interface {
	CreatePerson(ctx context.Context, p *Person) error
	GetPerson(ctx context.Context, id uint64) (*Person, error)
	ListPersons(ctx context.Context) ([]Person, error)
	SavePerson(ctx context.Context, p *Person) error

	CreateUser(ctx context.Context, u *UserAccount) error
	GetUser(ctx context.Context, id uint64) (*UserAccount, error)
	GetUserByUsername(ctx context.Context, username string) (*UserAccount, error)
	GetUserByPersonID(ctx context.Context, personID uint64) (*UserAccount, error)
	SaveUser(ctx context.Context, u *UserAccount) error

	CreateRole(ctx context.Context, r *Role) error
	GetRoleByCode(ctx context.Context, code string) (*Role, error)
	ListRoles(ctx context.Context) ([]Role, error)

	AssignRole(ctx context.Context, personID, roleID uint64) error
	RemoveRole(ctx context.Context, personID, roleID uint64) error
	// RoleCodesForPerson resolves the role codes granted to a person.
	RoleCodesForPerson(ctx context.Context, personID uint64) ([]string, error)
}
