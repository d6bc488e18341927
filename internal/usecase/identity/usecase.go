package identity

import (
	"context"

	"github.com/sirupsen/logrus"

	"assetcare-backend/internal/auth"
	domain "assetcare-backend/internal/domain/identity"
)

type Usecase struct {
	repo domain.Repository
	auth *auth.Service
}

func NewUsecase(repo domain.Repository, auth *auth.Service) *Usecase {
	return &Usecase{repo: repo, auth: auth}
}

// Login checks the credentials and mints a bearer token. Failures are
// reported with a single sentinel so callers cannot probe for usernames.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	acct, err := u.repo.GetUserByUsername(ctx, in.Username)
	if err != nil {
		return nil, auth.ErrInvalidCredentials
	}
	if !acct.Active || !u.auth.CheckPassword(in.Password, acct.PasswordHash) {
		return nil, auth.ErrInvalidCredentials
	}

	token, err := u.auth.GenerateToken(acct.PersonID, acct.Username, acct.IsSuperuser)
	if err != nil {
		return nil, err
	}
	roles, err := u.repo.RoleCodesForPerson(ctx, acct.PersonID)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"person_id": acct.PersonID, "username": acct.Username}).Info("login")

	return &LoginOutput{
		Token:    token,
		PersonID: acct.PersonID,
		Username: acct.Username,
		Roles:    roles,
	}, nil
}

func (u *Usecase) Me(ctx context.Context, actor domain.Actor) (*Profile, error) {
	p, err := u.repo.GetPerson(ctx, actor.PersonID)
	if err != nil {
		return nil, err
	}
	return &Profile{
		PersonID:     p.ID,
		Username:     actor.Username,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		Roles:        actor.Roles,
		Capabilities: domain.Resolve(actor).List(),
	}, nil
}

func (u *Usecase) CreatePerson(ctx context.Context, actor domain.Actor, in CreatePersonInput) (*domain.Person, error) {
	if !domain.Resolve(actor).Has(domain.CapAdmin) {
		return nil, domain.ErrPermissionDenied
	}
	p := &domain.Person{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
	}
	if err := u.repo.CreatePerson(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *Usecase) GetPerson(ctx context.Context, id uint64) (*domain.Person, error) {
	return u.repo.GetPerson(ctx, id)
}

func (u *Usecase) ListPersons(ctx context.Context) ([]domain.Person, error) {
	return u.repo.ListPersons(ctx)
}

func (u *Usecase) UpdatePerson(ctx context.Context, actor domain.Actor, id uint64, in UpdatePersonInput) (*domain.Person, error) {
	// People may edit their own record; everything else needs admin.
	if actor.PersonID != id && !domain.Resolve(actor).Has(domain.CapAdmin) {
		return nil, domain.ErrPermissionDenied
	}
	p, err := u.repo.GetPerson(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		p.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		p.LastName = *in.LastName
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
	if err := u.repo.SavePerson(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *Usecase) CreateUser(ctx context.Context, actor domain.Actor, in CreateUserInput) (*domain.UserAccount, error) {
	if !domain.Resolve(actor).Has(domain.CapAdmin) {
		return nil, domain.ErrPermissionDenied
	}
	// Only a superuser can mint another superuser.
	if in.IsSuperuser && !actor.Superuser {
		return nil, domain.ErrPermissionDenied
	}
	if _, err := u.repo.GetPerson(ctx, in.PersonID); err != nil {
		return nil, err
	}
	if _, err := u.repo.GetUserByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := u.auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	acct := &domain.UserAccount{
		PersonID:     in.PersonID,
		Username:     in.Username,
		PasswordHash: hash,
		IsSuperuser:  in.IsSuperuser,
		Active:       true,
	}
	if err := u.repo.CreateUser(ctx, acct); err != nil {
		return nil, err
	}
	return acct, nil
}

func (u *Usecase) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return u.repo.ListRoles(ctx)
}

func (u *Usecase) AssignRole(ctx context.Context, actor domain.Actor, personID uint64, roleCode string) error {
	if !domain.Resolve(actor).Has(domain.CapAdmin) {
		return domain.ErrPermissionDenied
	}
	role, err := u.repo.GetRoleByCode(ctx, roleCode)
	if err != nil {
		return err
	}
	if _, err := u.repo.GetPerson(ctx, personID); err != nil {
		return err
	}
	return u.repo.AssignRole(ctx, personID, role.ID)
}

func (u *Usecase) RemoveRole(ctx context.Context, actor domain.Actor, personID uint64, roleCode string) error {
	if !domain.Resolve(actor).Has(domain.CapAdmin) {
		return domain.ErrPermissionDenied
	}
	role, err := u.repo.GetRoleByCode(ctx, roleCode)
	if err != nil {
		return err
	}
	return u.repo.RemoveRole(ctx, personID, role.ID)
}
