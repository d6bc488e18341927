package postgres

import (
	"context"

	domain "assetcare-backend/internal/domain/identity"

	"gorm.io/gorm"
)

type IdentityRepository struct{ db *gorm.DB }

func NewIdentityRepository(db *gorm.DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

var _ domain.Repository = (*IdentityRepository)(nil)

func (r *IdentityRepository) CreatePerson(ctx context.Context, p *domain.Person) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *IdentityRepository) GetPerson(ctx context.Context, id uint64) (*domain.Person, error) {
	var out domain.Person
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *IdentityRepository) ListPersons(ctx context.Context) ([]domain.Person, error) {
	var out []domain.Person
	return out, r.db.WithContext(ctx).Order("id").Find(&out).Error
}

func (r *IdentityRepository) SavePerson(ctx context.Context, p *domain.Person) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *IdentityRepository) CreateUser(ctx context.Context, u *domain.UserAccount) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *IdentityRepository) GetUser(ctx context.Context, id uint64) (*domain.UserAccount, error) {
	var out domain.UserAccount
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *IdentityRepository) GetUserByUsername(ctx context.Context, username string) (*domain.UserAccount, error) {
	var out domain.UserAccount
	res := r.db.WithContext(ctx).Where("username = ?", username).First(&out)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *IdentityRepository) GetUserByPersonID(ctx context.Context, personID uint64) (*domain.UserAccount, error) {
	var out domain.UserAccount
	res := r.db.WithContext(ctx).Where("person_id = ?", personID).First(&out)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *IdentityRepository) SaveUser(ctx context.Context, u *domain.UserAccount) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *IdentityRepository) CreateRole(ctx context.Context, role *domain.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *IdentityRepository) GetRoleByCode(ctx context.Context, code string) (*domain.Role, error) {
	var out domain.Role
	res := r.db.WithContext(ctx).Where("code = ?", code).First(&out)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *IdentityRepository) ListRoles(ctx context.Context) ([]domain.Role, error) {
	var out []domain.Role
	return out, r.db.WithContext(ctx).Order("id").Find(&out).Error
}

func (r *IdentityRepository) AssignRole(ctx context.Context, personID, roleID uint64) error {
	return r.db.WithContext(ctx).Create(&domain.PersonRole{PersonID: personID, RoleID: roleID}).Error
}

func (r *IdentityRepository) RemoveRole(ctx context.Context, personID, roleID uint64) error {
	res := r.db.WithContext(ctx).
		Where("person_id = ? AND role_id = ?", personID, roleID).
		Delete(&domain.PersonRole{})
	if res.Error == nil && res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return res.Error
}

func (r *IdentityRepository) RoleCodesForPerson(ctx context.Context, personID uint64) ([]string, error) {
	var codes []string
	res := r.db.WithContext(ctx).
		Model(&domain.Role{}).
		Joins("JOIN person_roles pr ON pr.role_id = roles.id").
		Where("pr.person_id = ?", personID).
		Order("roles.code").
		Pluck("roles.code", &codes)
	return codes, res.Error
}
