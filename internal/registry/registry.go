package registry

import (
	"context"
	"errors"

	"backend-enrollment/internal/models"
	"backend-enrollment/internal/repository"
)

// AdminStore - kontrak penyimpanan admin yang dipakai registry
type AdminStore interface {
	GetByID(ctx context.Context, adminID int64) (models.Admin, error)
	Create(ctx context.Context, admin models.Admin) error
}

/*
|--------------------------------------------------------------------------
| ADMIN REGISTRY
|--------------------------------------------------------------------------
| Sumber otorisasi ada dua dan independen: roster admin di store, dan
| satu owner ID dari konfigurasi. Registry sendiri tidak mengecek hak
| akses waktu AddAdmin - itu tanggung jawab pemanggil (gate IsOwner).
*/
type AdminRegistry struct {
	admins  AdminStore
	ownerID int64
}

func New(admins AdminStore, ownerID int64) *AdminRegistry {
	return &AdminRegistry{
		admins:  admins,
		ownerID: ownerID,
	}
}

func (r *AdminRegistry) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	_, err := r.admins.GetByID(ctx, userID)

	if errors.Is(err, repository.ErrNoSuchAdmin) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

// GetAdmin - nil kalau user bukan admin, "tidak ditemukan" bukan error di layer ini
func (r *AdminRegistry) GetAdmin(ctx context.Context, userID int64) (*models.Admin, error) {
	admin, err := r.admins.GetByID(ctx, userID)

	if errors.Is(err, repository.ErrNoSuchAdmin) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &admin, nil
}

func (r *AdminRegistry) IsOwner(userID int64) bool {
	return userID == r.ownerID
}

// AddAdmin - ErrAdminAlreadyExists diteruskan apa adanya
func (r *AdminRegistry) AddAdmin(ctx context.Context, userID int64, spec models.Specialization, windowNumber int) error {
	return r.admins.Create(ctx, models.Admin{
		ID:             userID,
		Specialization: spec,
		WindowNumber:   windowNumber,
	})
}
