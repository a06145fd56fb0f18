package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/confeccion-api/internal/application/dto"
	"github.com/tu-usuario/confeccion-api/internal/domain"
	"github.com/tu-usuario/confeccion-api/internal/domain/entity"
	"github.com/tu-usuario/confeccion-api/internal/domain/repository"
)

// ManoObraUseCase casos de uso CRUD para procesos de mano de obra.
// Tarifa plana sin concepto de cantidad; el nombre es único.
type ManoObraUseCase struct {
	repo       repository.ManoObraRepository
	recetaRepo repository.RecetaRepository
}

// NewManoObraUseCase construye el caso de uso.
func NewManoObraUseCase(repo repository.ManoObraRepository, recetaRepo repository.RecetaRepository) *ManoObraUseCase {
	return &ManoObraUseCase{repo: repo, recetaRepo: recetaRepo}
}

// Create crea un proceso de mano de obra.
func (uc *ManoObraUseCase) Create(in dto.CreateManoObraRequest) (*dto.ManoObraResponse, error) {
	if in.Precio.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.repo.GetByNombre(in.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	mo := &entity.ManoObra{
		Nombre:    in.Nombre,
		Precio:    in.Precio,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(mo); err != nil {
		return nil, err
	}
	return toManoObraResponse(mo), nil
}

// GetByID obtiene un proceso por ID. Devuelve (nil, nil) si no existe.
func (uc *ManoObraUseCase) GetByID(id int64) (*dto.ManoObraResponse, error) {
	mo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mo == nil {
		return nil, nil
	}
	return toManoObraResponse(mo), nil
}

// List lista procesos con paginación.
func (uc *ManoObraUseCase) List(limit, offset int) (*dto.ManoObraListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ManoObraResponse, 0, len(list))
	for _, mo := range list {
		items = append(items, *toManoObraResponse(mo))
	}
	return &dto.ManoObraListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un proceso.
func (uc *ManoObraUseCase) Update(id int64, in dto.UpdateManoObraRequest) (*dto.ManoObraResponse, error) {
	mo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mo == nil {
		return nil, nil
	}
	if in.Nombre != nil && *in.Nombre != mo.Nombre {
		otro, err := uc.repo.GetByNombre(*in.Nombre)
		if err != nil {
			return nil, err
		}
		if otro != nil && otro.ID != mo.ID {
			return nil, domain.ErrDuplicate
		}
		mo.Nombre = *in.Nombre
	}
	if in.Precio != nil {
		if in.Precio.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		mo.Precio = *in.Precio
	}
	mo.UpdatedAt = time.Now()
	if err := uc.repo.Update(mo); err != nil {
		return nil, err
	}
	return toManoObraResponse(mo), nil
}

// Delete elimina un proceso. Bloqueado mientras algún pantalón lo referencie.
func (uc *ManoObraUseCase) Delete(id int64) error {
	mo, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if mo == nil {
		return domain.ErrNotFound
	}
	refs, err := uc.recetaRepo.CountByManoObra(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func toManoObraResponse(mo *entity.ManoObra) *dto.ManoObraResponse {
	if mo == nil {
		return nil
	}
	return &dto.ManoObraResponse{
		ID:        mo.ID,
		Nombre:    mo.Nombre,
		Precio:    mo.Precio,
		CreatedAt: mo.CreatedAt,
		UpdatedAt: mo.UpdatedAt,
	}
}
