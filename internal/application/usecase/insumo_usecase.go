package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/confeccion-api/internal/application/dto"
	appinventory "github.com/tu-usuario/confeccion-api/internal/application/inventory"
	"github.com/tu-usuario/confeccion-api/internal/domain"
	"github.com/tu-usuario/confeccion-api/internal/domain/entity"
	domaininv "github.com/tu-usuario/confeccion-api/internal/domain/inventory"
	"github.com/tu-usuario/confeccion-api/internal/domain/repository"
)

// InsumoUseCase casos de uso CRUD para insumos, más la compra a proveedor
// (promedio ponderado) vía el ledger. El estado derivado se recalcula en toda
// mutación de cantidad o tipo.
type InsumoUseCase struct {
	repo         repository.InsumoRepository
	recetaRepo   repository.RecetaRepository
	movRepo      repository.MovimientoRepository
	txRunner     appinventory.TxRunner
	ledger       *appinventory.Ledger
	clasificador *domaininv.Clasificador
}

// NewInsumoUseCase construye el caso de uso.
func NewInsumoUseCase(
	repo repository.InsumoRepository,
	recetaRepo repository.RecetaRepository,
	movRepo repository.MovimientoRepository,
	txRunner appinventory.TxRunner,
	ledger *appinventory.Ledger,
	clasificador *domaininv.Clasificador,
) *InsumoUseCase {
	return &InsumoUseCase{
		repo:         repo,
		recetaRepo:   recetaRepo,
		movRepo:      movRepo,
		txRunner:     txRunner,
		ledger:       ledger,
		clasificador: clasificador,
	}
}

// Create crea un insumo con su estado derivado inicial.
func (uc *InsumoUseCase) Create(in dto.CreateInsumoRequest) (*dto.InsumoResponse, error) {
	if in.Cantidad.LessThan(decimal.Zero) || in.PrecioUnitario.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	estado := uc.clasificador.Clasificar(in.Cantidad, in.Tipo)
	ins := &entity.Insumo{
		Nombre:         in.Nombre,
		Tipo:           in.Tipo,
		UnidadMedida:   in.UnidadMedida,
		Cantidad:       in.Cantidad,
		PrecioUnitario: in.PrecioUnitario,
		Estado:         &estado,
		Proveedor:      in.Proveedor,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ins); err != nil {
		return nil, err
	}
	return toInsumoResponse(ins), nil
}

// GetByID obtiene un insumo por ID. Devuelve (nil, nil) si no existe.
func (uc *InsumoUseCase) GetByID(id int64) (*dto.InsumoResponse, error) {
	ins, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ins == nil {
		return nil, nil
	}
	return toInsumoResponse(ins), nil
}

// List lista insumos con paginación.
func (uc *InsumoUseCase) List(limit, offset int) (*dto.InsumoListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InsumoResponse, 0, len(list))
	for _, ins := range list {
		items = append(items, *toInsumoResponse(ins))
	}
	return &dto.InsumoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un insumo por edición directa. Si cambian cantidad o tipo
// se recalcula el estado; nunca se deja desactualizado.
func (uc *InsumoUseCase) Update(id int64, in dto.UpdateInsumoRequest) (*dto.InsumoResponse, error) {
	ins, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ins == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		ins.Nombre = *in.Nombre
	}
	if in.Tipo != nil {
		ins.Tipo = *in.Tipo
	}
	if in.UnidadMedida != nil {
		ins.UnidadMedida = *in.UnidadMedida
	}
	if in.Cantidad != nil {
		if in.Cantidad.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		ins.Cantidad = *in.Cantidad
	}
	if in.PrecioUnitario != nil {
		if in.PrecioUnitario.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		ins.PrecioUnitario = *in.PrecioUnitario
	}
	if in.Proveedor != nil {
		ins.Proveedor = in.Proveedor
	}
	estado := uc.clasificador.Clasificar(ins.Cantidad, ins.Tipo)
	ins.Estado = &estado
	ins.UpdatedAt = time.Now()
	if err := uc.repo.Update(ins); err != nil {
		return nil, err
	}
	return toInsumoResponse(ins), nil
}

// Delete elimina un insumo. Bloqueado mientras alguna receta lo referencie
// (guarda referencial del CRUD, no del motor).
func (uc *InsumoUseCase) Delete(id int64) error {
	ins, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if ins == nil {
		return domain.ErrNotFound
	}
	refs, err := uc.recetaRepo.CountByInsumo(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

// RegistrarCompra registra una compra al proveedor dentro de una transacción:
// bloquea la fila, suma la cantidad y recalcula el precio unitario por
// promedio ponderado. Cantidad debe ser > 0 y precio >= 0.
func (uc *InsumoUseCase) RegistrarCompra(ctx context.Context, id int64, in dto.CompraInsumoRequest) (*dto.InsumoResponse, error) {
	if !in.Cantidad.GreaterThan(decimal.Zero) || in.PrecioUnitario.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()

	var resp *dto.InsumoResponse
	err := uc.txRunner.Run(ctx, func(
		insumoRepo repository.InsumoRepository,
		_ repository.ManoObraRepository,
		_ repository.PantalonRepository,
		_ repository.RecetaRepository,
		movRepo repository.MovimientoRepository,
	) error {
		ins, err := uc.ledger.Comprar(insumoRepo, movRepo, id, in.Cantidad, in.PrecioUnitario, now)
		if err != nil {
			return err
		}
		resp = toInsumoResponse(ins)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListMovimientos lista el historial de movimientos de stock de un insumo.
func (uc *InsumoUseCase) ListMovimientos(id int64, limit, offset int) ([]dto.MovimientoResponse, error) {
	list, err := uc.movRepo.ListByInsumo(id, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovimientoResponse{
			ID:            m.ID,
			TransactionID: m.TransactionID,
			InsumoID:      m.InsumoID,
			Tipo:          m.Tipo,
			Cantidad:      m.Cantidad,
			CostoUnitario: m.CostoUnitario,
			CostoTotal:    m.CostoTotal,
			Fecha:         m.Fecha,
		})
	}
	return items, nil
}

func toInsumoResponse(ins *entity.Insumo) *dto.InsumoResponse {
	if ins == nil {
		return nil
	}
	return &dto.InsumoResponse{
		ID:             ins.ID,
		Nombre:         ins.Nombre,
		Tipo:           ins.Tipo,
		UnidadMedida:   ins.UnidadMedida,
		Cantidad:       ins.Cantidad,
		PrecioUnitario: ins.PrecioUnitario,
		Estado:         ins.Estado,
		Proveedor:      ins.Proveedor,
		CreatedAt:      ins.CreatedAt,
		UpdatedAt:      ins.UpdatedAt,
	}
}
