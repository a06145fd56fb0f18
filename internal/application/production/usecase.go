package production

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/confeccion-api/internal/application/dto"
	appinventory "github.com/tu-usuario/confeccion-api/internal/application/inventory"
	"github.com/tu-usuario/confeccion-api/internal/domain"
	"github.com/tu-usuario/confeccion-api/internal/domain/entity"
	"github.com/tu-usuario/confeccion-api/internal/domain/repository"
)

// PantalonUseCase es el motor transaccional de producción: create/update/delete
// de pantalones como una sola unidad atómica que calcula el precio desde la
// receta, descuenta/repone stock de insumos vía el ledger y reescribe las
// tablas de receta. Cualquier fallo dentro de la transacción revierte todo:
// ni descuentos parciales, ni pantalones huérfanos, ni recetas a medias.
type PantalonUseCase struct {
	txRunner     appinventory.TxRunner
	ledger       *appinventory.Ledger
	pantalonRepo repository.PantalonRepository
	recetaRepo   repository.RecetaRepository
	insumoRepo   repository.InsumoRepository
	manoObraRepo repository.ManoObraRepository
	imagenes     ImagenStore
	fichaPDF     FichaPDFGenerator
}

// NewPantalonUseCase construye el motor. Los repositorios recibidos aquí van
// atados al pool y se usan solo para lecturas fuera de transacción; dentro de
// una operación se usan los repos que el TxRunner ata a la tx.
func NewPantalonUseCase(
	txRunner appinventory.TxRunner,
	ledger *appinventory.Ledger,
	pantalonRepo repository.PantalonRepository,
	recetaRepo repository.RecetaRepository,
	insumoRepo repository.InsumoRepository,
	manoObraRepo repository.ManoObraRepository,
	imagenes ImagenStore,
	fichaPDF FichaPDFGenerator,
) *PantalonUseCase {
	return &PantalonUseCase{
		txRunner:     txRunner,
		ledger:       ledger,
		pantalonRepo: pantalonRepo,
		recetaRepo:   recetaRepo,
		insumoRepo:   insumoRepo,
		manoObraRepo: manoObraRepo,
		imagenes:     imagenes,
		fichaPDF:     fichaPDF,
	}
}

// GetByID obtiene un pantalón con su receta resuelta. Devuelve (nil, nil) si no existe.
func (uc *PantalonUseCase) GetByID(id int64) (*dto.PantalonResponse, error) {
	p, err := uc.pantalonRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	insumos, manoObra, err := uc.resolverReceta(uc.insumoRepo, uc.manoObraRepo, uc.recetaRepo, p.ID)
	if err != nil {
		return nil, err
	}
	return toPantalonResponse(p, insumos, manoObra), nil
}

// List lista pantalones con su receta resuelta.
func (uc *PantalonUseCase) List(limit, offset int) (*dto.PantalonListResponse, error) {
	list, err := uc.pantalonRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PantalonResponse, 0, len(list))
	for _, p := range list {
		insumos, manoObra, err := uc.resolverReceta(uc.insumoRepo, uc.manoObraRepo, uc.recetaRepo, p.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, *toPantalonResponse(p, insumos, manoObra))
	}
	return &dto.PantalonListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// validarTallas verifica que la suma del mapa de tallas coincida exactamente
// con la cantidad total. Un mapa vacío o ausente no se valida.
func validarTallas(tallas map[string]int, cantidadTotal int64) error {
	if len(tallas) == 0 {
		return nil
	}
	var suma int64
	for _, n := range tallas {
		suma += int64(n)
	}
	if suma != cantidadTotal {
		return domain.ErrTallasNoCoinciden
	}
	return nil
}

// calcularPrecio ejecuta la pasada de precios (solo lectura) sobre la receta:
// Σ(cantidad_por_unidad × precio_insumo) + Σ(precio_mano_obra). Una referencia
// inexistente aborta la operación, igual que en la pasada de descuento.
func calcularPrecio(
	insumoRepo repository.InsumoRepository,
	manoObraRepo repository.ManoObraRepository,
	entradas []dto.RecetaInsumoInput,
	manoObraIDs []int64,
) (decimal.Decimal, []dto.RecetaInsumoDetalle, []dto.ManoObraDetalle, error) {
	precio := decimal.Zero
	insumos := make([]dto.RecetaInsumoDetalle, 0, len(entradas))
	for _, e := range entradas {
		ins, err := insumoRepo.GetByID(e.InsumoID)
		if err != nil {
			return decimal.Zero, nil, nil, err
		}
		if ins == nil {
			return decimal.Zero, nil, nil, fmt.Errorf("insumo %d: %w", e.InsumoID, domain.ErrInsumoNoEncontrado)
		}
		precio = precio.Add(e.CantidadPorUnidad.Mul(ins.PrecioUnitario))
		insumos = append(insumos, dto.RecetaInsumoDetalle{
			InsumoID:          ins.ID,
			Nombre:            ins.Nombre,
			CantidadPorUnidad: e.CantidadPorUnidad,
			PrecioUnitario:    ins.PrecioUnitario,
		})
	}
	manoObra := make([]dto.ManoObraDetalle, 0, len(manoObraIDs))
	for _, id := range manoObraIDs {
		mo, err := manoObraRepo.GetByID(id)
		if err != nil {
			return decimal.Zero, nil, nil, err
		}
		if mo == nil {
			return decimal.Zero, nil, nil, fmt.Errorf("mano de obra %d: %w", id, domain.ErrManoObraNoEncontrada)
		}
		precio = precio.Add(mo.Precio)
		manoObra = append(manoObra, dto.ManoObraDetalle{
			ManoObraID: mo.ID,
			Nombre:     mo.Nombre,
			Precio:     mo.Precio,
		})
	}
	return precio, insumos, manoObra, nil
}

// resolverReceta carga la receta persistida de un pantalón y la resuelve con
// los nombres y precios actuales (solo para presentación; el precio del
// pantalón sigue siendo la foto persistida).
func (uc *PantalonUseCase) resolverReceta(
	insumoRepo repository.InsumoRepository,
	manoObraRepo repository.ManoObraRepository,
	recetaRepo repository.RecetaRepository,
	pantalonID int64,
) ([]dto.RecetaInsumoDetalle, []dto.ManoObraDetalle, error) {
	entradas, err := recetaRepo.GetInsumosByPantalon(pantalonID)
	if err != nil {
		return nil, nil, err
	}
	insumos := make([]dto.RecetaInsumoDetalle, 0, len(entradas))
	for _, e := range entradas {
		ins, err := insumoRepo.GetByID(e.InsumoID)
		if err != nil {
			return nil, nil, err
		}
		if ins == nil {
			continue
		}
		insumos = append(insumos, dto.RecetaInsumoDetalle{
			InsumoID:          e.InsumoID,
			Nombre:            ins.Nombre,
			CantidadPorUnidad: e.CantidadPorUnidad,
			PrecioUnitario:    ins.PrecioUnitario,
		})
	}
	filas, err := recetaRepo.GetManoObraByPantalon(pantalonID)
	if err != nil {
		return nil, nil, err
	}
	manoObra := make([]dto.ManoObraDetalle, 0, len(filas))
	for _, f := range filas {
		mo, err := manoObraRepo.GetByID(f.ManoObraID)
		if err != nil {
			return nil, nil, err
		}
		if mo == nil {
			continue
		}
		manoObra = append(manoObra, dto.ManoObraDetalle{
			ManoObraID: f.ManoObraID,
			Nombre:     mo.Nombre,
			Precio:     mo.Precio,
		})
	}
	return insumos, manoObra, nil
}

func toPantalonResponse(p *entity.Pantalon, insumos []dto.RecetaInsumoDetalle, manoObra []dto.ManoObraDetalle) *dto.PantalonResponse {
	return &dto.PantalonResponse{
		ID:             p.ID,
		Nombre:         p.Nombre,
		Tallas:         p.Tallas,
		CantidadTotal:  p.CantidadTotal,
		PrecioUnitario: p.PrecioUnitario,
		ImagenURL:      p.ImagenURL,
		Insumos:        insumos,
		ManoObra:       manoObra,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toRecetaEntities(pantalonID int64, entradas []dto.RecetaInsumoInput) []*entity.RecetaInsumo {
	filas := make([]*entity.RecetaInsumo, 0, len(entradas))
	for _, e := range entradas {
		filas = append(filas, &entity.RecetaInsumo{
			PantalonID:        pantalonID,
			InsumoID:          e.InsumoID,
			CantidadPorUnidad: e.CantidadPorUnidad,
		})
	}
	return filas
}
