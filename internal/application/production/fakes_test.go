package production_test

import (
	"context"

	"github.com/shopspring/decimal"
	appinventory "github.com/tu-usuario/confeccion-api/internal/application/inventory"
	"github.com/tu-usuario/confeccion-api/internal/application/production"
	"github.com/tu-usuario/confeccion-api/internal/domain/entity"
	domaininv "github.com/tu-usuario/confeccion-api/internal/domain/inventory"
	"github.com/tu-usuario/confeccion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store en memoria para los tests del motor. El fakeTxRunner toma una copia
// profunda antes de ejecutar fn y la restaura si fn falla, reproduciendo la
// semántica todo-o-nada del TxRunner real sobre PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	insumos        map[int64]*entity.Insumo
	manoObra       map[int64]*entity.ManoObra
	pantalones     map[int64]*entity.Pantalon
	recetaInsumos  map[int64][]*entity.RecetaInsumo
	recetaManoObra map[int64][]*entity.RecetaManoObra
	movimientos    []*entity.Movimiento
	seq            int64
}

func newMemStore() *memStore {
	return &memStore{
		insumos:        map[int64]*entity.Insumo{},
		manoObra:       map[int64]*entity.ManoObra{},
		pantalones:     map[int64]*entity.Pantalon{},
		recetaInsumos:  map[int64][]*entity.RecetaInsumo{},
		recetaManoObra: map[int64][]*entity.RecetaManoObra{},
	}
}

func (s *memStore) nextID() int64 {
	s.seq++
	return s.seq
}

func copiaInsumo(ins *entity.Insumo) *entity.Insumo {
	c := *ins
	if ins.Estado != nil {
		e := *ins.Estado
		c.Estado = &e
	}
	if ins.Proveedor != nil {
		p := *ins.Proveedor
		c.Proveedor = &p
	}
	return &c
}

func copiaPantalon(p *entity.Pantalon) *entity.Pantalon {
	c := *p
	if p.Tallas != nil {
		c.Tallas = make(map[string]int, len(p.Tallas))
		for k, v := range p.Tallas {
			c.Tallas[k] = v
		}
	}
	if p.ImagenURL != nil {
		u := *p.ImagenURL
		c.ImagenURL = &u
	}
	return &c
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	c.seq = s.seq
	for id, ins := range s.insumos {
		c.insumos[id] = copiaInsumo(ins)
	}
	for id, mo := range s.manoObra {
		copia := *mo
		c.manoObra[id] = &copia
	}
	for id, p := range s.pantalones {
		c.pantalones[id] = copiaPantalon(p)
	}
	for id, filas := range s.recetaInsumos {
		copias := make([]*entity.RecetaInsumo, 0, len(filas))
		for _, f := range filas {
			copia := *f
			copias = append(copias, &copia)
		}
		c.recetaInsumos[id] = copias
	}
	for id, filas := range s.recetaManoObra {
		copias := make([]*entity.RecetaManoObra, 0, len(filas))
		for _, f := range filas {
			copia := *f
			copias = append(copias, &copia)
		}
		c.recetaManoObra[id] = copias
	}
	for _, m := range s.movimientos {
		copia := *m
		c.movimientos = append(c.movimientos, &copia)
	}
	return c
}

func (s *memStore) restore(from *memStore) {
	s.insumos = from.insumos
	s.manoObra = from.manoObra
	s.pantalones = from.pantalones
	s.recetaInsumos = from.recetaInsumos
	s.recetaManoObra = from.recetaManoObra
	s.movimientos = from.movimientos
	s.seq = from.seq
}

// ── Repositorios fake ─────────────────────────────────────────────────────────

type memInsumoRepo struct{ s *memStore }

func (r *memInsumoRepo) Create(ins *entity.Insumo) error {
	ins.ID = r.s.nextID()
	r.s.insumos[ins.ID] = copiaInsumo(ins)
	return nil
}

func (r *memInsumoRepo) GetByID(id int64) (*entity.Insumo, error) {
	ins, ok := r.s.insumos[id]
	if !ok {
		return nil, nil
	}
	return copiaInsumo(ins), nil
}

func (r *memInsumoRepo) GetForUpdate(id int64) (*entity.Insumo, error) {
	return r.GetByID(id)
}

func (r *memInsumoRepo) List(limit, offset int) ([]*entity.Insumo, error) {
	var list []*entity.Insumo
	for _, ins := range r.s.insumos {
		list = append(list, copiaInsumo(ins))
	}
	return list, nil
}

func (r *memInsumoRepo) Update(ins *entity.Insumo) error {
	r.s.insumos[ins.ID] = copiaInsumo(ins)
	return nil
}

func (r *memInsumoRepo) UpdateStock(id int64, cantidad, precioUnitario decimal.Decimal, estado string) error {
	ins := r.s.insumos[id]
	ins.Cantidad = cantidad
	ins.PrecioUnitario = precioUnitario
	ins.Estado = &estado
	return nil
}

func (r *memInsumoRepo) Delete(id int64) error {
	delete(r.s.insumos, id)
	return nil
}

type memManoObraRepo struct{ s *memStore }

func (r *memManoObraRepo) Create(mo *entity.ManoObra) error {
	mo.ID = r.s.nextID()
	copia := *mo
	r.s.manoObra[mo.ID] = &copia
	return nil
}

func (r *memManoObraRepo) GetByID(id int64) (*entity.ManoObra, error) {
	mo, ok := r.s.manoObra[id]
	if !ok {
		return nil, nil
	}
	copia := *mo
	return &copia, nil
}

func (r *memManoObraRepo) GetByNombre(nombre string) (*entity.ManoObra, error) {
	for _, mo := range r.s.manoObra {
		if mo.Nombre == nombre {
			copia := *mo
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memManoObraRepo) List(limit, offset int) ([]*entity.ManoObra, error) {
	var list []*entity.ManoObra
	for _, mo := range r.s.manoObra {
		copia := *mo
		list = append(list, &copia)
	}
	return list, nil
}

func (r *memManoObraRepo) Update(mo *entity.ManoObra) error {
	copia := *mo
	r.s.manoObra[mo.ID] = &copia
	return nil
}

func (r *memManoObraRepo) Delete(id int64) error {
	delete(r.s.manoObra, id)
	return nil
}

type memPantalonRepo struct{ s *memStore }

func (r *memPantalonRepo) Create(p *entity.Pantalon) error {
	p.ID = r.s.nextID()
	r.s.pantalones[p.ID] = copiaPantalon(p)
	return nil
}

func (r *memPantalonRepo) GetByID(id int64) (*entity.Pantalon, error) {
	p, ok := r.s.pantalones[id]
	if !ok {
		return nil, nil
	}
	return copiaPantalon(p), nil
}

func (r *memPantalonRepo) GetByNombre(nombre string) (*entity.Pantalon, error) {
	for _, p := range r.s.pantalones {
		if p.Nombre == nombre {
			return copiaPantalon(p), nil
		}
	}
	return nil, nil
}

func (r *memPantalonRepo) List(limit, offset int) ([]*entity.Pantalon, error) {
	var list []*entity.Pantalon
	for _, p := range r.s.pantalones {
		list = append(list, copiaPantalon(p))
	}
	return list, nil
}

func (r *memPantalonRepo) Update(p *entity.Pantalon) error {
	r.s.pantalones[p.ID] = copiaPantalon(p)
	return nil
}

func (r *memPantalonRepo) Delete(id int64) error {
	delete(r.s.pantalones, id)
	delete(r.s.recetaInsumos, id)
	delete(r.s.recetaManoObra, id)
	return nil
}

type memRecetaRepo struct{ s *memStore }

func (r *memRecetaRepo) GetInsumosByPantalon(pantalonID int64) ([]*entity.RecetaInsumo, error) {
	filas := r.s.recetaInsumos[pantalonID]
	copias := make([]*entity.RecetaInsumo, 0, len(filas))
	for _, f := range filas {
		copia := *f
		copias = append(copias, &copia)
	}
	return copias, nil
}

func (r *memRecetaRepo) GetManoObraByPantalon(pantalonID int64) ([]*entity.RecetaManoObra, error) {
	filas := r.s.recetaManoObra[pantalonID]
	copias := make([]*entity.RecetaManoObra, 0, len(filas))
	for _, f := range filas {
		copia := *f
		copias = append(copias, &copia)
	}
	return copias, nil
}

func (r *memRecetaRepo) ReplaceInsumos(pantalonID int64, entradas []*entity.RecetaInsumo) error {
	copias := make([]*entity.RecetaInsumo, 0, len(entradas))
	for _, e := range entradas {
		copia := *e
		copias = append(copias, &copia)
	}
	r.s.recetaInsumos[pantalonID] = copias
	return nil
}

func (r *memRecetaRepo) ReplaceManoObra(pantalonID int64, manoObraIDs []int64) error {
	filas := make([]*entity.RecetaManoObra, 0, len(manoObraIDs))
	for _, id := range manoObraIDs {
		filas = append(filas, &entity.RecetaManoObra{PantalonID: pantalonID, ManoObraID: id})
	}
	r.s.recetaManoObra[pantalonID] = filas
	return nil
}

func (r *memRecetaRepo) DeleteByPantalon(pantalonID int64) error {
	delete(r.s.recetaInsumos, pantalonID)
	delete(r.s.recetaManoObra, pantalonID)
	return nil
}

func (r *memRecetaRepo) CountByInsumo(insumoID int64) (int, error) {
	n := 0
	for _, filas := range r.s.recetaInsumos {
		for _, f := range filas {
			if f.InsumoID == insumoID {
				n++
			}
		}
	}
	return n, nil
}

func (r *memRecetaRepo) CountByManoObra(manoObraID int64) (int, error) {
	n := 0
	for _, filas := range r.s.recetaManoObra {
		for _, f := range filas {
			if f.ManoObraID == manoObraID {
				n++
			}
		}
	}
	return n, nil
}

type memMovimientoRepo struct{ s *memStore }

func (r *memMovimientoRepo) Create(mov *entity.Movimiento) error {
	copia := *mov
	r.s.movimientos = append(r.s.movimientos, &copia)
	return nil
}

func (r *memMovimientoRepo) ListByInsumo(insumoID int64, limit, offset int) ([]*entity.Movimiento, error) {
	var list []*entity.Movimiento
	for _, m := range r.s.movimientos {
		if m.InsumoID == insumoID {
			copia := *m
			list = append(list, &copia)
		}
	}
	return list, nil
}

// ── TxRunner fake ─────────────────────────────────────────────────────────────

type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(_ context.Context, fn func(
	insumoRepo repository.InsumoRepository,
	manoObraRepo repository.ManoObraRepository,
	pantalonRepo repository.PantalonRepository,
	recetaRepo repository.RecetaRepository,
	movRepo repository.MovimientoRepository,
) error) error {
	snap := t.s.clone()
	err := fn(
		&memInsumoRepo{t.s},
		&memManoObraRepo{t.s},
		&memPantalonRepo{t.s},
		&memRecetaRepo{t.s},
		&memMovimientoRepo{t.s},
	)
	if err != nil {
		t.s.restore(snap)
	}
	return err
}

// ── ImagenStore fake ──────────────────────────────────────────────────────────

type memImagenStore struct{ eliminadas []string }

func (m *memImagenStore) Eliminar(ref string) error {
	m.eliminadas = append(m.eliminadas, ref)
	return nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func newEngine(s *memStore) (*production.PantalonUseCase, *memImagenStore) {
	clasificador := domaininv.NewClasificador(domaininv.UmbralesPorDefecto())
	ledger := appinventory.NewLedger(clasificador)
	imagenes := &memImagenStore{}
	uc := production.NewPantalonUseCase(
		&memTxRunner{s}, ledger,
		&memPantalonRepo{s}, &memRecetaRepo{s}, &memInsumoRepo{s}, &memManoObraRepo{s},
		imagenes, nil,
	)
	return uc, imagenes
}

func seedInsumo(s *memStore, nombre, tipo string, cantidad, precio float64) int64 {
	id := s.nextID()
	estado := entity.EstadoDisponible
	s.insumos[id] = &entity.Insumo{
		ID:             id,
		Nombre:         nombre,
		Tipo:           tipo,
		UnidadMedida:   "unidad",
		Cantidad:       decimal.NewFromFloat(cantidad),
		PrecioUnitario: decimal.NewFromFloat(precio),
		Estado:         &estado,
	}
	return id
}

func seedManoObra(s *memStore, nombre string, precio float64) int64 {
	id := s.nextID()
	s.manoObra[id] = &entity.ManoObra{
		ID:     id,
		Nombre: nombre,
		Precio: decimal.NewFromFloat(precio),
	}
	return id
}
