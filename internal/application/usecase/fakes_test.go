package usecase_test

import (
	"github.com/tu-usuario/solicitudes-api/internal/domain"
	"github.com/tu-usuario/solicitudes-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso. Replican el contrato
// de los adaptadores de PostgreSQL: nil sin error cuando no hay fila, y el
// UPDATE de estado condicionado a pending.
// ──────────────────────────────────────────────────────────────────────────────

type memClientRepo struct {
	clients []*entity.Client
}

func (r *memClientRepo) Create(c *entity.Client) error {
	cp := *c
	r.clients = append(r.clients, &cp)
	return nil
}

func (r *memClientRepo) GetByID(id string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memClientRepo) GetByTaxID(taxID string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.TaxID == taxID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memClientRepo) List() ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memClientRepo) Update(c *entity.Client) error {
	for i, old := range r.clients {
		if old.ID == c.ID {
			cp := *c
			r.clients[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memClientRepo) Delete(id string) error {
	for i, c := range r.clients {
		if c.ID == id {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memProductRepo struct {
	products []*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products = append(r.products, &cp)
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	for i, old := range r.products {
		if old.ID == p.ID {
			cp := *p
			r.products[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memProductRepo) Delete(id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memSolicitudRepo struct {
	solicitudes []*entity.Solicitud
}

func (r *memSolicitudRepo) Create(s *entity.Solicitud) error {
	cp := *s
	r.solicitudes = append(r.solicitudes, &cp)
	return nil
}

func (r *memSolicitudRepo) GetByID(id string) (*entity.Solicitud, error) {
	for _, s := range r.solicitudes {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memSolicitudRepo) List() ([]*entity.Solicitud, error) {
	// más reciente primero, como el adaptador real
	out := make([]*entity.Solicitud, 0, len(r.solicitudes))
	for i := len(r.solicitudes) - 1; i >= 0; i-- {
		cp := *r.solicitudes[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memSolicitudRepo) UpdateStatus(s *entity.Solicitud) error {
	for i, old := range r.solicitudes {
		if old.ID != s.ID {
			continue
		}
		if old.Status != entity.StatusPending {
			return domain.ErrInvalidTransition
		}
		cp := *s
		r.solicitudes[i] = &cp
		return nil
	}
	return domain.ErrNotFound
}

func (r *memSolicitudRepo) CountByProduct(productID string) (int, error) {
	n := 0
	for _, s := range r.solicitudes {
		if s.ProductID == productID {
			n++
			continue
		}
		for _, it := range s.LineItems {
			if it.ProductID == productID {
				n++
				break
			}
		}
	}
	return n, nil
}

func (r *memSolicitudRepo) CountByClientTaxID(taxID string) (int, error) {
	n := 0
	for _, s := range r.solicitudes {
		if s.Client.TaxID == taxID {
			n++
		}
	}
	return n, nil
}
