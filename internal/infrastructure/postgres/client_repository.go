package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/solicitudes-api/internal/domain"
	"github.com/tu-usuario/solicitudes-api/internal/domain/entity"
	"github.com/tu-usuario/solicitudes-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, tax_id, legal_name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.TaxID, client.LegalName, client.Email, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID; nil si no existe.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.getOne(`SELECT id, tax_id, legal_name, email, created_at, updated_at
		FROM clients WHERE id = $1`, id)
}

// GetByTaxID obtiene el primer cliente con ese RUC exacto; nil si no existe.
// Si hubiera duplicados históricos se devuelve el más antiguo y el resto se
// ignora, igual que hacía el front original.
func (r *ClientRepo) GetByTaxID(taxID string) (*entity.Client, error) {
	return r.getOne(`SELECT id, tax_id, legal_name, email, created_at, updated_at
		FROM clients WHERE tax_id = $1 ORDER BY created_at LIMIT 1`, taxID)
}

func (r *ClientRepo) getOne(query string, arg any) (*entity.Client, error) {
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.TaxID, &c.LegalName, &c.Email, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// List lista todos los clientes ordenados por razón social.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	query := `
		SELECT id, tax_id, legal_name, email, created_at, updated_at
		FROM clients ORDER BY legal_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.TaxID, &c.LegalName, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza razón social y email.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET legal_name = $2, email = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.LegalName, client.Email, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID. El guard de referencias vive en el caso de uso.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
