package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/solicitudes-api/internal/domain"
	"github.com/tu-usuario/solicitudes-api/internal/domain/entity"
	"github.com/tu-usuario/solicitudes-api/internal/domain/repository"
)

var _ repository.SolicitudRepository = (*SolicitudRepo)(nil)

// SolicitudRepo implementación de SolicitudRepository sobre PostgreSQL.
// Usa el pool directamente porque Create inserta cabecera y líneas en una
// misma transacción.
type SolicitudRepo struct {
	pool *pgxpool.Pool
}

// NewSolicitudRepository construye el adaptador de persistencia.
func NewSolicitudRepository(pool *pgxpool.Pool) *SolicitudRepo {
	return &SolicitudRepo{pool: pool}
}

const solicitudColumns = `id, client_id, client_tax_id, client_legal_name, client_email,
	product_id, product_name, amount, total_amount, status, shipping_reference,
	cancellation_comment, created_at, issued_at, cancelled_at`

// Create persiste la solicitud con sus líneas. Cabecera y detalle van en una
// transacción: una solicitud a medias no existe para el resto del sistema.
func (r *SolicitudRepo) Create(s *entity.Solicitud) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO solicitudes (` + solicitudColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = tx.Exec(ctx, query,
		s.ID, nullable(s.ClientID), s.Client.TaxID, s.Client.LegalName, s.Client.Email,
		nullable(s.ProductID), nullable(s.ProductName), nullableAmount(s), s.TotalAmount,
		s.Status, s.ShippingReference, s.CancellationComment,
		s.CreatedAt, s.IssuedAt, s.CancelledAt,
	)
	if err != nil {
		return fmt.Errorf("insert solicitud: %w", err)
	}

	for i, it := range s.LineItems {
		_, err = tx.Exec(ctx, `
			INSERT INTO solicitud_items (solicitud_id, position, product_id, product_name, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			s.ID, i, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice, it.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert solicitud item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud con sus líneas; nil si no existe.
func (r *SolicitudRepo) GetByID(id string) (*entity.Solicitud, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `SELECT `+solicitudColumns+` FROM solicitudes WHERE id = $1`, id)
	s, err := scanSolicitud(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get solicitud: %w", err)
	}
	items, err := r.loadItems(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	s.LineItems = items[id]
	return s, nil
}

// List devuelve todas las solicitudes, más reciente primero, con líneas.
func (r *SolicitudRepo) List() ([]*entity.Solicitud, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx,
		`SELECT `+solicitudColumns+` FROM solicitudes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list solicitudes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Solicitud
	var ids []string
	for rows.Next() {
		s, err := scanSolicitud(rows)
		if err != nil {
			return nil, fmt.Errorf("scan solicitud: %w", err)
		}
		list = append(list, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		s.LineItems = items[s.ID]
	}
	return list, nil
}

// UpdateStatus persiste la transición de estado. El UPDATE está condicionado a
// status='pending': si la fila ya es terminal no se toca y se devuelve
// ErrInvalidTransition. Es la segunda línea de defensa detrás de la entidad.
func (r *SolicitudRepo) UpdateStatus(s *entity.Solicitud) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx, `
		UPDATE solicitudes
		SET status = $2, issued_at = $3, cancelled_at = $4, cancellation_comment = $5
		WHERE id = $1 AND status = 'pending'`,
		s.ID, s.Status, s.IssuedAt, s.CancelledAt, s.CancellationComment,
	)
	if err != nil {
		return fmt.Errorf("update solicitud status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM solicitudes WHERE id = $1)`, s.ID).Scan(&exists); err != nil {
			return fmt.Errorf("check solicitud: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

// CountByProduct cuenta las solicitudes que referencian el producto, por línea
// de detalle o por el campo legado product_id.
func (r *SolicitudRepo) CountByProduct(productID string) (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(), `
		SELECT COUNT(DISTINCT s.id)
		FROM solicitudes s
		LEFT JOIN solicitud_items i ON i.solicitud_id = s.id
		WHERE s.product_id = $1 OR i.product_id = $1`, productID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count solicitudes by product: %w", err)
	}
	return n, nil
}

// CountByClientTaxID cuenta las solicitudes cuyo snapshot lleva ese RUC.
func (r *SolicitudRepo) CountByClientTaxID(taxID string) (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM solicitudes WHERE client_tax_id = $1`, taxID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count solicitudes by client: %w", err)
	}
	return n, nil
}

// loadItems trae las líneas de los ids dados en una sola consulta y las agrupa
// por solicitud, en orden de posición.
func (r *SolicitudRepo) loadItems(ctx context.Context, ids []string) (map[string][]entity.LineItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT solicitud_id, product_id, product_name, quantity, unit_price, subtotal
		FROM solicitud_items
		WHERE solicitud_id = ANY($1)
		ORDER BY solicitud_id, position`, ids)
	if err != nil {
		return nil, fmt.Errorf("list solicitud items: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.LineItem)
	for rows.Next() {
		var sid string
		var it entity.LineItem
		if err := rows.Scan(&sid, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan solicitud item: %w", err)
		}
		out[sid] = append(out[sid], it)
	}
	return out, rows.Err()
}

// scanSolicitud mapea una fila de solicitudes, con los campos legados y de
// cierre que pueden venir en NULL.
func scanSolicitud(row pgx.Row) (*entity.Solicitud, error) {
	var s entity.Solicitud
	var clientID, productID, productName, shippingRef, cancelComment *string
	var amount *decimal.Decimal
	err := row.Scan(
		&s.ID, &clientID, &s.Client.TaxID, &s.Client.LegalName, &s.Client.Email,
		&productID, &productName, &amount, &s.TotalAmount, &s.Status,
		&shippingRef, &cancelComment, &s.CreatedAt, &s.IssuedAt, &s.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	if clientID != nil {
		s.ClientID = *clientID
	}
	if productID != nil {
		s.ProductID = *productID
	}
	if productName != nil {
		s.ProductName = *productName
	}
	if amount != nil {
		s.Amount = *amount
	}
	if shippingRef != nil {
		s.ShippingReference = *shippingRef
	}
	if cancelComment != nil {
		s.CancellationComment = *cancelComment
	}
	return &s, nil
}

// nullable convierte cadena vacía en NULL para columnas opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nullableAmount: el monto legado solo se persiste en registros sin líneas.
func nullableAmount(s *entity.Solicitud) *decimal.Decimal {
	if len(s.LineItems) > 0 || s.Amount.IsZero() {
		return nil
	}
	a := s.Amount
	return &a
}
