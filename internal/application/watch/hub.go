// Package watch implementa el listener de colecciones en vivo: los casos de
// uso publican el snapshot completo de una colección después de cada mutación
// exitosa y los suscriptores lo reciben tal cual. No hay diffs ni buffering:
// un snapshot nuevo simplemente reemplaza al anterior en el consumidor.
package watch

import "sync"

// Nombres de colección publicados por los casos de uso.
const (
	CollectionClients     = "clients"
	CollectionProducts    = "products"
	CollectionSolicitudes = "solicitudes"
)

// Hub difunde snapshots por colección a callbacks registrados.
type Hub struct {
	mu   sync.RWMutex
	next int
	subs map[string]map[int]func(snapshot interface{})
}

// NewHub construye el hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[int]func(interface{}))}
}

// Subscribe registra un callback para la colección y devuelve la función de
// desuscripción. El consumidor DEBE invocarla al desmontar para no filtrar la
// suscripción. Desuscribirse dos veces es inocuo.
func (h *Hub) Subscribe(collection string, fn func(snapshot interface{})) (unsubscribe func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[collection] == nil {
		h.subs[collection] = make(map[int]func(interface{}))
	}
	id := h.next
	h.next++
	h.subs[collection][id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs[collection], id)
	}
}

// Publish entrega el snapshot a todos los suscriptores de la colección. La
// entrega es síncrona y en orden de registro no garantizado.
func (h *Hub) Publish(collection string, snapshot interface{}) {
	h.mu.RLock()
	fns := make([]func(interface{}), 0, len(h.subs[collection]))
	for _, fn := range h.subs[collection] {
		fns = append(fns, fn)
	}
	h.mu.RUnlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

// SubscriberCount cantidad de suscriptores activos de una colección.
func (h *Hub) SubscriberCount(collection string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[collection])
}
