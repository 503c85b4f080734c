package watch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/solicitudes-api/internal/application/watch"
)

func TestHub_PublishEntregaATodosLosSuscriptores(t *testing.T) {
	hub := watch.NewHub()
	var got1, got2 interface{}
	hub.Subscribe(watch.CollectionClients, func(s interface{}) { got1 = s })
	hub.Subscribe(watch.CollectionClients, func(s interface{}) { got2 = s })

	snapshot := []string{"a", "b"}
	hub.Publish(watch.CollectionClients, snapshot)

	assert.Equal(t, snapshot, got1)
	assert.Equal(t, snapshot, got2)
}

func TestHub_ColeccionesIndependientes(t *testing.T) {
	hub := watch.NewHub()
	calls := 0
	hub.Subscribe(watch.CollectionProducts, func(interface{}) { calls++ })

	hub.Publish(watch.CollectionClients, nil)
	assert.Equal(t, 0, calls, "publicar en otra colección no debe entregar nada")

	hub.Publish(watch.CollectionProducts, nil)
	assert.Equal(t, 1, calls)
}

func TestHub_UnsubscribeDetieneLaEntrega(t *testing.T) {
	hub := watch.NewHub()
	calls := 0
	unsubscribe := hub.Subscribe(watch.CollectionSolicitudes, func(interface{}) { calls++ })

	hub.Publish(watch.CollectionSolicitudes, nil)
	require.Equal(t, 1, calls)

	unsubscribe()
	hub.Publish(watch.CollectionSolicitudes, nil)
	assert.Equal(t, 1, calls, "después de desuscribirse no deben llegar snapshots")
	assert.Equal(t, 0, hub.SubscriberCount(watch.CollectionSolicitudes))
}

func TestHub_UnsubscribeDosVecesEsInocuo(t *testing.T) {
	hub := watch.NewHub()
	unsubscribe := hub.Subscribe(watch.CollectionClients, func(interface{}) {})
	otro := hub.Subscribe(watch.CollectionClients, func(interface{}) {})

	unsubscribe()
	unsubscribe() // segunda llamada no debe tocar al otro suscriptor
	_ = otro

	assert.Equal(t, 1, hub.SubscriberCount(watch.CollectionClients))
}

func TestHub_PublishSinSuscriptoresNoFalla(t *testing.T) {
	hub := watch.NewHub()
	assert.NotPanics(t, func() { hub.Publish(watch.CollectionClients, nil) })
}
