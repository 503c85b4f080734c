// Package notify define el servicio de notificaciones visibles al usuario.
// Es una interfaz inyectada explícitamente en los casos de uso que necesitan
// levantar mensajes; no hay singleton global.
package notify

import (
	"sync"
	"time"

	"github.com/tu-usuario/solicitudes-api/pkg/logger"
)

// Severity severidad de una notificación.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Notification mensaje transitorio para el usuario. No se persiste: el
// consumidor lo muestra y lo descarta.
type Notification struct {
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
	Time     time.Time `json:"time"`
}

// Notifier puerto del servicio de notificaciones.
type Notifier interface {
	Notify(n Notification)
}

// Success, Error, Warning, Info helpers para construir y emitir.
func Success(n Notifier, msg string) { emit(n, msg, SeveritySuccess) }
func Error(n Notifier, msg string)   { emit(n, msg, SeverityError) }
func Warning(n Notifier, msg string) { emit(n, msg, SeverityWarning) }
func Info(n Notifier, msg string)    { emit(n, msg, SeverityInfo) }

func emit(n Notifier, msg string, sev Severity) {
	if n == nil {
		return
	}
	n.Notify(Notification{Message: msg, Severity: sev, Time: time.Now()})
}

// LogNotifier implementación sobre el logger estructurado: en el backend las
// notificaciones de usuario se registran; el front las materializa como toasts.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify registra la notificación con el nivel acorde a su severidad.
func (l *LogNotifier) Notify(n Notification) {
	ev := l.log.Info()
	switch n.Severity {
	case SeverityError:
		ev = l.log.Error()
	case SeverityWarning:
		ev = l.log.Warn()
	}
	ev.Str("severity", string(n.Severity)).Msg(n.Message)
}

// Recorder acumula notificaciones en memoria. Pensado para tests.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

// Notify guarda la notificación.
func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// Items devuelve una copia de lo acumulado.
func (r *Recorder) Items() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}
