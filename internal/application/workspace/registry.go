package workspace

import (
	"sync"
	"time"

	"github.com/jhoicas/skladpro/internal/application/dto"
)

// DefaultIdleTTL tiempo sin peticiones tras el cual se descarta el estado de una sesión.
const DefaultIdleTTL = 12 * time.Hour

type entry struct {
	state    State
	lastSeen time.Time
}

// Registry estados de vista por sesión. Cada petición es un evento: Update serializa los
// eventos concurrentes de una misma sesión. Los estados inactivos más de idleTTL se
// descartan; la sesión vuelve entonces al estado inicial.
type Registry struct {
	mu        sync.Mutex
	states    map[string]*entry
	idleTTL   time.Duration
	now       func() time.Time
	lastSweep time.Time
}

// NewRegistry construye el registro vacío con DefaultIdleTTL.
func NewRegistry() *Registry {
	return NewRegistryWithTTL(DefaultIdleTTL, time.Now)
}

// NewRegistryWithTTL construye el registro. idleTTL <= 0 usa DefaultIdleTTL; now nil usa time.Now.
func NewRegistryWithTTL(idleTTL time.Duration, now func() time.Time) *Registry {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Registry{states: make(map[string]*entry), idleTTL: idleTTL, now: now, lastSweep: now()}
}

// Update aplica fn sobre el estado de la sesión, creándolo si no existe.
func (r *Registry) Update(sessionID string, fn func(*State) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(&r.touch(sessionID).state)
}

// Snapshot copia del estado actual (estado inicial si la sesión no tiene ninguno).
// No crea estado: solo los eventos lo hacen.
func (r *Registry) Snapshot(sessionID string) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.maybeSweep(now)
	if e, ok := r.states[sessionID]; ok {
		e.lastSeen = now
		return e.state
	}
	return NewState()
}

// AckNotice descarta el aviso ya mostrado. Si entretanto llegó otro aviso, se conserva.
func (r *Registry) AckNotice(sessionID string, shown *dto.NoticeResponse) {
	if shown == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.states[sessionID]; ok && e.state.Notice == shown {
		e.state.Notice = nil
	}
}

// Forget descarta el estado de la sesión (logout).
func (r *Registry) Forget(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, sessionID)
}

// Len número de sesiones con estado.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

// Sweep descarta los estados inactivos y devuelve cuántos quitó.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweep(r.now())
}

// touch devuelve la entrada de la sesión y marca la actividad. Debe llamarse con mu tomado.
func (r *Registry) touch(sessionID string) *entry {
	now := r.now()
	r.maybeSweep(now)
	e, ok := r.states[sessionID]
	if !ok {
		e = &entry{state: NewState()}
		r.states[sessionID] = e
	}
	e.lastSeen = now
	return e
}

// maybeSweep barre el mapa como mucho una vez cada idleTTL/2.
func (r *Registry) maybeSweep(now time.Time) {
	if now.Sub(r.lastSweep) >= r.idleTTL/2 {
		r.sweep(now)
	}
}

func (r *Registry) sweep(now time.Time) int {
	r.lastSweep = now
	n := 0
	for id, e := range r.states {
		if now.Sub(e.lastSeen) > r.idleTTL {
			delete(r.states, id)
			n++
		}
	}
	return n
}
