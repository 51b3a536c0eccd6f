package metrics

// Методы-рекордеры доменных событий. Use cases и сервисы зависят от узких
// интерфейсов с этими сигнатурами, а не от prometheus напрямую.

// ReservationCreated увеличивает счётчик созданных бронирований
func (m *Metrics) ReservationCreated() {
	m.ReservationsCreated.Inc()
}

// ReservationCancelled увеличивает счётчик отменённых бронирований
func (m *Metrics) ReservationCancelled() {
	m.ReservationsCancelled.Inc()
}

// ReservationRejected увеличивает счётчик отказов с меткой причины
func (m *Metrics) ReservationRejected(reason string) {
	m.ReservationsRejected.WithLabelValues(reason).Inc()
}

// Nop no-op рекордер для случая, когда метрики выключены в конфигурации
type Nop struct{}

func (Nop) ReservationCreated() {}

func (Nop) ReservationCancelled() {}

func (Nop) ReservationRejected(reason string) {}
