// Package tap распознаёт двойное нажатие Shift на уровне системы.
// Монитор шлёт в канал единичный сигнал и никогда не обращается к модели
// или хранилищу напрямую.
package tap

import (
	"sync"
	"time"
)

// DefaultThreshold — окно двойного нажатия по умолчанию.
const DefaultThreshold = 400 * time.Millisecond

// Detector распознаёт двойное нажатие по интервалу между
// последовательными нажатиями. Всё состояние — время последнего
// нажатия; оно обновляется каждым нажатием, сработал порог или нет.
// Методы не потокобезопасны, вызывающий сериализует доступ сам.
type Detector struct {
	threshold time.Duration
	lastPress time.Time
}

// NewDetector создаёт детектор с заданным порогом. Порог меньше либо
// равный нулю заменяется порогом по умолчанию.
func NewDetector(threshold time.Duration) *Detector {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Detector{threshold: threshold}
}

// Press регистрирует нажатие и сообщает, образовало ли оно двойное.
// Интервал сравнивается по монотонным часам, time.Now подходит.
func (d *Detector) Press(now time.Time) bool {
	fired := !d.lastPress.IsZero() && now.Sub(d.lastPress) < d.threshold
	d.lastPress = now
	return fired
}

// SetThreshold меняет окно двойного нажатия.
func (d *Detector) SetThreshold(threshold time.Duration) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	d.threshold = threshold
}

// Monitor слушает системные нажатия Shift и при двойном нажатии посылает
// единичный сигнал в канал. Платформенная часть — в monitor_*.go.
type Monitor struct {
	mu       sync.Mutex
	detector *Detector
	enabled  bool
	toggle   chan<- struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// NewMonitor создаёт монитор, посылающий сигналы в toggle.
func NewMonitor(toggle chan<- struct{}, threshold time.Duration) *Monitor {
	return &Monitor{
		detector: NewDetector(threshold),
		enabled:  true,
		toggle:   toggle,
	}
}

// Start запускает платформенный слушатель клавиатуры. Ошибка запуска не
// фатальна для приложения: остаётся комбинированный хоткей.
func (m *Monitor) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return nil
	}

	m.stopCh = make(chan struct{})
	m.doneCh = make(chan struct{})
	if err := m.listen(m.stopCh, m.doneCh); err != nil {
		return err
	}
	m.running = true
	return nil
}

// Stop останавливает слушатель и ждёт его завершения.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	stopCh, doneCh := m.stopCh, m.doneCh
	m.mu.Unlock()

	close(stopCh)
	select {
	case <-doneCh:
	case <-time.After(time.Second):
	}
}

// SetEnabled включает или выключает реакцию на двойное нажатие.
func (m *Monitor) SetEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = enabled
}

// SetThreshold меняет окно двойного нажатия.
func (m *Monitor) SetThreshold(threshold time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.detector.SetThreshold(threshold)
}

// press обрабатывает одно нажатие Shift из платформенного слушателя.
func (m *Monitor) press(now time.Time) {
	m.mu.Lock()
	fired := m.detector.Press(now)
	enabled := m.enabled
	m.mu.Unlock()

	if !fired || !enabled {
		return
	}
	select {
	case m.toggle <- struct{}{}:
	default:
		// Предыдущий сигнал ещё не обработан
	}
}
