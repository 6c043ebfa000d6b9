// internal/app/schedule.go
package app

import (
	"sort"
	"time"
)

// Token идентифицирует отложенный вызов и позволяет его отменить.
type Token uint64

type scheduledCall struct {
	token Token
	due   time.Time
	fn    func()
}

// Scheduler хранит отложенные вызовы по настенным часам. Срабатывание
// происходит только внутри Service, поэтому все колбэки выполняются в
// потоке игрового тика. Перезапуск забега обязан вызвать CancelAll,
// иначе повествование прошлой сессии продолжит приходить.
type Scheduler struct {
	now       func() time.Time
	nextToken Token
	pending   []scheduledCall
}

func NewScheduler() *Scheduler {
	return &Scheduler{now: time.Now}
}

// After регистрирует вызов fn через delay. Возвращённый токен можно
// передать в Cancel до срабатывания.
func (s *Scheduler) After(delay time.Duration, fn func()) Token {
	s.nextToken++
	s.pending = append(s.pending, scheduledCall{
		token: s.nextToken,
		due:   s.now().Add(delay),
		fn:    fn,
	})
	return s.nextToken
}

// Cancel снимает отложенный вызов. Отмена уже сработавшего или чужого
// токена безвредна.
func (s *Scheduler) Cancel(token Token) {
	for i, call := range s.pending {
		if call.token == token {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// CancelAll снимает все отложенные вызовы разом.
func (s *Scheduler) CancelAll() {
	s.pending = s.pending[:0]
}

// Service выполняет все вызовы, чьё время пришло, в порядке сроков.
// Вызывается раз за тик хоста.
func (s *Scheduler) Service() {
	now := s.now()

	var due []scheduledCall
	remaining := s.pending[:0]
	for _, call := range s.pending {
		if !call.due.After(now) {
			due = append(due, call)
		} else {
			remaining = append(remaining, call)
		}
	}
	s.pending = remaining

	sort.Slice(due, func(i, j int) bool { return due[i].due.Before(due[j].due) })
	for _, call := range due {
		call.fn()
	}
}
