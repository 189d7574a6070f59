// Package background executa tarefas fire-and-forget após a escrita autoritativa
package background

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Runner dispara tarefas em goroutines próprias, cada uma com seu timeout.
// Falhas são registradas em log e nunca propagadas para quem disparou.
type Runner interface {
	Go(name string, timeout time.Duration, fn func(ctx context.Context) error)
	Wait(ctx context.Context) error
}

type runner struct {
	wg sync.WaitGroup
}

func NewRunner() Runner {
	return &runner{}
}

func (r *runner) Go(name string, timeout time.Duration, fn func(ctx context.Context) error) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				logrus.WithFields(logrus.Fields{
					"task":  name,
					"panic": rec,
				}).Error("Tarefa em background finalizada com panic")
			}
		}()

		// contexto próprio: o cancelamento da requisição não interrompe a tarefa
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		if err := fn(ctx); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"task":        name,
				"duration_ms": time.Since(start).Milliseconds(),
			}).Error("Falha na tarefa em background")
			return
		}

		logrus.WithField("task", name).Debug("Tarefa em background concluída")
	}()
}

// Wait aguarda as tarefas em andamento ou o fim do contexto
func (r *runner) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("tarefas em background não finalizadas: %w", ctx.Err())
	}
}
