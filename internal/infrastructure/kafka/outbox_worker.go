package kafka

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/DRSN-tech/recs-backend/internal/usecase"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/DRSN-tech/recs-backend/pkg/jitter"
	"github.com/DRSN-tech/recs-backend/pkg/logger"
	"github.com/jackc/pgx/v5"
)

const (
	// Канал Postgres, в который репозиторий шлёт NOTIFY при записи события.
	notifyChannel = "outbox_pending"

	claimBatchSize = 10
	waitTimeout    = 30 * time.Second

	// События старше этого порога в processing считаются брошенными.
	staleAfter = 5 * time.Minute
)

// OutboxWorker доставляет события синхронизации каталога из таблицы
// outbox_events в Kafka. Хвост необработанных событий вычитывается при
// старте, дальше воркер просыпается по NOTIFY.
type OutboxWorker struct {
	events    usecase.OutboxRepository
	producer  usecase.MessageProducer
	logger    logger.Logger
	dbConnStr string

	stop chan struct{}
	wg   sync.WaitGroup
}

func NewOutboxWorker(
	events usecase.OutboxRepository,
	logger logger.Logger,
	producer usecase.MessageProducer,
	dbConnStr string,
) *OutboxWorker {
	return &OutboxWorker{
		events:    events,
		producer:  producer,
		logger:    logger,
		dbConnStr: dbConnStr,
		stop:      make(chan struct{}),
	}
}

func (w *OutboxWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.logger.Infof("outbox worker: draining backlog")
		w.drain(ctx)
		w.listen(ctx)
	}()
}

func (w *OutboxWorker) Stop() {
	close(w.stop)
	w.wg.Wait()
}

// drain вычитывает очередь до пустой пачки, предварительно возвращая
// в очередь события, брошенные упавшим инстансом.
func (w *OutboxWorker) drain(ctx context.Context) {
	if requeued, err := w.events.RequeueStale(ctx, staleAfter); err != nil {
		w.logger.Warnf("outbox worker: requeue of stale events failed: %v", err)
	} else if requeued > 0 {
		w.logger.Infof("outbox worker: requeued %d stale events", requeued)
	}

	for {
		claimed, err := w.claimAndPublish(ctx)
		if err != nil {
			w.logger.Warnf("outbox worker: batch failed: %v", err)
			return
		}
		if !claimed {
			return
		}
	}
}

// listen держит выделенное соединение под LISTEN и переподключается
// с экспоненциальной задержкой при обрывах.
func (w *OutboxWorker) listen(ctx context.Context) {
	var attempt int

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		default:
		}

		conn, err := w.subscribe(ctx)
		if err != nil {
			delay := jitter.ExponentialBackoff(time.Second, 30*time.Second, attempt, jitter.DefaultJitter)
			attempt++
			w.logger.Warnf("outbox worker: subscribe failed (attempt %d): %v", attempt, err)

			select {
			case <-time.After(delay):
				continue
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			}
		}
		attempt = 0

		w.waitLoop(ctx, conn)
		conn.Close(ctx)
	}
}

func (w *OutboxWorker) subscribe(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, w.dbConnStr)
	if err != nil {
		return nil, e.Wrap("outbox listen connect", err)
	}

	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		conn.Close(ctx)
		return nil, e.Wrap("outbox listen", err)
	}

	w.logger.Infof("outbox worker: subscribed to %q", notifyChannel)
	return conn, nil
}

// waitLoop крутится на одном соединении до его обрыва или остановки воркера.
func (w *OutboxWorker) waitLoop(ctx context.Context, conn *pgx.Conn) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		default:
		}

		waitCtx, cancel := context.WithTimeout(ctx, waitTimeout)
		notif, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				continue
			}
			w.logger.Warnf("outbox worker: connection lost: %v", err)
			return
		}

		if notif != nil && notif.Channel == notifyChannel {
			w.logger.Debugf("outbox worker: notification received")
			w.drain(ctx)
		}
	}
}

// claimAndPublish забирает пачку событий и публикует их по одному.
// Событие, которое не удалось опубликовать, остаётся в статусе processing
// и будет подхвачено при следующем прогоне.
func (w *OutboxWorker) claimAndPublish(ctx context.Context) (bool, error) {
	events, err := w.events.ClaimPending(ctx, claimBatchSize)
	if err != nil {
		return false, err
	}
	if len(events) == 0 {
		return false, nil
	}

	for _, event := range events {
		if err := w.producer.Publish(ctx, usecase.NewPublishEventReq(event.ProductID, event.Payload)); err != nil {
			w.logger.Warnf("outbox worker: publish of event %s failed: %v", event.EventID, err)
			continue
		}

		if err := w.events.MarkProcessed(ctx, event.ID); err != nil {
			w.logger.Warnf("outbox worker: mark processed failed: %v", err)
		}
	}

	return true, nil
}
