// Package mq RabbitMQ发布/消费封装
//
// Exchange统一使用topic类型，routing key形如 loan.checked_out
// 消息体为JSON，追踪上下文通过消息头(traceparent)传递
package mq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/xiebiao/library/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrDiscard 处理函数返回该错误（或包装它）时消息不再重新入队
var ErrDiscard = errors.New("mq: discard message")

// Message 投递给处理函数的消息
type Message struct {
	ID         string
	RoutingKey string
	Body       []byte
	Timestamp  time.Time
}

// Handler 返回nil确认消息，返回错误则重新入队
type Handler func(ctx context.Context, msg Message) error

// Publisher 消息发布者
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      *zap.Logger
}

// NewPublisher 建立连接并声明持久化Exchange
func NewPublisher(url, exchange, exchangeType string, log *zap.Logger) (*Publisher, error) {
	conn, channel, err := open(url, exchange, exchangeType)
	if err != nil {
		return nil, err
	}
	log.Info("mq publisher ready", zap.String("exchange", exchange), zap.String("type", exchangeType))
	return &Publisher{conn: conn, channel: channel, exchange: exchange, log: log}, nil
}

// Publish 序列化message并持久化发布
func (p *Publisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("消息序列化失败: %w", err)
	}

	headers := amqp.Table{}
	otel.GetTextMapPropagator().Inject(ctx, headerCarrier(headers))

	msgID := uuid.NewString()
	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			Headers:      headers,
			ContentType:  "application/json",
			MessageId:    msgID,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
		},
	)
	if err != nil {
		return fmt.Errorf("发布消息失败: %w", err)
	}

	metrics.InitMetrics()
	metrics.MessagesPublishedTotal.WithLabelValues(p.exchange, routingKey).Inc()
	p.log.Debug("message published", zap.String("routing_key", routingKey), zap.String("message_id", msgID))
	return nil
}

// Close 关闭Channel和连接
func (p *Publisher) Close() error {
	return closeAll(p.channel, p.conn)
}

// Consumer 消息消费者
type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	log     *zap.Logger
}

// NewConsumer 声明Exchange和持久化Queue，并按routingKeys绑定（支持 * 和 # 通配）
func NewConsumer(url, exchange, exchangeType, queue string, routingKeys []string, log *zap.Logger) (*Consumer, error) {
	conn, channel, err := open(url, exchange, exchangeType)
	if err != nil {
		return nil, err
	}

	q, err := channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		_ = closeAll(channel, conn)
		return nil, fmt.Errorf("声明Queue失败: %w", err)
	}

	for _, key := range routingKeys {
		if err := channel.QueueBind(q.Name, key, exchange, false, nil); err != nil {
			_ = closeAll(channel, conn)
			return nil, fmt.Errorf("绑定Queue失败: %w", err)
		}
	}

	log.Info("mq consumer ready", zap.String("queue", q.Name), zap.Strings("routing_keys", routingKeys))
	return &Consumer{conn: conn, channel: channel, queue: q.Name, log: log}, nil
}

// Consume 阻塞消费直到ctx取消，手动ack，prefetch=1
func (c *Consumer) Consume(ctx context.Context, handler Handler) error {
	if err := c.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("设置Qos失败: %w", err)
	}

	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("开始消费失败: %w", err)
	}
	metrics.InitMetrics()

	for {
		select {
		case <-ctx.Done():
			c.log.Info("consumer stopped", zap.String("queue", c.queue))
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("消息Channel已关闭")
			}
			c.handle(ctx, d, handler)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery, handler Handler) {
	start := time.Now()
	msgCtx := otel.GetTextMapPropagator().Extract(ctx, headerCarrier(d.Headers))
	log := c.log.With(zap.String("routing_key", d.RoutingKey), zap.String("message_id", d.MessageId))

	err := handler(msgCtx, Message{
		ID:         d.MessageId,
		RoutingKey: d.RoutingKey,
		Body:       d.Body,
		Timestamp:  d.Timestamp,
	})
	metrics.MessageProcessingDuration.WithLabelValues(c.queue).Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		metrics.MessagesConsumedTotal.WithLabelValues(c.queue, "ack").Inc()
		if ackErr := d.Ack(false); ackErr != nil {
			log.Warn("ack failed", zap.Error(ackErr))
		}
	case errors.Is(err, ErrDiscard):
		metrics.MessagesConsumedTotal.WithLabelValues(c.queue, "discard").Inc()
		log.Warn("message discarded", zap.Error(err))
		_ = d.Nack(false, false)
	default:
		metrics.MessagesConsumedTotal.WithLabelValues(c.queue, "nack").Inc()
		log.Error("handle message failed, requeue", zap.Error(err))
		_ = d.Nack(false, true)
	}
}

// Close 关闭Channel和连接
func (c *Consumer) Close() error {
	return closeAll(c.channel, c.conn)
}

func open(url, exchange, exchangeType string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("连接RabbitMQ失败: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("创建Channel失败: %w", err)
	}
	if err := channel.ExchangeDeclare(exchange, exchangeType, true, false, false, false, nil); err != nil {
		_ = closeAll(channel, conn)
		return nil, nil, fmt.Errorf("声明Exchange失败: %w", err)
	}
	return conn, channel, nil
}

func closeAll(channel *amqp.Channel, conn *amqp.Connection) error {
	var errs []error
	if channel != nil {
		if err := channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	if conn != nil {
		if err := conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// headerCarrier 让otel propagator读写amqp消息头
type headerCarrier amqp.Table

func (h headerCarrier) Get(key string) string {
	if v, ok := h[key].(string); ok {
		return v
	}
	return ""
}

func (h headerCarrier) Set(key, value string) { h[key] = value }

func (h headerCarrier) Keys() []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	return keys
}
