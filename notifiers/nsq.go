package notifiers

import (
	"crypto/tls"
	"encoding/json"
	"errors"
	"strings"

	"github.com/nsqio/go-nsq"
	"go.uber.org/zap"
)

// Nsq notify by nsq
type Nsq struct {
	topic    string
	producer *nsq.Producer
}

// NewNsq create new nsq notifier, tls is enabled when both cert and key are given
func NewNsq(broker, tlsCert, tlsKey, topic string) (*Nsq, error) {
	if strings.TrimSpace(broker) == "" {
		return nil, errors.New("nsq broker undefined")
	}

	if strings.TrimSpace(topic) == "" {
		return nil, errors.New("nsq topic undefined")
	}

	config := nsq.NewConfig()
	if tlsCert != "" && tlsKey != "" {
		cert, err := tls.LoadX509KeyPair(tlsCert, tlsKey)
		if err != nil {
			zap.L().Error("init tls certificate failed",
				zap.Error(err),
				zap.String("tlsCert", tlsCert),
				zap.String("tlsKey", tlsKey))
			return nil, err
		}

		config.TlsV1 = true
		config.TlsConfig = &tls.Config{
			InsecureSkipVerify: true,
			Certificates:       []tls.Certificate{cert},
		}
	}

	producer, err := nsq.NewProducer(broker, config)
	if err != nil {
		zap.L().Error("init nsq producer failed",
			zap.Error(err),
			zap.String("broker", broker))
		return nil, err
	}

	return &Nsq{topic: topic, producer: producer}, nil
}

// Notify publish fallback event
func (s Nsq) Notify(event *FallbackEvent) {
	buffer, err := json.Marshal(event)
	if err != nil {
		zap.L().Warn("marshal fallback event failed",
			zap.Error(err),
			zap.Any("event", event))
		return
	}

	err = s.producer.Publish(s.topic, buffer)
	if err != nil {
		zap.L().Warn("publish fallback event failed",
			zap.Error(err),
			zap.String("topic", s.topic),
			zap.Any("event", event))
		return
	}

	zap.L().Debug("publish fallback event success",
		zap.String("topic", s.topic),
		zap.Any("event", event))
}

// Close close producer
func (s Nsq) Close() {
	if s.producer == nil {
		return
	}

	s.producer.Stop()
}
