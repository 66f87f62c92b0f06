package mqtt

import (
	"bytes"
	"context"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"

	"github.com/robotalks/mazebot/pkg/radio"
)

// RadioTopicSuffix is appended to the controller name to form the topic.
const RadioTopicSuffix = "/radio"

// Publisher publishes payloads to a topic.
type Publisher interface {
	Pub(topic string, payload []byte) paho.Token
}

// LineWriter is an io.Writer publishing every complete radio line as
// one message. Publishing never waits for the broker so a slow network
// can't stall the radio link.
type LineWriter struct {
	Publisher Publisher
	Topic     string

	buf  []byte
	lock sync.Mutex
}

// Write implements io.Writer.
func (w *LineWriter) Write(p []byte) (int, error) {
	w.lock.Lock()
	defer w.lock.Unlock()
	w.buf = append(w.buf, p...)
	for {
		pos := bytes.Index(w.buf, []byte(radio.Terminator))
		if pos < 0 {
			break
		}
		line := make([]byte, pos)
		copy(line, w.buf[:pos])
		w.buf = w.buf[pos+len(radio.Terminator):]
		w.Publisher.Pub(w.Topic, line)
	}
	return len(p), nil
}

// Connect retry intervals.
const (
	DefaultRetryInterval = time.Second
	MaxRetryInterval     = 30 * time.Second
)

// Mirror keeps an MQTT connection for the life of the controller and
// exposes a LineWriter for the radio link.
type Mirror struct {
	Queue  *Queue
	Writer *LineWriter
	// RetryInterval is the first delay between connect attempts, doubled
	// on each failure.
	RetryInterval time.Duration
}

// NewMirror creates a Mirror for the named controller.
func NewMirror(brokerURL, name string) (*Mirror, error) {
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	if opts.ClientID == "" {
		opts.SetClientID("mazebot:" + name)
	}
	q := NewQueue(opts, topicPrefix)
	return &Mirror{
		Queue:  q,
		Writer: &LineWriter{Publisher: q, Topic: name + RadioTopicSuffix},
	}, nil
}

// Name implements Named.
func (m *Mirror) Name() string {
	return "mqtt-mirror"
}

// Run implements Runnable. The first connection is retried with backoff
// until it succeeds, later connection losses are handled by paho
// auto-reconnect.
func (m *Mirror) Run(ctx context.Context) error {
	defer m.Queue.Close()
	retry := m.RetryInterval
	if retry <= 0 {
		retry = DefaultRetryInterval
	}
	for {
		token := m.Queue.Connect()
		token.Wait()
		err := token.Error()
		if err == nil {
			break
		}
		glog.Warningf("mqtt connect error: %v, retry in %v", err, retry)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retry):
		}
		if retry *= 2; retry > MaxRetryInterval {
			retry = MaxRetryInterval
		}
	}
	<-ctx.Done()
	return ctx.Err()
}
