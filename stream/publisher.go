package stream

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// A Publisher delivers encoded frames to a topic.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// MqttPublisher publishes frames with a paho client.
type MqttPublisher struct {
	client  mqtt.Client
	qos     byte
	timeout time.Duration
}

// NewMqttPublisher creates an instance of a MqttPublisher.
func NewMqttPublisher(client mqtt.Client, qos byte, timeout time.Duration) *MqttPublisher {
	p := new(MqttPublisher)
	p.client = client
	p.qos = qos
	p.timeout = timeout
	return p
}

func (p *MqttPublisher) Publish(topic string, payload []byte) error {
	token := p.client.Publish(topic, p.qos, false, payload)
	if !token.WaitTimeout(p.timeout) {
		return fmt.Errorf("publish to %s: timed out after %v", topic, p.timeout)
	}
	return token.Error()
}
