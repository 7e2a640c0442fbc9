package kafka

import (
	"crypto/tls"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"
)

// Config holds connection parameters for the platform's Kafka cluster.
// Producers and consumers share the same broker list and credentials.
type Config struct {
	Brokers       []string
	ConsumerGroup string

	// TLS enables TLS for broker connections.
	TLS bool

	// SASL authentication. Mechanism is "PLAIN", "SCRAM-SHA-256" or
	// "SCRAM-SHA-512"; empty defaults to PLAIN when SASLEnabled is set.
	SASLEnabled   bool
	SASLMechanism string
	SASLUsername  string
	SASLPassword  string
}

func (c Config) tlsConfig() *tls.Config {
	if !c.TLS {
		return nil
	}
	return &tls.Config{MinVersion: tls.VersionTLS12}
}

func (c Config) saslMechanism() sasl.Mechanism {
	if !c.SASLEnabled {
		return nil
	}
	switch c.SASLMechanism {
	case "SCRAM-SHA-256":
		m, err := scram.Mechanism(scram.SHA256, c.SASLUsername, c.SASLPassword)
		if err != nil {
			return nil
		}
		return m
	case "SCRAM-SHA-512":
		m, err := scram.Mechanism(scram.SHA512, c.SASLUsername, c.SASLPassword)
		if err != nil {
			return nil
		}
		return m
	case "PLAIN", "":
		return &plain.Mechanism{Username: c.SASLUsername, Password: c.SASLPassword}
	default:
		return nil
	}
}

// dialer returns a reader dialer, or nil when neither TLS nor SASL is set.
func (c Config) dialer() *kafkago.Dialer {
	if !c.TLS && !c.SASLEnabled {
		return nil
	}
	return &kafkago.Dialer{
		TLS:           c.tlsConfig(),
		SASLMechanism: c.saslMechanism(),
	}
}

// transport returns a writer transport, or nil when neither TLS nor SASL is set.
func (c Config) transport() *kafkago.Transport {
	if !c.TLS && !c.SASLEnabled {
		return nil
	}
	return &kafkago.Transport{
		TLS:  c.tlsConfig(),
		SASL: c.saslMechanism(),
	}
}
