package broker

import (
	"encoding/json"

	"github.com/avvvet/arena-services/internal/comm"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

// Broker publishes wallet events for the settlement worker.
type Broker struct {
	Conn *nats.Conn
}

func NewBroker(nc *nats.Conn) *Broker {
	return &Broker{Conn: nc}
}

func (b *Broker) PublishWithdrawal(ev comm.WithdrawalEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Errorf("Error marshal withdrawal event %s", err)
		return err
	}

	return b.Conn.Publish(comm.SubjectWithdrawal, data)
}
