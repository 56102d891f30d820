package main

import (
	"context"
	"encoding/json"
	"time"

	config "github.com/avvvet/arena-services/configs"
	"github.com/avvvet/arena-services/internal/apisvc/db"
	"github.com/avvvet/arena-services/internal/comm"
	natscli "github.com/avvvet/arena-services/internal/nats"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "settle"

var instanceId string

func init() {
	instanceId = config.CreateUniqueInstance(SERVICE_NAME)
	config.Logging(SERVICE_NAME + "_service_" + instanceId)
	config.LoadEnv(SERVICE_NAME)
}

func main() {
	// pg connection
	dbpool, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.ClosePool()
	log.Printf("pg connection established successfully")

	// NATS connection
	n, err := natscli.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer n.Conn.Close()
	log.Infof("NATS connected at %s", n.Url)

	// Subscribe to pending withdrawals published by apisvc. The payout
	// itself runs at the payment provider; once it is through we flip
	// the ledger row from pending to completed.
	_, err = n.Conn.Subscribe(comm.SubjectWithdrawal, func(m *nats.Msg) {
		handleWithdrawal(n, dbpool, m)
	})
	if err != nil {
		log.Fatalf("Subscribe %s error: %v", comm.SubjectWithdrawal, err)
	}

	select {} // run forever
}

// handleWithdrawal settles one pending withdrawal and publishes the outcome
func handleWithdrawal(n *natscli.Nats, pool *pgxpool.Pool, msg *nats.Msg) {
	var ev comm.WithdrawalEvent
	if err := json.Unmarshal(msg.Data, &ev); err != nil {
		log.Errorf("invalid WithdrawalEvent: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Only the pending -> completed transition is allowed; a retry or a
	// replayed event finds zero matching rows and does nothing.
	tag, err := pool.Exec(ctx, `
		UPDATE transactions
		SET status = 'completed'
		WHERE id = $1 AND ttype = 'withdrawal' AND status = 'pending'
	`, ev.TransactionID)
	if err != nil {
		log.Errorf("settle withdrawal %d: %v", ev.TransactionID, err)
		return
	}

	if tag.RowsAffected() == 0 {
		log.Warnf("withdrawal %d already settled or unknown", ev.TransactionID)
		return
	}

	log.Infof("withdrawal %d settled for user %d amount %s", ev.TransactionID, ev.UserID, ev.Amount)

	settled := comm.SettledEvent{
		TransactionID: ev.TransactionID,
		UserID:        ev.UserID,
		Status:        "completed",
		SettledAt:     time.Now(),
	}
	data, err := json.Marshal(settled)
	if err != nil {
		log.Errorf("marshal settled event: %v", err)
		return
	}
	if err := n.Conn.Publish(comm.SubjectSettled, data); err != nil {
		log.Errorf("publish settled event: %v", err)
	}
}
