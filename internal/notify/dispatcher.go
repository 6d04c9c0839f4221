package notify

import (
	"log"
	"time"
)

// Ticket é o conteúdo do boleto enviado ao titular da reserva.
type Ticket struct {
	Code     string
	Name     string
	Email    string
	Quantity int

	EventTitle string
	EventStart time.Time
}

type Sender interface {
	Send(t Ticket) error
}

// Dispatcher desacopla o envio do boleto da criação da reserva. Falha
// de notificação nunca chega ao cliente: a reserva já está gravada.
type Dispatcher struct {
	sender Sender
	queue  chan Ticket
}

func NewDispatcher(sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Ticket, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for t := range d.queue {
		if err := d.sender.Send(t); err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(t Ticket) {
	if d == nil {
		return
	}

	select {
	case d.queue <- t:
		// enviado
	default:
		// fila cheia → descartamos o envio (nunca quebrar a reserva)
		log.Println("notify queue full, dropping ticket", t.Code)
	}
}
